// Package svgexport draws the cohort timeline as a standalone SVG document.
package svgexport

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andareed/cohortline/drag"
	"github.com/andareed/cohortline/generation"
	"github.com/andareed/cohortline/markers"
)

type FontConfig struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

type ColorConfig struct {
	Background string `yaml:"background"`
	Timeline   string `yaml:"timeline"`
	Text       string `yaml:"text"`
	Ticks      string `yaml:"ticks"`
	// Generations maps a generation tag to its band fill.
	Generations map[string]string `yaml:"generations"`
}

type LayoutConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	MarginLeft   int `yaml:"margin_left"`
	MarginRight  int `yaml:"margin_right"`
	BandHeight   int `yaml:"band_height"`
	LineWidth    int `yaml:"line_width"`
	TickInterval int `yaml:"tick_interval"`
}

type MarkerConfig struct {
	Size        int      `yaml:"size"`
	Colors      []string `yaml:"colors"`
	StrokeColor string   `yaml:"stroke_color"`
	StrokeWidth int      `yaml:"stroke_width"`
	ShowLabels  bool     `yaml:"show_labels"`
}

// Config is the YAML style file for the export.
type Config struct {
	Title  string       `yaml:"title"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorConfig  `yaml:"colors"`
	Layout LayoutConfig `yaml:"layout"`
	Marker MarkerConfig `yaml:"marker"`
}

func DefaultConfig() Config {
	return Config{
		Title: "Birth-year cohorts",
		Font:  FontConfig{Family: "Arial, sans-serif", Size: 12},
		Colors: ColorConfig{
			Background: "#ffffff",
			Timeline:   "#333333",
			Text:       "#333333",
			Ticks:      "#999999",
			Generations: map[string]string{
				generation.BabyBoomer.Tag: "#f4d6a0",
				generation.GenX.Tag:       "#b9d7ea",
				generation.Millennial.Tag: "#c8e6c9",
				generation.GenZ.Tag:       "#e1bee7",
				generation.GenAlpha.Tag:   "#ffe0b2",
			},
		},
		Layout: LayoutConfig{
			Width:        1000,
			Height:       200,
			MarginLeft:   50,
			MarginRight:  50,
			BandHeight:   24,
			LineWidth:    2,
			TickInterval: 10,
		},
		Marker: MarkerConfig{
			Size:        7,
			Colors:      []string{"#dc3545", "#0d6efd"},
			StrokeColor: "#333333",
			StrokeWidth: 1,
			ShowLabels:  true,
		},
	}
}

// LoadConfig reads a YAML style file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading svg style: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing svg style: %w", err)
	}
	return cfg, nil
}

// Render draws the year axis for b, one band per generation inside it, a
// tick every TickInterval years and one labelled handle per marker.
func Render(ms []markers.Marker, b markers.Bounds, cfg Config) string {
	l := cfg.Layout
	width := l.Width - l.MarginLeft - l.MarginRight
	if width <= 0 || b.Span() <= 0 {
		return ""
	}
	lineY := l.Height / 2
	x := func(year int) int {
		return l.MarginLeft + int(drag.PercentOf(b, year)/100*float64(width)+0.5)
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.tick-text { font-family: %s; font-size: %dpx; fill: %s; }
.band-text { font-family: %s; font-size: %dpx; fill: %s; }
.marker-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
</style>
</defs>
`, l.Width, l.Height, cfg.Colors.Background,
		cfg.Font.Family, cfg.Font.Size+4, cfg.Colors.Text,
		cfg.Font.Family, cfg.Font.Size-2, cfg.Colors.Ticks,
		cfg.Font.Family, cfg.Font.Size-2, cfg.Colors.Text,
		cfg.Font.Family, cfg.Font.Size, cfg.Colors.Text))

	if cfg.Title != "" {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="title-text">%s</text>
`, l.MarginLeft, cfg.Font.Size+12, escapeXML(cfg.Title)))
	}

	// generation bands, clipped to the visible range
	for _, band := range generation.Bands(b.Max) {
		from, to := max(band.From, b.Min), min(band.To, b.Max)
		if from > to {
			continue
		}
		fill, ok := cfg.Colors.Generations[band.Label.Tag]
		if !ok {
			continue
		}
		x1, x2 := x(from), x(to)
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="gen-%s"/>
`, x1, lineY-l.BandHeight/2, x2-x1, l.BandHeight, fill, band.Label.Tag))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="band-text">%s</text>
`, x1+3, lineY-l.BandHeight/2-4, escapeXML(band.Label.Name)))
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>
`, l.MarginLeft, lineY, l.MarginLeft+width, lineY, cfg.Colors.Timeline, l.LineWidth))

	if l.TickInterval > 0 {
		first := b.Min
		if r := first % l.TickInterval; r != 0 {
			first += l.TickInterval - r
		}
		for year := first; year <= b.Max; year += l.TickInterval {
			tx := x(year)
			svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>
<text x="%d" y="%d" text-anchor="middle" class="tick-text">%d</text>
`, tx, lineY+l.BandHeight/2, tx, lineY+l.BandHeight/2+6, cfg.Colors.Ticks,
				tx, lineY+l.BandHeight/2+18, year))
		}
	}

	for i, m := range ms {
		drawMarker(&svg, m, i, x(b.Clamp(m.Year)), lineY, cfg)
	}

	svg.WriteString("</svg>")
	return svg.String()
}

func drawMarker(svg *strings.Builder, m markers.Marker, idx, x, y int, cfg Config) {
	mc := cfg.Marker
	fill := cfg.Colors.Timeline
	if len(mc.Colors) > 0 {
		fill = mc.Colors[idx%len(mc.Colors)]
	}
	svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="%d" data-id="%s"/>
`, x, y, mc.Size, fill, mc.StrokeColor, mc.StrokeWidth, escapeXML(m.ID)))
	if mc.ShowLabels {
		// alternate above and below so neighbouring labels do not collide
		ly := y - cfg.Layout.BandHeight/2 - cfg.Font.Size - 8
		if idx%2 == 1 {
			ly = y + cfg.Layout.BandHeight/2 + cfg.Font.Size + 26
		}
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="marker-text">%d</text>
`, x, ly, m.Year))
	}
}

// escapeXML escapes the XML special characters for embedding in SVG text.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
