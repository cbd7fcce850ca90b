package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andareed/cohortline/compare"
	"github.com/andareed/cohortline/config"
	"github.com/andareed/cohortline/logging"
	"github.com/andareed/cohortline/svgexport"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	configDir string
	cleanup   func()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cohortline [query]",
		Short: "Compare birth-year cohorts against educational statistics",
		Long: `cohortline places birth years on a timeline and shows, for each one,
the educational statistics measured when that cohort was around 25.

Markers and the chosen statistics travel as a query string
(cohorts=1970,1985&stats=literacy,attainment) that can be shared as a link.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.cleanup != nil {
				opts.cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(queryArg(cmd, args))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config", ".", "directory holding cohortline.yaml")
	pf.String("debug", "", "write debug logs to file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("data-url", "", "site serving /data/<stat>.json")
	pf.String("data-dir", "", "local directory of <stat>.json files, used instead of data-url")
	pf.String("share-url", "", "base URL for share links")
	root.Flags().String("query", "", "query string or link to restore")

	for key, flag := range map[string]string{
		"logFile":       "debug",
		"logLevel":      "log-level",
		"data.url":      "data-url",
		"data.dir":      "data-dir",
		"share.baseUrl": "share-url",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind %s: %v", key, err))
		}
	}

	root.AddCommand(newViewCmd(), newTableCmd(), newSVGCmd(), newVersionCmd())
	return root
}

func (o *rootOptions) setup() error {
	if err := config.Load(o.configDir); err != nil {
		return err
	}
	s, err := config.Current()
	if err != nil {
		return err
	}
	cleanup, err := logging.SetupLogging(s.LogFile, s.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	o.cleanup = cleanup
	logging.Infof("cohortline %s: started", Version)
	return nil
}

func queryArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	q, _ := cmd.Flags().GetString("query")
	return q
}

// loadApp builds the app from the loaded configuration.
func loadApp() (*app, error) {
	s, err := config.Current()
	if err != nil {
		return nil, err
	}
	src, err := sourceFor(s)
	if err != nil {
		return nil, err
	}
	return newApp(s, src), nil
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [query]",
		Short: "Open the interactive timeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(queryArg(cmd, args))
		},
	}
	cmd.Flags().String("query", "", "query string or link to restore")
	return cmd
}

func runView(query string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	m := newModel(a, query)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	return nil
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [query]",
		Short: "Print the comparison tables for a query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return runTable(cmd.Context(), a, queryArg(cmd, args), cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("query", "", "query string or link, e.g. cohorts=1970,1980&stats=attainment")
	return cmd
}

func runTable(ctx context.Context, a *app, query string, w io.Writer) error {
	q := a.restore(query)
	ctx, cancel := context.WithTimeout(ctx, a.settings.DataTimeout)
	defer cancel()

	report := a.manager.Probe(ctx)
	a.applyAvailability(report, q.Stats, true)

	r := compare.Build(a.store.List(), a.selection.Names(), len(report.Available),
		a.manager.Series, a.resolver, a.now())
	if _, err := fmt.Fprintln(w, compare.Render(r, a.statName, compareStyles())); err != nil {
		return err
	}
	if report.NoData() {
		return fmt.Errorf("no statistics could be loaded")
	}
	_, err := fmt.Fprintf(w, "\n%s\n", a.shareURL())
	return err
}

func newSVGCmd() *cobra.Command {
	var out, style string
	cmd := &cobra.Command{
		Use:   "svg [query]",
		Short: "Write the timeline for a query as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if style == "" {
				style = a.settings.SVGStyle
			}
			return runSVG(a, queryArg(cmd, args), style, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("query", "", "query string or link to draw")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&style, "style", "", "YAML style file")
	return cmd
}

func runSVG(a *app, query, style, out string, stdout io.Writer) error {
	cfg, err := svgexport.LoadConfig(style)
	if err != nil {
		return err
	}
	a.restore(query)
	doc := svgexport.Render(a.store.List(), a.store.Bounds(), cfg)
	if doc == "" {
		return fmt.Errorf("nothing to draw: check timeline bounds and svg layout")
	}
	if out == "" {
		_, err = io.WriteString(stdout, doc+"\n")
		return err
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("error writing svg: %w", err)
	}
	logging.Infof("svg: wrote %d markers to %s", a.store.Len(), out)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
		},
	}
}
