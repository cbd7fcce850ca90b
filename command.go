package main

type mode int

const (
	modeView mode = iota
	modeGrab
	modeDrag
	modeDialog
)

func modeLabel(md mode) string {
	switch md {
	case modeGrab:
		return "MOVE"
	case modeDrag:
		return "DRAG"
	case modeDialog:
		return "DIALOG"
	default:
		return "NORMAL"
	}
}

func (m *model) modeHints() string {
	switch m.ui.mode {
	case modeGrab:
		return "(←/→ move · shift+←/→ 5y · enter drop · esc cancel)"
	case modeDrag:
		return "(release to drop · esc cancel)"
	default:
		return "(? help · a add · tab select · g move · s stats · u share)"
	}
}
