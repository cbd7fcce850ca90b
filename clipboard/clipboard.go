// Package clipboard copies share links to the system clipboard, falling back
// to the terminal's OSC52 sequence over ssh or when no clipboard tool exists.
package clipboard

import (
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/cohortline/logging"
)

// Method reports how the text reached the clipboard.
type Method int

const (
	System Method = iota
	OSC52
)

func (m Method) String() string {
	if m == OSC52 {
		return "terminal"
	}
	return "system"
}

var (
	writeSystem           = clipboard.WriteAll
	osc52Out    io.Writer = os.Stdout
)

// Copy tries the system clipboard first.
func Copy(text string) (Method, error) {
	if text == "" {
		return System, errors.New("nothing to copy")
	}
	if !clipboard.Unsupported {
		err := writeSystem(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return System, nil
		}
		logging.Warnf("Clipboard: system copy failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return OSC52, err
	}
	return OSC52, nil
}
