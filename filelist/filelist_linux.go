//go:build linux

package filelist

import (
	"fmt"

	"golang.design/x/clipboard"
)

type linuxBackend struct{}

func newPlatformBackend() backend { return linuxBackend{} }

// init connects to the X display. Failure is permanent for the process;
// without a display there is no CLIPBOARD selection to read.
func (linuxBackend) init() error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// readPaths interprets the CLIPBOARD text selection as a text/uri-list,
// which is how file managers publish copied files. Anything else fails the
// parse and reads as no file list.
func (linuxBackend) readPaths() ([]string, error) {
	return parseURIList(clipboard.Read(clipboard.FmtText))
}

func (b linuxBackend) count() (int, error) {
	paths, err := b.readPaths()
	if err != nil {
		return 0, err
	}
	return len(paths), nil
}

// clear takes ownership of the selection with an empty payload. X11 has no
// real "empty the clipboard" call; owning the selection with nothing in it
// is the closest equivalent.
func (linuxBackend) clear() error {
	clipboard.Write(clipboard.FmtText, nil)
	return nil
}
