//go:build windows

package filelist

import (
	"syscall"
	"unsafe"
)

// CF_HDROP, the shell's file-drop clipboard format.
const cfHDrop = 15

// past the valid index range, DragQueryFileW returns the entry count
const dragQueryCount = 0xFFFFFFFF

var (
	user32  = syscall.NewLazyDLL("user32.dll")
	shell32 = syscall.NewLazyDLL("shell32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procEmptyClipboard             = user32.NewProc("EmptyClipboard")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procDragQueryFileW             = shell32.NewProc("DragQueryFileW")
)

type windowsBackend struct{}

func newPlatformBackend() backend { return windowsBackend{} }

func (windowsBackend) init() error { return nil }

// dropHandle opens the clipboard and fetches the HDROP handle. On success the
// caller owns the open clipboard and must CloseClipboard; on error it is
// already closed.
func dropHandle() (uintptr, error) {
	if ok, _, _ := procOpenClipboard.Call(0); ok == 0 {
		return 0, ErrUnavailable
	}
	if ok, _, _ := procIsClipboardFormatAvailable.Call(cfHDrop); ok == 0 {
		procCloseClipboard.Call()
		return 0, ErrNoFileList
	}
	hDrop, _, _ := procGetClipboardData.Call(cfHDrop)
	if hDrop == 0 {
		procCloseClipboard.Call()
		return 0, ErrNoFileList
	}
	return hDrop, nil
}

func (windowsBackend) readPaths() ([]string, error) {
	hDrop, err := dropHandle()
	if err != nil {
		return nil, err
	}
	defer procCloseClipboard.Call()

	n, _, _ := procDragQueryFileW.Call(hDrop, dragQueryCount, 0, 0)
	paths := make([]string, 0, n)
	for i := uintptr(0); i < n; i++ {
		// length in UTF-16 units, excluding the terminator
		length, _, _ := procDragQueryFileW.Call(hDrop, i, 0, 0)
		if length == 0 {
			continue
		}
		buf := make([]uint16, length+1)
		procDragQueryFileW.Call(hDrop, i, uintptr(unsafe.Pointer(&buf[0])), length+1)
		paths = append(paths, syscall.UTF16ToString(buf))
	}
	return paths, nil
}

// count reads the entry count straight off the HDROP, with no path copies.
func (windowsBackend) count() (int, error) {
	hDrop, err := dropHandle()
	if err != nil {
		return 0, err
	}
	defer procCloseClipboard.Call()

	n, _, _ := procDragQueryFileW.Call(hDrop, dragQueryCount, 0, 0)
	return int(n), nil
}

func (windowsBackend) clear() error {
	if ok, _, _ := procOpenClipboard.Call(0); ok == 0 {
		return ErrUnavailable
	}
	defer procCloseClipboard.Call()
	procEmptyClipboard.Call()
	return nil
}
