// Package filelist reads the list of files placed on the system clipboard by a
// file manager's copy action. Build constraints select the platform backend:
//
//	filelist_windows.go   CF_HDROP via user32/shell32 syscalls
//	filelist_darwin.go    NSPasteboard file URLs via cgo
//	filelist_linux.go     X11 CLIPBOARD selection via golang.design/x/clipboard
//	filelist_other.go     unsupported-platform stub
//
// Every operation acquires the clipboard, does its work and releases it before
// returning; nothing is held between calls. The clipboard is a system-wide
// exclusive resource, so a package-level lock additionally serializes callers
// within this process.
//
// Paths are absolute and in the host platform's native form (drive-letter
// paths on Windows, POSIX paths elsewhere), held in ordinary Go strings with
// no length limit.
package filelist

import (
	"errors"
	"sync"
)

var (
	// ErrUnavailable means the clipboard could not be acquired, typically
	// because another process holds it open. Callers may retry after a short
	// delay; this package never retries internally.
	ErrUnavailable = errors.New("clipboard unavailable")

	// ErrNoFileList means the clipboard holds no file-list payload. Plain
	// text, images and an empty clipboard all map here.
	ErrNoFileList = errors.New("no file list on clipboard")

	// ErrUnsupported means no clipboard backend exists for this platform.
	ErrUnsupported = errors.New("clipboard files not supported on this platform")
)

// Record describes one clipboard entry. Size is in bytes and is 0 for
// directories and for entries whose filesystem lookup failed.
type Record struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// backend is the per-platform clipboard access surface. readPaths returns the
// decoded file paths in the order stored by the clipboard payload, count
// reports the entry count without copying path strings where the platform
// allows it, and clear empties the whole clipboard.
type backend interface {
	init() error
	readPaths() ([]string, error)
	count() (int, error)
	clear() error
}

var (
	// one clipboard access at a time within this process
	lock      sync.Mutex
	impl      backend = newPlatformBackend()
	inited    bool
	initError error
)

// Init prepares the platform backend. It runs at most once; later calls and
// all operations return the cached result. Calling Init explicitly is
// optional, every operation does it lazily.
func Init() error {
	lock.Lock()
	defer lock.Unlock()
	return initLocked()
}

func initLocked() error {
	if !inited {
		initError = impl.init()
		inited = true
	}
	return initError
}

func backendPaths() ([]string, error) {
	lock.Lock()
	defer lock.Unlock()
	if err := initLocked(); err != nil {
		return nil, err
	}
	return impl.readPaths()
}

func backendCount() (int, error) {
	lock.Lock()
	defer lock.Unlock()
	if err := initLocked(); err != nil {
		return 0, err
	}
	return impl.count()
}

func backendClear() error {
	lock.Lock()
	defer lock.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	return impl.clear()
}

// Count returns the number of entries in the clipboard's file-list payload.
// It returns ErrNoFileList when no such payload is present; on Windows this
// is distinct from a payload with zero entries, which counts as (0, nil).
func Count() (int, error) {
	return backendCount()
}

// Paths returns all file paths from the clipboard in stored order. The
// returned slice is owned by the caller; no release call exists or is needed.
// An empty slice with a nil error means a file-list payload with no entries.
func Paths() ([]string, error) {
	return backendPaths()
}

// AppendPaths appends clipboard file paths to dst, each followed by sep,
// without ever growing dst beyond its capacity. Paths are appended whole: it
// stops before the first path that would not fit, so a truncated result is
// still a valid sep-joined list. It returns the extended slice and the number
// of paths appended. Capacities are in bytes; sep must be a byte that cannot
// occur inside a path (NUL is always safe).
func AppendPaths(dst []byte, sep byte) ([]byte, int, error) {
	paths, err := backendPaths()
	if err != nil {
		return dst, 0, err
	}
	n := 0
	for _, p := range paths {
		if cap(dst)-len(dst) < len(p)+1 {
			break
		}
		dst = append(dst, p...)
		dst = append(dst, sep)
		n++
	}
	return dst, n, nil
}

// Records returns one Record per clipboard entry, in stored order, classified
// against the local filesystem. An entry whose filesystem lookup fails (for
// example a file deleted after being copied) still yields a Record, with
// IsDir false and Size 0; a single missing file never fails the batch.
func Records() ([]Record, error) {
	paths, err := backendPaths()
	if err != nil {
		return nil, err
	}
	return Classify(paths), nil
}

// ReadRecords fills dst with up to len(dst) classified records and returns
// the number written. When the clipboard holds more entries than dst can
// take, the result is truncated to len(dst) and that count is returned with a
// nil error; truncation is not a failure. Cells beyond the returned count are
// left untouched.
func ReadRecords(dst []Record) (int, error) {
	paths, err := backendPaths()
	if err != nil {
		return 0, err
	}
	if len(paths) > len(dst) {
		paths = paths[:len(dst)]
	}
	for i, p := range paths {
		dst[i] = classifyPath(p, OSStat)
	}
	return len(paths), nil
}

// TotalSize sums the byte sizes of all regular files in the file-list
// payload. Directories contribute 0 (their contents are not walked) and so
// do entries whose filesystem lookup fails. A clipboard
// without a file-list payload totals 0 with a nil error; absence and an
// empty list are indistinguishable here.
func TotalSize() (int64, error) {
	paths, err := backendPaths()
	if err != nil {
		if errors.Is(err, ErrNoFileList) {
			return 0, nil
		}
		return 0, err
	}
	var total int64
	for _, p := range paths {
		isDir, size, err := OSStat(p)
		if err != nil || isDir {
			continue
		}
		total += size
	}
	return total, nil
}

// HasFiles reports whether the clipboard holds a file-list payload with at
// least one entry. It is the cheapest query: on Windows it counts entries
// without copying any path strings. Any failure reads as false.
func HasFiles() bool {
	n, err := backendCount()
	return err == nil && n > 0
}

// Clear removes all content from the system clipboard, not just the file
// list. The effect is global: every application sees an empty clipboard
// afterwards. It returns ErrUnavailable when the clipboard cannot be
// acquired.
func Clear() error {
	return backendClear()
}
