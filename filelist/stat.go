package filelist

import (
	"os"
	"path/filepath"
)

// StatFunc resolves filesystem metadata for one clipboard path. It exists so
// tests and callers with their own metadata source can classify paths without
// touching the real filesystem.
type StatFunc func(path string) (isDir bool, size int64, err error)

// OSStat is the default StatFunc, backed by os.Stat. Directories report size
// 0 regardless of what the filesystem says about the directory entry itself.
func OSStat(path string) (bool, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, 0, err
	}
	if info.IsDir() {
		return true, 0, nil
	}
	return false, info.Size(), nil
}

// Classify builds one Record per path using OSStat, preserving order.
func Classify(paths []string) []Record {
	return ClassifyWith(paths, OSStat)
}

// ClassifyWith is Classify with a caller-supplied StatFunc.
func ClassifyWith(paths []string, stat StatFunc) []Record {
	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		records = append(records, classifyPath(p, stat))
	}
	return records
}

func classifyPath(path string, stat StatFunc) Record {
	r := Record{Path: path, Name: filepath.Base(path)}
	isDir, size, err := stat(path)
	if err != nil {
		// entry vanished between copy and query: keep the path, zero the rest
		return r
	}
	r.IsDir = isDir
	if !isDir {
		r.Size = size
	}
	return r
}
