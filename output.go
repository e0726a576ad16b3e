package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/h2non/filetype"

	"github.com/bouchenineyakoub/clipfiles/filelist"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// infoEntry is the CLI-facing shape of a filelist.Record, with the optional
// sniffed content type.
type infoEntry struct {
	Path  string `json:"path" yaml:"path"`
	Name  string `json:"name" yaml:"name"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
	Size  int64  `json:"size" yaml:"size"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

func infoEntries(records []filelist.Record, withMIME bool) []infoEntry {
	entries := make([]infoEntry, 0, len(records))
	for _, r := range records {
		e := infoEntry{Path: r.Path, Name: r.Name, IsDir: r.IsDir, Size: r.Size}
		if withMIME && !r.IsDir {
			e.Type = sniffMIME(r.Path)
		}
		entries = append(entries, e)
	}
	return entries
}

func formatSize(n int64, human bool) string {
	if human {
		return humanize.IBytes(uint64(n))
	}
	return strconv.FormatInt(n, 10)
}

// sniffLen is how much of a file the type sniffers get to see; matches
// net/http's detection window plus room for the magic-number matchers.
const sniffLen = 4100

func sniffMIME(path string) string {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("content type sniff failed", "path", path, "err", err)
		return ""
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, _ := f.Read(buf)
	if n == 0 {
		return ""
	}

	mimeType := http.DetectContentType(buf[:n])
	if kind, err := filetype.Match(buf[:n]); err == nil && kind != filetype.Unknown {
		mimeType = kind.MIME.Value
	}
	return mimeType
}

func renderTable(entries []infoEntry, human, withMIME bool) string {
	if len(entries) == 0 {
		return ""
	}

	headers := []string{"NAME", "KIND", "SIZE", "PATH"}
	if withMIME {
		headers = append(headers, "TYPE")
	}

	const sizeColumn = 2
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(stdoutStyles().TableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return stdoutStyles().TableHeader
			case col == sizeColumn:
				return stdoutStyles().TableCell.Align(lipgloss.Right)
			default:
				return stdoutStyles().TableCell
			}
		}).
		Headers(headers...)

	for _, e := range entries {
		kind := "file"
		size := formatSize(e.Size, human)
		if e.IsDir {
			kind = "dir"
			size = "-"
		}
		row := []string{e.Name, kind, size, e.Path}
		if withMIME {
			mimeType := e.Type
			if mimeType == "" {
				mimeType = "-"
			}
			row = append(row, mimeType)
		}
		t.Row(row...)
	}

	return t.String() + "\n"
}

func renderJSON(entries []infoEntry) (string, error) {
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func renderYAML(entries []infoEntry) (string, error) {
	out, err := yaml.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
