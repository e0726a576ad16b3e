package filelist

import (
	"net/url"
	"strings"
)

// parseURIList decodes a text/uri-list clipboard payload (RFC 2483) into
// local filesystem paths. File managers on X11 publish copied files this way,
// one file:// URI per CRLF-terminated line; GNOME prepends a "copy" or "cut"
// action line. Comment lines start with "#".
//
// The decode fails closed: any line that is not a file URI means the payload
// is ordinary text rather than a file list, and the whole parse reports
// ErrNoFileList instead of returning a partial result.
func parseURIList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, ErrNoFileList
	}
	var paths []string
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i == 0 && (line == "copy" || line == "cut") {
			// gnome-copied-files action header
			continue
		}
		p, ok := fileURIPath(line)
		if !ok {
			return nil, ErrNoFileList
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil, ErrNoFileList
	}
	return paths, nil
}

// fileURIPath converts one file:// URI into a decoded local path. URIs with a
// remote host part are rejected; "localhost" and an empty host both mean the
// local machine.
func fileURIPath(line string) (string, bool) {
	u, err := url.Parse(line)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	return u.Path, true
}
