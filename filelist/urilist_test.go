package filelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURIList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "single uri",
			payload: "file:///home/u/doc.txt\r\n",
			want:    []string{"/home/u/doc.txt"},
		},
		{
			name:    "multiple uris crlf",
			payload: "file:///a\r\nfile:///b\r\nfile:///c\r\n",
			want:    []string{"/a", "/b", "/c"},
		},
		{
			name:    "bare newlines",
			payload: "file:///a\nfile:///b",
			want:    []string{"/a", "/b"},
		},
		{
			name:    "comments and blank lines skipped",
			payload: "# produced by a file manager\r\n\r\nfile:///a\r\n",
			want:    []string{"/a"},
		},
		{
			name:    "gnome copy header",
			payload: "copy\nfile:///home/u/img.png\n",
			want:    []string{"/home/u/img.png"},
		},
		{
			name:    "gnome cut header",
			payload: "cut\nfile:///home/u/img.png\n",
			want:    []string{"/home/u/img.png"},
		},
		{
			name:    "percent decoding",
			payload: "file:///home/u/with%20space/r%C3%A9sum%C3%A9.pdf\n",
			want:    []string{"/home/u/with space/résumé.pdf"},
		},
		{
			name:    "localhost host accepted",
			payload: "file://localhost/etc/hosts\n",
			want:    []string{"/etc/hosts"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseURIList([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURIListRejectsNonFilePayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "plain text", payload: "just some copied text"},
		{name: "text resembling the copy header", payload: "copy"},
		{name: "http uri", payload: "https://example.com/file.txt\n"},
		{name: "mixed text and uri", payload: "file:///a\nand a note\n"},
		{name: "remote host", payload: "file://fileserver/share/doc.txt\n"},
		{name: "only comments", payload: "# nothing here\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseURIList([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrNoFileList)
			assert.Nil(t, got)
		})
	}
}
