package lsp

import (
	"net/url"
	"path/filepath"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// uriToPath превращает file:// URI в локальный путь; для прочих схем — "".
func uriToPath(uri protocol.DocumentUri) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = uri
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	path = filepath.FromSlash(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// displayName — имя файла для FileSet: путь, если URI файловый, иначе сам URI.
func displayName(uri protocol.DocumentUri) string {
	if p := uriToPath(uri); p != "" {
		return p
	}
	return uri
}

func pathToURI(path string) protocol.DocumentUri {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
