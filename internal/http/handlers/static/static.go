package static

import (
	"net/http"
)

// New serves files under root at prefix. Directories are listed, served by
// their index.html when present, and redirected to a trailing slash.
func New(prefix string, root string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.Dir(root)))
}
