package response

import (
	"encoding/json"
	"net/http"
)

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}

// RenderHTML writes an already rendered page. Pages are rendered into memory
// first so a template failure never leaves a half-written 200 response.
func RenderHTML(rw http.ResponseWriter, content []byte, status int) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)
	rw.Write(content)
}

func RenderInternalErrorPage(rw http.ResponseWriter) {
	http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
