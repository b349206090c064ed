package health

import (
	"net/http"
	"signupsite/internal/http/handlers/response"
)

type status struct {
	Status string `json:"status"`
}

func New() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		response.Render(rw, status{Status: "ok"}, http.StatusOK)
	})
}
