package home

import (
	"net/http"
	"signupsite/internal/core/domain/logging"
	"signupsite/internal/core/domain/reporting"
	"signupsite/internal/http/handlers/response"
	"signupsite/internal/http/views"
)

type Handler struct {
	log      logging.Logger
	reporter reporting.Reporter
	views    views.Renderer
}

func New(log logging.Logger, reporter reporting.Reporter, views views.Renderer) *Handler {
	return &Handler{log: log, reporter: reporter, views: views}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	content, err := h.views.Render(views.PageHome, views.HomeData{})
	if err != nil {
		h.log.Error(r.Context(), "Could not render home page.", logging.Entry("err", err))
		h.reporter.ReportError(r.Context(), err)
		response.RenderInternalErrorPage(rw)
		return
	}
	response.RenderHTML(rw, content, http.StatusOK)
}
