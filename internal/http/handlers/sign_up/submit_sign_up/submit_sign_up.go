package submitsignup

import (
	"errors"
	"net"
	"net/http"
	"signupsite/internal/core/domain/logging"
	"signupsite/internal/core/domain/reporting"
	ratelimiter "signupsite/internal/core/domain/rate_limiter"
	ds "signupsite/internal/core/domain/signup"
	"signupsite/internal/core/services"
	signup "signupsite/internal/core/services/sign_up"
	"signupsite/internal/http/handlers/response"
	"signupsite/internal/http/views"
)

const maxBodyBytes = 64 << 10

const (
	msgInvalidRequest    = "Invalid request data"
	msgRateLimitExceeded = "Too many sign-up attempts, please try again later"
)

type Handler struct {
	log      logging.Logger
	reporter reporting.Reporter
	service  services.Service[signup.Input, signup.Result]
	views    views.Renderer
}

func New(
	log logging.Logger,
	reporter reporting.Reporter,
	service services.Service[signup.Input, signup.Result],
	views views.Renderer,
) *Handler {
	return &Handler{log: log, reporter: reporter, service: service, views: views}
}

type Input struct {
	Email    string
	Password string
}

// FromForm reads the url-encoded body. Missing fields are read as empty
// strings and left to the validation rules.
func (i *Input) FromForm(rw http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(rw, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return err
	}
	i.Email = r.PostForm.Get("email")
	i.Password = r.PostForm.Get("password")
	return nil
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromForm(rw, r); err != nil {
		h.log.Info(r.Context(), "Could not parse sign-up form.", logging.Entry("err", err))
		h.renderForm(rw, r, "", ds.Result{{Text: msgInvalidRequest, Severity: ds.SeverityDanger}}, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Submission: ds.Submission{Email: input.Email, Password: input.Password},
			ClientKey:  clientKey(r),
		},
	)
	var validationErr *ds.ValidationError
	if errors.As(err, &validationErr) {
		h.renderForm(rw, r, input.Email, validationErr.Messages, http.StatusOK)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		h.renderForm(
			rw,
			r,
			input.Email,
			ds.Result{{Text: msgRateLimitExceeded, Severity: ds.SeverityDanger}},
			http.StatusTooManyRequests,
		)
		return
	}
	if err != nil {
		h.log.Error(r.Context(), "Could not process sign-up submission.", logging.Entry("err", err))
		h.reporter.ReportError(r.Context(), err)
		response.RenderInternalErrorPage(rw)
		return
	}

	content, err := h.views.Render(views.PageHome, views.HomeData{Flash: result.Flash})
	if err != nil {
		h.log.Error(r.Context(), "Could not render home page.", logging.Entry("err", err))
		h.reporter.ReportError(r.Context(), err)
		response.RenderInternalErrorPage(rw)
		return
	}
	response.RenderHTML(rw, content, http.StatusOK)
}

func (h *Handler) renderForm(rw http.ResponseWriter, r *http.Request, email string, errs ds.Result, status int) {
	content, err := h.views.Render(views.PageSignUp, views.NewSignUpData(email, errs))
	if err != nil {
		h.log.Error(r.Context(), "Could not render sign-up page.", logging.Entry("err", err))
		h.reporter.ReportError(r.Context(), err)
		response.RenderInternalErrorPage(rw)
		return
	}
	response.RenderHTML(rw, content, status)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
