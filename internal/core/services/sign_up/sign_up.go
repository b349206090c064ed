package signup

import (
	"context"
	e "signupsite/internal/core/domain/errors"
	"signupsite/internal/core/domain/logging"
	ds "signupsite/internal/core/domain/signup"
	"signupsite/internal/core/services"
)

type Input struct {
	Submission ds.Submission
	ClientKey  string
}

func (i Input) GetRateLimitKey() string {
	return "sign-up::" + i.ClientKey
}

type Result struct {
	Flash []string
}

type service struct {
	log logging.Logger
}

// New returns the sign-up use case. Nothing is stored: an accepted submission
// only produces the success notice, a rejected one a *signup.ValidationError.
func New(log logging.Logger) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{log: log}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	messages := ds.ValidateServer(input.Submission)
	if !messages.IsValid() {
		s.log.Info(
			ctx,
			"Sign-up submission rejected.",
			logging.Entry("email", input.Submission.Email),
			logging.Entry("messages", messages.Texts()),
		)
		return result, ds.NewValidationError(messages)
	}

	s.log.Info(ctx, "Sign-up submission accepted.", logging.Entry("email", input.Submission.Email))
	return Result{Flash: []string{ds.SuccessNotice}}, nil
}
