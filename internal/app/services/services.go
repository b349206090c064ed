package services

import (
	"signupsite/internal/app/deps"
	drl "signupsite/internal/core/domain/rate_limiter"
	"signupsite/internal/core/services"
	ratelimiting "signupsite/internal/core/services/rate_limiting"
	signup "signupsite/internal/core/services/sign_up"
)

type Services struct {
	SignUp services.Service[signup.Input, signup.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(deps.Logger)
	if deps.RateLimiter != nil {
		s.SignUp = ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Minute, Value: deps.Config.SignUpRateLimitPerMinute},
			s.SignUp,
		)
	}

	return s
}
