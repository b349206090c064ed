package deps

import (
	"context"
	"signupsite/internal/config"
	dl "signupsite/internal/core/domain/logging"
	drl "signupsite/internal/core/domain/rate_limiter"
	"signupsite/internal/core/domain/reporting"
	"signupsite/internal/http/views"
	"signupsite/internal/implementations/logging"
	ratelimiter "signupsite/internal/implementations/rate_limiter"
	sentryreporter "signupsite/internal/implementations/sentry_reporter"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger
	Now    func() time.Time

	// RateLimiter is nil when sign-up rate limiting is disabled.
	RateLimiter drl.RateLimiter
	Reporter    reporting.Reporter
	Views       *views.Views
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	deps.Now = func() time.Time { return time.Now().UTC() }

	closeRedisClient := deps.initRedisClient()
	flushSentry := deps.initSentry()
	deps.initViews()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsDebug)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if !deps.Config.IsRateLimitingEnabled() {
		deps.Logger.Info(context.Background(), "Sign-up rate limiting is disabled.")
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not parse Redis URL.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.RateLimiter = ratelimiter.NewRedis(redisClient, deps.Logger, deps.Now)
	deps.Logger.Info(
		context.Background(),
		"Sign-up rate limiting is enabled.",
		dl.Entry("perMinute", deps.Config.SignUpRateLimitPerMinute),
	)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if !deps.Config.IsSentryEnabled() {
		deps.Reporter = sentryreporter.Noop{}
		deps.Logger.Info(context.Background(), "Sentry is disabled.")
		return func() {}
	}

	reporter, flush, err := sentryreporter.New(deps.Config.SentryDsn, deps.Config.SentryEnvironment)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not init Sentry.", dl.Entry("err", err))
		panic(err)
	}
	deps.Reporter = reporter
	deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
	return func() {
		ok := flush(5 * time.Second)
		deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
	}
}

func (deps *Deps) initViews() {
	v, err := views.New()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not parse page templates.", dl.Entry("err", err))
		panic(err)
	}
	deps.Views = v
}
