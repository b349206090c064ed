package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"signupsite/internal/app"
	"signupsite/internal/app/deps"
	"signupsite/internal/app/services"
	"syscall"

	dl "signupsite/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		signal.Stop(stopCh)
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", "http://"+server.Addr),
		dl.Entry("publicDir", deps.Config.PublicDir),
		dl.Entry("isDebug", deps.Config.IsDebug),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		deps.Logger.Error(context.Background(), "HTTP server has failed.", dl.Entry("err", err))
		os.Exit(1)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, deps.Config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "HTTP server did not shut down cleanly.", dl.Entry("err", err))
	}

	deps.Logger.Info(ctx, "HTTP server has shut down.")
	shutDownDeps()
}
