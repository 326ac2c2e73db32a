package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/alexa-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-skill/internal/metrics"
	"bitbucket.org/sotavant/alexa-skill/internal/skill"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	m := metrics.New()
	a := newApp(skill.NewDispatcher(skill.WithRecorder(m)))

	logger.Log.Info("Running server", zap.String("address", flagRunAddr))

	return http.ListenAndServe(flagRunAddr, newRouter(a, m))
}

func newRouter(a *app, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(dropRefusedEncodings)
	r.Use(middleware.Compress(5, "application/json"))

	r.Handle("/", logger.RequestLogger(decompressMiddleware(a.webhook)))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
