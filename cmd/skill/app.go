package main

//go:generate mockgen -source=app.go -destination=mock/dispatcher.go -package=mock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/alexa-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"bitbucket.org/sotavant/alexa-skill/internal/skill"
)

type Dispatcher interface {
	Handle(ctx context.Context, req *models.Request, ic skill.InvocationContext, cb skill.Callback)
}

type app struct {
	dispatcher Dispatcher
}

func newApp(d Dispatcher) *app {
	return &app{dispatcher: d}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ic := skill.InvocationContext{
		InvocationID: logger.CorrelationID(ctx),
	}

	answered := false
	a.dispatcher.Handle(ctx, &req, ic, func(err error, resp *models.Response) {
		if answered {
			logger.Log.Error("dispatcher completed request twice", zap.String("type", req.Request.Type))
			return
		}
		answered = true

		if err != nil {
			writeDispatchError(w, req.Request.Type, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		enc := json.NewEncoder(w)
		if err := enc.Encode(resp); err != nil {
			logger.Log.Debug("error encoding response", zap.Error(err))
			return
		}
		logger.Log.Debug("sending HTTP 200 response")
	})

	if !answered {
		logger.Log.Error("dispatcher returned without completing request", zap.String("type", req.Request.Type))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeDispatchError(w http.ResponseWriter, requestType string, err error) {
	if errors.Is(err, skill.ErrUnsupportedRequestType) {
		logger.Log.Debug("unsupported request type", zap.String("type", requestType))
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	logger.Log.Error("cannot dispatch request", zap.String("type", requestType), zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}
