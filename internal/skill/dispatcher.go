package skill

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/sotavant/alexa-skill/internal/models"
)

const LaunchGreeting = "Hello world!"

const (
	OutcomeOK          = "ok"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

// InvocationContext is what the host knows about the current invocation.
// InvocationID identifies a failure when the request carries no requestId.
type InvocationContext struct {
	InvocationID string
}

// Callback receives the outcome of Handle. Exactly one of err and resp is non-nil.
type Callback func(err error, resp *models.Response)

// Recorder observes finished dispatches.
type Recorder interface {
	ObserveDispatch(kind string, outcome string, elapsed time.Duration)
}

type Dispatcher struct {
	recorder Recorder
}

type Option func(*Dispatcher)

func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle dispatches req and calls cb exactly once with the result.
// Panics raised while building the response are reported as a *DispatchError.
func (d *Dispatcher) Handle(ctx context.Context, req *models.Request, ic InvocationContext, cb Callback) {
	resp, err := d.safeDispatch(ctx, req, ic)
	cb(err, resp)
}

// Dispatch returns the response envelope for req. Every error is a *DispatchError.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.Request, ic InvocationContext) (*models.Response, error) {
	return d.safeDispatch(ctx, req, ic)
}

func (d *Dispatcher) safeDispatch(ctx context.Context, req *models.Request, ic InvocationContext) (resp *models.Response, err error) {
	start := time.Now()

	requestID := ic.InvocationID
	if req != nil && req.Request.RequestID != "" {
		requestID = req.Request.RequestID
	}

	kind := KindUnknown
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &DispatchError{RequestID: requestID, Err: fmt.Errorf("panic: %v", r)}
			d.observeRecovered(kind, start)
		}
	}()

	if req == nil {
		d.observe(kind, OutcomeError, start)
		return nil, &DispatchError{RequestID: requestID, Err: ErrNilRequest}
	}
	if err := ctx.Err(); err != nil {
		d.observe(kind, OutcomeError, start)
		return nil, &DispatchError{RequestID: requestID, Err: err}
	}

	kind, err = ParseRequestKind(req.Request.Type)
	if err != nil {
		d.observe(kind, OutcomeUnsupported, start)
		return nil, &DispatchError{RequestID: requestID, Err: err}
	}

	switch kind {
	case KindLaunch:
		resp = launchResponse()
	default:
		d.observe(kind, OutcomeUnsupported, start)
		return nil, &DispatchError{RequestID: requestID, Err: &UnsupportedRequestTypeError{Type: req.Request.Type}}
	}

	d.observe(kind, OutcomeOK, start)
	return resp, nil
}

func (d *Dispatcher) observe(kind RequestKind, outcome string, start time.Time) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDispatch(kind.String(), outcome, time.Since(start))
}

// observeRecovered records a recovered panic. The recorder itself may be what
// panicked, so a second panic here is dropped.
func (d *Dispatcher) observeRecovered(kind RequestKind, start time.Time) {
	defer func() {
		_ = recover()
	}()
	d.observe(kind, OutcomeError, start)
}

func launchResponse() *models.Response {
	return &models.Response{
		Version: models.ResponseVersion,
		SessionAttributes: map[string]any{
			models.SessionAttributeAlexaFs: nil,
		},
		Response: models.ResponsePayload{
			ShouldEndSession: false,
			OutputSpeech: &models.OutputSpeech{
				Type: models.SpeechTypePlainText,
				Text: LaunchGreeting,
			},
		},
	}
}
