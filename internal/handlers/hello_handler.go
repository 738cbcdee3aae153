package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"terraform-day4-lambda/internal/logging"
	"terraform-day4-lambda/internal/models"

	"github.com/sirupsen/logrus"
)

// fallbackErrorBody is returned when the error payload itself cannot be encoded
const fallbackErrorBody = `{"error":"Internal server error","message":"failed to encode error response"}`

// PayloadBuilder produces the value serialized into a successful response body
type PayloadBuilder func(ctx context.Context, event models.Event) (any, error)

// Marshaler serializes a payload into JSON text
type Marshaler func(v any) ([]byte, error)

// DefaultPayloadBuilder returns the fixed success payload for every event
func DefaultPayloadBuilder(_ context.Context, _ models.Event) (any, error) {
	return models.NewSuccessPayload(), nil
}

// HelloHandler answers invocations with the fixed greeting payload
type HelloHandler struct {
	logger  *logrus.Logger
	build   PayloadBuilder
	marshal Marshaler
}

// Option configures a HelloHandler
type Option func(*HelloHandler)

// WithPayloadBuilder replaces the payload construction step
func WithPayloadBuilder(b PayloadBuilder) Option {
	return func(h *HelloHandler) {
		if b != nil {
			h.build = b
		}
	}
}

// WithMarshaler replaces the payload serialization step
func WithMarshaler(m Marshaler) Option {
	return func(h *HelloHandler) {
		if m != nil {
			h.marshal = m
		}
	}
}

// NewHelloHandler creates a new hello handler
func NewHelloHandler(logger *logrus.Logger, opts ...Option) *HelloHandler {
	if logger == nil {
		logger = logrus.New()
	}
	h := &HelloHandler{
		logger:  logger,
		build:   DefaultPayloadBuilder,
		marshal: json.Marshal,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes one invocation. It never returns a non-nil error:
// construction failures are reported as a 500 response instead.
func (h *HelloHandler) Handle(ctx context.Context, event models.Event) (models.Response, error) {
	log := logging.FromContext(ctx, h.logger)
	log.Infof("Lambda function invoked with event: %s", describeEvent(event))

	result := h.construct(ctx, event)
	if !result.OK() {
		log.WithField("error", result.Err.Error()).Errorf("Error in Lambda execution: %v", result.Err)
		return errorResponse(result.Err), nil
	}

	log.Info("Lambda function executed successfully")
	return models.Response{
		StatusCode: result.StatusCode(),
		Body:       string(result.Body),
	}, nil
}

// construct runs the build and marshal steps, converting errors and panics
// into the failure variant
func (h *HelloHandler) construct(ctx context.Context, event models.Event) (result models.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = models.Failure(models.NewConstructionError("panic", fmt.Errorf("%v", r)))
		}
	}()

	payload, err := h.build(ctx, event)
	if err != nil {
		return models.Failure(models.NewConstructionError("build", err))
	}

	body, err := h.marshal(payload)
	if err != nil {
		return models.Failure(models.NewConstructionError("marshal", err))
	}
	if !json.Valid(body) {
		return models.Failure(models.NewConstructionError("marshal", errors.New("encoded payload is not valid JSON")))
	}

	return models.Success(body)
}

func errorResponse(err error) models.Response {
	body, merr := json.Marshal(models.NewErrorPayload(err))
	if merr != nil {
		body = []byte(fallbackErrorBody)
	}
	return models.Response{
		StatusCode: models.Failure(err).StatusCode(),
		Body:       string(body),
	}
}

func describeEvent(event models.Event) string {
	if event == nil {
		event = models.Event{}
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Sprintf("<unserializable event: %v>", err)
	}
	return string(data)
}
