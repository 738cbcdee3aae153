package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"terraform-day4-lambda/internal/middleware"
	"terraform-day4-lambda/internal/models"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvocationPath is the invoke endpoint exposed by the Lambda runtime interface emulator
const InvocationPath = "/2015-03-31/functions/function/invocations"

// InvokeHandler exposes the hello handler over HTTP for local development
type InvokeHandler struct {
	hello *HelloHandler
}

// NewInvokeHandler creates a new invoke handler
func NewInvokeHandler(hello *HelloHandler) *InvokeHandler {
	return &InvokeHandler{hello: hello}
}

// Invoke runs one invocation with the request body as event
// @Summary Invoke the function
// @Description Runs the handler with the request body as event and returns its response record
// @Tags invocations
// @Accept json
// @Produce json
// @Param event body object false "Invocation event"
// @Success 200 {object} models.Response
// @Failure 400 {object} middleware.ErrorResponse
// @Router /2015-03-31/functions/function/invocations [post]
func (h *InvokeHandler) Invoke(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		_ = c.Error(fmt.Errorf("failed to read request body: %w", err)).SetType(gin.ErrorTypeBind)
		return
	}

	event, err := decodeEvent(payload)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx := lambdacontext.NewContext(c.Request.Context(), &lambdacontext.LambdaContext{
		AwsRequestID: requestID,
	})

	resp, err := h.hello.Handle(ctx, event)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// decodeEvent parses an invocation body. An empty body or JSON null is an empty event.
func decodeEvent(payload []byte) (models.Event, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return models.Event{}, nil
	}

	var event models.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("event must be a JSON object: %w", err)
	}
	if event == nil {
		event = models.Event{}
	}
	return event, nil
}
