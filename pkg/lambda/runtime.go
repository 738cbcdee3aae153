package lambda

import (
	"context"
	"sync"
	"time"

	"terraform-day4-lambda/internal/logging"
	"terraform-day4-lambda/internal/models"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

// HandlerFunc is the invocation signature served by the Lambda runtime
type HandlerFunc func(ctx context.Context, event models.Event) (models.Response, error)

// Invoker tracks the execution environment across warm invocations
type Invoker struct {
	handler     HandlerFunc
	logger      *logrus.Logger
	initialized time.Time

	mu          sync.Mutex
	invocations int
	lastUsed    time.Time
}

// NewInvoker creates a new invoker around handler
func NewInvoker(handler HandlerFunc, logger *logrus.Logger) *Invoker {
	if logger == nil {
		logger = logrus.New()
	}
	return &Invoker{
		handler:     handler,
		logger:      logger,
		initialized: time.Now(),
	}
}

// Invoke runs one invocation, recording whether it hit a cold environment
func (i *Invoker) Invoke(ctx context.Context, event models.Event) (models.Response, error) {
	i.mu.Lock()
	i.invocations++
	count := i.invocations
	idle := time.Duration(0)
	if !i.lastUsed.IsZero() {
		idle = time.Since(i.lastUsed)
	}
	i.lastUsed = time.Now()
	i.mu.Unlock()

	logging.FromContext(ctx, i.logger).WithFields(logrus.Fields{
		"cold_start": count == 1,
		"invocation": count,
		"idle_ms":    idle.Milliseconds(),
		"env_age_ms": time.Since(i.initialized).Milliseconds(),
	}).Debug("Invocation started")

	return i.handler(ctx, event)
}

// Invocations returns how many invocations this environment has served
func (i *Invoker) Invocations() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.invocations
}

// Start hands the invoker to the Lambda runtime. It does not return.
func (i *Invoker) Start() {
	awslambda.StartWithOptions(
		i.Invoke,
		awslambda.WithEnableSIGTERM(func() {
			i.logger.WithField("invocations", i.Invocations()).Info("Runtime shutting down")
		}),
	)
}
