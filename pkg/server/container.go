package server

import (
	"fmt"

	"terraform-day4-lambda/internal/config"
	"terraform-day4-lambda/internal/handlers"
	"terraform-day4-lambda/internal/logging"
	"terraform-day4-lambda/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Hello   *handlers.HelloHandler
	Invoker *lambda.Invoker
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...handlers.Option) (*Container, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return newContainer(cfg, logger, opts...), nil
}

// NewContainerWithLogger creates a container around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger, opts ...handlers.Option) (*Container, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return newContainer(cfg, logger, opts...), nil
}

func newContainer(cfg *config.Config, logger *logrus.Logger, opts ...handlers.Option) *Container {
	hello := handlers.NewHelloHandler(logger, opts...)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Hello:   hello,
		Invoker: lambda.NewInvoker(hello.Handle, logger),
	}
}

// Router builds the local invoke server for this container
func (c *Container) Router() *gin.Engine {
	return handlers.NewRouter(&handlers.RouterConfig{
		Config: c.Config,
		Logger: c.Logger,
		Hello:  c.Hello,
	})
}
