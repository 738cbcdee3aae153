// Package logging builds the logrus logger shared by the Lambda entry point
// and the local invoke server.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"terraform-day4-lambda/internal/config"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// New creates a logger from the logging configuration, writing to stdout
func New(cfg *config.Config) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a logger writing to out
func NewWithOutput(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Log.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

// FromContext returns an entry carrying the invocation identifiers found in
// the Lambda context, if any
func FromContext(ctx context.Context, logger *logrus.Logger) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if ctx == nil {
		return entry
	}

	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return entry
	}

	fields := logrus.Fields{
		"aws_request_id": lc.AwsRequestID,
	}
	if lc.InvokedFunctionArn != "" {
		fields["invoked_function_arn"] = lc.InvokedFunctionArn
	}
	if lambdacontext.FunctionName != "" {
		fields["function_name"] = lambdacontext.FunctionName
	}

	return entry.WithFields(fields)
}
