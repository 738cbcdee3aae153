package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds the settings the Lambda runtime injects
type ServerlessConfig struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	MemoryLimitMB   int
	Region          string
	Stage           string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = loadServerlessConfig()
	})
	return serverlessConfig
}

func loadServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:        isRunningInLambda(),
		FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		MemoryLimitMB:   GetEnvAsInt("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", 0),
		Region:          GetEnv("AWS_REGION", os.Getenv("AWS_DEFAULT_REGION")),
		Stage:           GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// GetOptimizedConfig returns configuration adjusted for the current deployment mode.
// CloudWatch only parses structured records, so the Lambda runtime always logs JSON.
func GetOptimizedConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if IsServerlessMode() {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}
