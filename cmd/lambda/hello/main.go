package main

import (
	"terraform-day4-lambda/internal/config"
	"terraform-day4-lambda/pkg/server"

	"github.com/sirupsen/logrus"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	sc := config.GetServerlessConfig()
	container.Logger.WithFields(logrus.Fields{
		"function_name":    sc.FunctionName,
		"function_version": sc.FunctionVersion,
		"memory_mb":        sc.MemoryLimitMB,
		"region":           sc.Region,
		"stage":            sc.Stage,
		"deployment_mode":  config.GetDeploymentMode(),
	}).Debug("Execution environment initialized")
}

func main() {
	container.Invoker.Start()
}
