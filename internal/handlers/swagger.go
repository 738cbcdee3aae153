package handlers

// @title terraform-day4 hello function
// @version 1.0
// @description Local invoke server for the terraform-day4 Lambda function

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name invocations
// @tag.description Function invocations

// @tag.name health
// @tag.description Liveness checks
