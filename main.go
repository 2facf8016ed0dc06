package main

import (
	"github.com/biosecret/go-tasks/app"
	_ "github.com/biosecret/go-tasks/docs"
)

// @title                       go-tasks API
// @version                     1.0
// @description                 Mock task management API. Data is rebuilt on every request.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
