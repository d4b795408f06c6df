package main

import (
	"os"

	"conandweb/cmd/conandweb/cmd"
)

// @title conandweb API
// @version 1.0
// @description Localized page view models, contact relay and admin API of the CONAND website.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the operator JWT.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
