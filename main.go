package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/eventpass-api/cmd/app"
)

// @title           EventPass API
// @version         1.0
// @description     Event registration, payment tracking and door check-in.
//
// @contact.name   API Support
// @contact.email  support@eventpass.local
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
