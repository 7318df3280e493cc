package main

import (
	"log"

	"capquote/internal/adapter/http/routes"
	"capquote/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cap Quote Service API
// @version         1.0
// @description     Cap quote configuration threads: agent response ingestion, quote versions, handoffs and deposits.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
