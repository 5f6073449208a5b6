package main

import (
	"clictopay_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ClicToPay Payment API
// @version         1.0
// @description     HTTP front for the ClicToPay merchant gateway (register, pre-authorize, deposit, cancel, refund, status).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a test_ or live_ prefixed key.

func main() {
	routes.Run()
}
