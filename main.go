package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/connaissance/fest-api/cmd/app"
)

// @title          Connaissance festival API
// @version        1.0
// @description    Events, registrations and site settings for the Connaissance festival.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath  /api
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
