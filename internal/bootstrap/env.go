package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// Loadenv reads the given .env files (or ./.env) into the process environment.
// It runs before the logger exists, so it reports through the std logger.
func Loadenv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
