package env

import (
	"github.com/joho/godotenv"
)

// Load reads the first .env file it finds into the process environment.
// Missing files are fine: container and CI environments inject variables
// directly.
func Load() {
	candidates := []string{
		".env",
		"../../.env", // from cmd/carmommy or cmd/migrate to project root
	}

	for _, f := range candidates {
		if err := godotenv.Load(f); err == nil {
			return
		}
	}
}
