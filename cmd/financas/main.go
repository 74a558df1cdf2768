package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/financas-dev/financas/internal/commands"
)

func main() {
	// Optional .env with FINANCAS_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
