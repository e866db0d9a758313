package main

import (
	"fmt"
	"os"
	"route-roster-service/internal/platform/logger"

	"github.com/joho/godotenv"
)

// main loads .env (if any) and runs the CLI.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.New("main").Infof("no .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
