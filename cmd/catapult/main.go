package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/catapult-sh/catapult/internal/cli"
)

func main() {
	// .env lets CATAPULT_PRIVATE_KEY stay out of the persisted settings
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
