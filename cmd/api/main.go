package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zenith/core/cmd/api/commands"
)

// @title Zenith API
// @version 1.0
// @description Daily task list and mood journal backend.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token issued by the identity provider.

func main() {
	rootCmd := &cobra.Command{
		Use:   "zenith",
		Short: "Zenith API Server",
		Long:  `Zenith is a personal productivity backend combining a daily task list with a mood and energy journal.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
