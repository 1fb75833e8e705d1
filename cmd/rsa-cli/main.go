// Package main is the entry point for the rsa-cli application.
// It loads the configuration, initializes logging, registers the textbook RSA
// sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/prophetss/rsa/cmd/rsa-cli/internal/commands"
	"github.com/prophetss/rsa/internal/pkg/config"
	"github.com/prophetss/rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.InitializeConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `rsa-cli generates textbook RSA key pairs and encrypts or decrypts
messages with them. Key components and ciphertexts are printed as radix-62 text.

Textbook RSA has no padding: ciphertexts are deterministic and malleable.
Do not use it to protect real data.

Settings are read from the YAML file named by CONFIG_PATH, if set, and may be
overridden with RSA_-prefixed environment variables such as RSA_RSA_KEY_SIZE.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
