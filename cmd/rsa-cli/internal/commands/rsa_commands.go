package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/prophetss/rsa/internal/infrastructure/cryptography"
	"github.com/prophetss/rsa/internal/pkg/config"
	"github.com/prophetss/rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// Output format constants
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DemoMessage is the message encrypted by the demo command
const DemoMessage = "I am What I am"

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	settings     config.RSASettings
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler(cfg *config.Config) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		settings:     cfg.RSA,
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// newKeyGenerator builds a key generator whose entropy source honours the --seed flag.
func (commandHandler *RSACommandHandler) newKeyGenerator(cmd *cobra.Command) (cryptoalg.RSAKeyGenerator, error) {
	settings := commandHandler.settings
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return nil, fmt.Errorf("invalid seed flag: %w", err)
		}
		settings.Entropy = config.EntropySeeded
		settings.Seed = seed
	}
	if settings.Entropy == config.EntropySeeded {
		commandHandler.logger.Warn("Using a seeded entropy source, generated keys are reproducible")
	}

	random, err := cryptography.NewEntropySource(&settings)
	if err != nil {
		return nil, err
	}
	return cryptography.NewRSAKeyGenerator(random, commandHandler.logger)
}

func (commandHandler *RSACommandHandler) keySize(cmd *cobra.Command) (uint, error) {
	if !cmd.Flags().Changed("key-size") {
		return commandHandler.settings.KeySize, nil
	}
	keySize, err := cmd.Flags().GetUint("key-size")
	if err != nil {
		return 0, fmt.Errorf("invalid key-size flag: %w", err)
	}
	return keySize, nil
}

// GenerateRSAKeysCmd generates a key pair and prints n, e and d
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := commandHandler.keySize(cmd)
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	generator, err := commandHandler.newKeyGenerator(cmd)
	if err != nil {
		return err
	}

	keyPair, err := generator.GenerateKeys(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	return writeKeyPair(cmd.OutOrStdout(), keyPair, output)
}

// EncryptRSACmd encrypts a message given inline or read from a file
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	n, err := cmd.Flags().GetString("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}
	e, err := cmd.Flags().GetString("e")
	if err != nil {
		return fmt.Errorf("invalid e flag: %w", err)
	}

	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	ciphertext, err := commandHandler.rsaProcessor.Encrypt(message, cryptoalg.PublicKey{N: n, E: e})
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return err
}

// DecryptRSACmd decrypts a radix-62 ciphertext and writes the raw message
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	n, err := cmd.Flags().GetString("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}
	d, err := cmd.Flags().GetString("d")
	if err != nil {
		return fmt.Errorf("invalid d flag: %w", err)
	}
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}

	message, err := commandHandler.rsaProcessor.Decrypt(ciphertext, cryptoalg.PrivateKey{N: n, D: d})
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = cmd.OutOrStdout().Write(message)
	return err
}

// DemoRSACmd generates a key pair, encrypts DemoMessage and decrypts it again, printing every step
func (commandHandler *RSACommandHandler) DemoRSACmd(cmd *cobra.Command, _ []string) error {
	keySize, err := commandHandler.keySize(cmd)
	if err != nil {
		return err
	}

	generator, err := commandHandler.newKeyGenerator(cmd)
	if err != nil {
		return err
	}

	keyPair, err := generator.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeKeyPair(out, keyPair, OutputText); err != nil {
		return err
	}

	ciphertext, err := commandHandler.rsaProcessor.Encrypt([]byte(DemoMessage), keyPair.Public)
	if err != nil {
		return err
	}

	message, err := commandHandler.rsaProcessor.Decrypt(ciphertext, keyPair.Private)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\noriginal: %s\nencode: %s\ndecode: %s\n", DemoMessage, ciphertext, message)
	return err
}

func readMessage(cmd *cobra.Command) ([]byte, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile != "" {
		message, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return message, nil
	}

	if !cmd.Flags().Changed("message") {
		return nil, errors.New("either --message or --input-file is required")
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return nil, fmt.Errorf("invalid message flag: %w", err)
	}
	return []byte(message), nil
}

func writeKeyPair(w io.Writer, keyPair *cryptoalg.KeyPair, output string) error {
	switch output {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(keyPair)
	case OutputText:
		_, err := fmt.Fprintf(w, "id: %s\nn: %s\ne: %s\nd: %s\n", keyPair.ID, keyPair.Public.N, keyPair.Public.E, keyPair.Private.D)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

// InitRSACommands registers textbook RSA commands
func InitRSACommands(rootCmd *cobra.Command, cfg *config.Config) error {
	handler, err := NewRSACommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().Uint("key-size", cryptoalg.DefaultKeySize, fmt.Sprintf("Modulus size in bits, between %d and %d", cryptoalg.MinKeySize, cryptoalg.MaxKeySize))
	generateRSAKeysCmd.Flags().Uint64("seed", 0, "Seed a deterministic entropy source (reproducible keys, testing only)")
	generateRSAKeysCmd.Flags().StringP("output", "o", OutputText, "Output format: text or json")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSACmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a public key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSACmd.Flags().String("n", "", "Radix-62 modulus")
	encryptRSACmd.Flags().String("e", "", "Radix-62 public exponent")
	encryptRSACmd.Flags().String("message", "", "Message to encrypt")
	encryptRSACmd.Flags().String("input-file", "", "Path to a file holding the message to encrypt")
	encryptRSACmd.MarkFlagsMutuallyExclusive("message", "input-file")
	for _, name := range []string{"n", "e"} {
		if err := encryptRSACmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark flag %s required: %w", name, err)
		}
	}
	rootCmd.AddCommand(encryptRSACmd)

	var decryptRSACmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a private key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSACmd.Flags().String("n", "", "Radix-62 modulus")
	decryptRSACmd.Flags().String("d", "", "Radix-62 private exponent")
	decryptRSACmd.Flags().String("ciphertext", "", "Radix-62 ciphertext")
	for _, name := range []string{"n", "d", "ciphertext"} {
		if err := decryptRSACmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark flag %s required: %w", name, err)
		}
	}
	rootCmd.AddCommand(decryptRSACmd)

	var demoRSACmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate a key pair and round-trip a sample message",
		Args:  cobra.NoArgs,
		RunE:  handler.DemoRSACmd,
	}
	demoRSACmd.Flags().Uint("key-size", cryptoalg.DefaultKeySize, "Modulus size in bits")
	demoRSACmd.Flags().Uint64("seed", 0, "Seed a deterministic entropy source (reproducible keys, testing only)")
	rootCmd.AddCommand(demoRSACmd)

	return nil
}
