package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/affiliatekit/amazonapi/amazon"
	"github.com/affiliatekit/amazonapi/config"
	"github.com/affiliatekit/amazonapi/creators"
	"github.com/affiliatekit/amazonapi/paapi"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  amazon.API

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information from build flags.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "amazonapi",
	Short: "Query the Amazon affiliate catalog APIs",
	Long: `amazonapi is a CLI driver for the affiliate catalog client library.
It retrieves item detail, search results, product variations and browse
node metadata from any supported marketplace, using either the legacy
PA-API v5 backend or the Creators API backend depending on which
credentials are configured.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON responses")

	rootCmd.AddCommand(getItemsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(variationsCmd)
	rootCmd.AddCommand(browseNodesCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and API client.
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// A local .env is a convenience for the credential variables.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if cfg.UseCreators() {
		logger.Debug().Str("version", cfg.Creators.APIVersion).Msg("Using Creators API backend")
	} else {
		logger.Debug().Str("country", cfg.Country).Msg("Using PA-API v5 backend")
	}
	return nil
}

// newClient picks the backend based on which credential set is present.
// The modern credentials win when both are configured.
func newClient() (amazon.API, error) {
	throttle := time.Duration(cfg.Throttle * float64(time.Second))

	if cfg.UseCreators() {
		opts := []creators.Option{
			creators.WithThrottle(throttle),
			creators.WithCountry(cfg.Country),
		}
		if cfg.Marketplace != "" {
			opts = append(opts, creators.WithMarketplaceURL(cfg.Marketplace))
		}
		return creators.NewClient(
			cfg.Creators.CredentialID,
			cfg.Creators.CredentialSecret,
			cfg.Creators.APIVersion,
			cfg.PartnerTag,
			logger,
			opts...,
		)
	}

	opts := []paapi.Option{
		paapi.WithThrottle(throttle),
		paapi.WithCountry(cfg.Country),
	}
	if cfg.Marketplace != "" {
		opts = append(opts, paapi.WithMarketplaceURL(cfg.Marketplace))
	}
	return paapi.NewClient(
		cfg.Legacy.AccessKey,
		cfg.Legacy.SecretKey,
		cfg.PartnerTag,
		logger,
		opts...,
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("amazonapi %s (built %s)\n", version, buildTime)
	},
}
