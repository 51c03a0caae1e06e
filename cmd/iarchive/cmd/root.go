package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iarchive/iarchive/internal/cmd/globals"
	"github.com/iarchive/iarchive/internal/cmd/output"
	"github.com/iarchive/iarchive/pkg/catalog"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/session"
	"github.com/iarchive/iarchive/pkg/storage"
	"github.com/iarchive/iarchive/pkg/storage/files"
	"github.com/iarchive/iarchive/pkg/storage/memory"
)

var (
	configFile  string
	dataDir     string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "iarchive",
	Short: "Institutional Archive catalog CLI",
	Long: `iarchive manages an institutional digital archive: yearbooks,
photographs, publications, and documents, together with the users,
categories, access requests, and activity log around them.

The catalog is kept fully in memory and mirrored to a per-collection
document store on every mutation, so browsing and searching never touch
the storage layer. A fresh data directory starts from the built-in
sample collections.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.iarchive.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "catalog data directory (in-memory only when unset)")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
	if err := viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir")); err != nil {
		panic(fmt.Sprintf("Failed to bind data-dir flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".iarchive" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".iarchive")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("IARCHIVE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	// Setup output format based on terminal detection
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}

	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	config := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}

	if config.Format == "" {
		config.Format = "auto"
	}
	if config.Output == "" {
		config.Output = "stderr"
	}

	logging.Configure(config)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}

// openStore returns the persistence backend selected by --data-dir, falling
// back to the process-local in-memory store.
func openStore() (storage.Store, error) {
	dir := viper.GetString("data_dir")
	if dir == "" {
		return memory.New(), nil
	}
	return files.New(dir)
}

// openCatalog builds the catalog over the configured store.
func openCatalog() (catalog.Catalog, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return catalog.New(catalog.WithStore(store))
}

// openSessions builds the session manager over the configured store.
func openSessions() (*session.Manager, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return session.NewManager(store, logging.Default()), nil
}
