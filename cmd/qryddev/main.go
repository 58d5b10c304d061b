// Package main provides the qryddev CLI: it inspects device settings files
// and drives jobs on the QRyd web API, journaling them locally.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "0.1.0"

// defaultBaseURL is the public endpoint of the QRyd web API.
const defaultBaseURL = "https://api.qryddemo.itp3.uni-stuttgart.de/v5_2"

// Config keys; flags and QRYD_* environment variables bind to them.
const (
	cfgKeyBaseURL = "base_url"
	cfgKeyToken   = "token"
	cfgKeyDevice  = "device"
	cfgKeyTimeout = "timeout"
	cfgKeyJournal = "journal"
	cfgKeyDev     = "dev"
)

// Flag values and the per-run state PersistentPreRunE fills in.
var (
	flagConfig string
	flagDebug  bool

	cfg    *viper.Viper
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the qryddev command tree with fresh state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qryddev",
		Short:        "Inspect QRyd devices and drive jobs on the web API",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(cmd); err != nil {
				return err
			}
			if logger, err = newLogger(); err != nil {
				return err
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "config file (default: .qryddev.yaml in cwd or home)")
	flags.BoolVar(&flagDebug, "debug", false, "log at debug level")
	flags.String("base-url", defaultBaseURL, "web API endpoint root")
	flags.String("token", "", "web API access token (default: QRYD_API_TOKEN)")
	flags.String("device", "", "default cloud backend for submissions")
	flags.Duration("timeout", 0, "HTTP timeout per request")
	flags.String("journal", defaultJournalPath(), "job journal database file")
	flags.Bool("dev", false, "post jobs to the development deployment")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newEdgesCmd())
	root.AddCommand(newSubmitCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newResultCmd())
	root.AddCommand(newCancelCmd())
	root.AddCommand(newJobsCmd())

	return root
}

// loadConfig resolves the configuration: explicit flags win over QRYD_*
// environment variables, which win over the config file. A missing config
// file is an error only when --config named one.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyJournal, defaultJournalPath())

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		cfgKeyBaseURL: "base-url",
		cfgKeyToken:   "token",
		cfgKeyDevice:  "device",
		cfgKeyTimeout: "timeout",
		cfgKeyJournal: "journal",
		cfgKeyDev:     "dev",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix("QRYD")
	v.AutomaticEnv()

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		return v, nil
	}

	v.SetConfigName(".qryddev")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// newLogger builds the run's logger; --debug switches to the development
// preset so debug-level API logs surface.
func newLogger() (*zap.Logger, error) {
	if flagDebug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// defaultJournalPath places the journal under the user's home directory.
func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qryddev.db"
	}

	return filepath.Join(home, ".qryddev", "jobs.db")
}
