package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"subgate/internal/config"
	"subgate/internal/observability"
	"subgate/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "subgatectl",
	Short:         "Operate the subgate database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile := viper.GetString("env-file")
		if envFile == "" {
			return nil
		}
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		return nil
	},
}

// openStore connects using the DB_* environment variables.
func openStore(ctx context.Context) (store.Store, error) {
	logger := observability.NewLogger()
	if viper.GetBool("quiet") {
		logger = observability.NewNopLogger()
	}

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return store.Store{}, err
	}
	st, err := store.New(dbConfig.ConnectionString(), logger)
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Debug(ctx, "connected to database")
	return st, nil
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "env.local",
		"File with DB_* variables, ignored when missing")
	viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file"))

	rootCmd.PersistentFlags().BoolP("quiet", "q", false,
		"Suppress structured logs")
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	viper.SetEnvPrefix("SUBGATECTL")
	viper.AutomaticEnv()
}
