package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/tumor-knn/infra/config"
	"github.com/drakos74/tumor-knn/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfgFile string

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knn",
		Short: "classify tumor samples with k nearest neighbours",
		Long:  "evaluates a k nearest neighbours classifier of benign and malignant tumor samples for each of the given k",
		Args:  cobra.NoArgs,
		// errors are logged by main
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (json or yaml)")
	config.Flags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.New(cfg, cmd.OutOrStdout()).Run(ctx)
	return err
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
