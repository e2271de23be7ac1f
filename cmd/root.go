package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexiconlabs/counsel/pkg/config"
	"github.com/lexiconlabs/counsel/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "counsel",
	Short: "Console front end for the Counsel legal assistant",
	Long: `Attaches to a Counsel agent turn and renders the UI document the
agent declares while it streams.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		turnID := viper.GetString("turn")
		if turnID == "" {
			return fmt.Errorf("--turn is required")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runTurn(ctx, turnID)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .counsel/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("turn", "t", "", "agent turn id to attach to")
	viper.BindPFlag("turn", rootCmd.PersistentFlags().Lookup("turn"))

	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}
