// hrm-api-helpers/main.go
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var setupLog = logr.Discard()

type rootOptions struct {
	configPath string
	verbosity  int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hrmctl",
		Short:         "Talk to the HR REST API the way the API tests do",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.verbosity)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			setupLog = log.WithName("hrmctl")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("HRM_CONFIG"),
		"Path of the config.properties file. Defaults to src/main/resources/config.properties.")
	cmd.PersistentFlags().IntVarP(&opts.verbosity, "verbose", "v", 0,
		"Log verbosity. 1 traces every request.")

	cmd.AddCommand(newShapeCmd(opts))
	cmd.AddCommand(newUniqueCmd())
	cmd.AddCommand(newRenderCmd())
	return cmd
}

func newLogger(verbosity int) (logr.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zc.OutputPaths = []string{"stderr"}
	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		setupLog.Error(err, "command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
