// Package cmd implements the ringdemo CLI commands.
//
// The root command carries the global --config and --verbose flags and
// dispatches to render, play and config.
package cmd

import (
	"log/slog"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/go-drift/progressring/cmd/ringdemo/internal/config"
	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/raster"
)

// Version information set at build time.
var Version = "0.1.0-dev"

type globalFlags struct {
	configPath string
	verbose    bool
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "ringdemo",
		Short:         "Progress ring countdown demo",
		Long:          "ringdemo fills a progress ring from a repeating timer and shows the\nelapsed seconds in its center, as PNG frames or live in the terminal.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flags.verbose)
		},
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "Config file path")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose log output")

	root.AddCommand(
		newRenderCmd(flags),
		newPlayCmd(flags),
		newConfigCmd(flags),
	)
	return root
}

func setupLogging(verbose bool) {
	log.SetHandler(cli.Default)
	errors.SetHandler(logHandler{})
	if verbose {
		log.SetLevel(log.DebugLevel)
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		log.Debugf("ringdemo version %s", Version)
	}
}

// resolveConfig loads the config file. An explicit --config must exist; the
// default path is optional.
func (f *globalFlags) resolveConfig(cmd *cobra.Command) (*config.Resolved, error) {
	required := false
	if flag := cmd.Flag("config"); flag != nil {
		required = flag.Changed
	}
	resolved, err := config.Resolve(f.configPath, required)
	if err != nil {
		return nil, err
	}
	if resolved.Path != "" {
		log.Debugf("read config from %s", resolved.Path)
	} else {
		log.Debug("no config file, using defaults")
	}
	return resolved, nil
}

// logHandler routes errors reported by the ring packages to apex/log.
type logHandler struct{}

func (logHandler) HandleError(err *errors.Error) {
	log.WithFields(log.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	}).WithError(err.Err).Error("ring error")
}

func (logHandler) HandlePanic(err *errors.PanicError) {
	entry := log.WithFields(log.Fields{
		"op":    err.Op,
		"value": err.Value,
	})
	entry.Error("recovered panic")
	entry.Debug(err.StackTrace)
}
