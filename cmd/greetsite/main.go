// greetsite scaffolds the greeting site, generates its bundler config, serves
// the greeting API and drives the greeting button from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/greetsite/internal/config"
	xlog "github.com/3-lines-studio/greetsite/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit signals a non-zero exit after the command already reported why.
var errExit = errors.New("exit")

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "greetsite: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "greetsite",
		Short:         "Bundler config, greeting server and client for the greeting site",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("config", config.DefaultConfigFile, "Path to the YAML config file")
	root.AddCommand(
		newConfigCmd(stdout, stderr),
		newServeCmd(stdout, stderr),
		newGreetCmd(stdout, stderr),
		newInitCmd(stdout, stderr),
	)
	return root
}

// loadConfig reads the config named by --config. The default file may be
// absent; an explicitly named one must exist.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	optional := !cmd.Flags().Changed("config")
	return config.NewLoader(path, optional).Load()
}

// componentLogger configures the process logger from cfg on first use and
// returns a child tagged with component.
func componentLogger(cfg config.AppConfig, stderr io.Writer, component string) zerolog.Logger {
	xlog.Configure(xlog.Config{Level: cfg.Log.Level, Output: stderr})
	return xlog.WithComponent(component)
}
