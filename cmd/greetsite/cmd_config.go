package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/greetsite/internal/adapters/cli"
	"github.com/3-lines-studio/greetsite/internal/adapters/fs"
	"github.com/3-lines-studio/greetsite/internal/usecase"
)

func newConfigCmd(stdout, stderr io.Writer) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate the bundler configuration from the configured entry points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// With the config on stdout the report goes to stderr.
			reportOut := stdout
			if outFile == "" {
				reportOut = stderr
			}
			output := cli.NewTerminalOutput(reportOut, stderr)

			service := usecase.NewConfigService(fs.NewOSFileSystem(), output, stdout, componentLogger(cfg, stderr, "config"))
			result := service.Generate(cmd.Context(), usecase.GenerateInput{
				RootDir:     cfg.RootDir,
				OutputDir:   cfg.OutputDir,
				EntryPoints: cfg.EntryPoints,
				OutFile:     outFile,
			})
			if result.Error != nil {
				output.PrintError("%v", result.Error)
				return errExit
			}
			if !result.Success {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the config to this file instead of stdout")
	return cmd
}
