package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/greetsite/internal/adapters/cli"
	"github.com/3-lines-studio/greetsite/internal/adapters/fs"
	"github.com/3-lines-studio/greetsite/internal/templates"
	"github.com/3-lines-studio/greetsite/internal/usecase"
)

func newInitCmd(stdout, stderr io.Writer) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new greeting site with a config file and a single index entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}

			starter, err := templates.Starter()
			if err != nil {
				return err
			}

			output := cli.NewTerminalOutput(stdout, stderr)
			result := usecase.NewInitService(fs.NewOSFileSystem(), output).InitSite(usecase.InitInput{
				ProjectDir: projectDir,
				Name:       name,
				Starter:    starter,
			})
			if result.Error != nil {
				output.PrintError("%v", result.Error)
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Greeting name and package name (default: directory name)")
	return cmd
}
