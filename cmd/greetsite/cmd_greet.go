package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "github.com/3-lines-studio/greetsite/internal/adapters/http"
	"github.com/3-lines-studio/greetsite/internal/greeter"
	xlog "github.com/3-lines-studio/greetsite/internal/log"
)

func newGreetCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		baseURL string
		clicks  int
	)

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Click the greeting button against a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clicks < 1 {
				return fmt.Errorf("--clicks must be at least 1")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client, err := httpadapter.NewGreetClient(baseURL, http.DefaultClient)
			if err != nil {
				return err
			}

			logger := componentLogger(cfg, stderr, "greeter").With().
				Str(xlog.FieldURL, client.Endpoint()).
				Logger()
			c := greeter.New(client, logger)

			for range clicks {
				c.Click(cmd.Context())
				renderView(stdout, c.View())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080/", "Base URL of the greeting server")
	cmd.Flags().IntVarP(&clicks, "clicks", "n", 1, "Number of clicks")
	return cmd
}

func renderView(w io.Writer, v greeter.View) {
	fmt.Fprintf(w, "clicks: %d\n", v.ClickCount)
	if v.ShowGreeting {
		fmt.Fprintf(w, "greeting: %s\n", v.Greeting)
	}
}
