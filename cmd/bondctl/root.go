package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"umoabonds/internal/client"
)

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:          "bondctl",
		Short:        "Price UMOA government securities and manage the bonds catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (default $BONDCTL_API_URL or "+defaultAPIURL+")")

	newClient := func() (*client.Client, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		return client.New(cfg.APIURL, &http.Client{Timeout: cfg.RequestTimeout}), nil
	}

	root.AddCommand(newQuoteCmd())
	root.AddCommand(newPriceCmd(newClient))
	root.AddCommand(newSearchCmd(newClient))
	root.AddCommand(newImportCmd(newClient))
	return root
}

type clientFactory func() (*client.Client, error)

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}
