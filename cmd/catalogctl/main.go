// Command catalogctl drives the test suite detail page against a running
// catalog service and renders it to the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"metadata-catalog/internal/client"
	"metadata-catalog/internal/config"
	"metadata-catalog/internal/detail"
	"metadata-catalog/internal/logger"
	"metadata-catalog/internal/session"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	url     string
	user    string
	token   string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect and edit data quality test suites in the metadata catalog",
		Long: `catalogctl loads a test suite detail page from the catalog service,
applies edits to it and prints the rendered page.

Connection settings come from CATALOG_URL, CATALOG_USER and CATALOG_TOKEN
(or a .env file) and may be overridden with flags.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.url, "url", "", "catalog API base URL (overrides CATALOG_URL)")
	cmd.PersistentFlags().StringVar(&opts.user, "user", "", "user name sent with changes (overrides CATALOG_USER)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "bearer token (overrides CATALOG_TOKEN)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests and state changes")

	cmd.AddCommand(newSuiteCmd(opts))
	return cmd
}

// newController loads configuration and wires the client, session and
// detail controller. Notifications go to errOut.
func (o *rootOptions) newController(errOut io.Writer) (*detail.Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.url != "" {
		cfg.CatalogURL = o.url
	}
	if o.user != "" {
		cfg.CatalogUser = o.user
	}
	if o.token != "" {
		cfg.CatalogToken = o.token
	}

	level := "error"
	if o.verbose {
		level = "debug"
	}
	logger.Setup(level)
	logrus.SetOutput(errOut)

	s := &session.Session{UserName: cfg.CatalogUser, Token: cfg.CatalogToken}
	notifier := detail.NotifierFunc(func(n detail.Notification) {
		fmt.Fprintf(errOut, "%s\n", n)
	})

	return detail.New(client.New(cfg, s), s, notifier, detail.WithPageSize(cfg.PageSize)), nil
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
