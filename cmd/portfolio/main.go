// Command portfolio drives portfolio building from a terminal.
// It hosts the browser extension's background agent and popup controller.
package main

import (
	"context"
	"fmt"
	"io"
	netHttp "net/http"
	"os"
	"os/signal"
	"time"

	"github.com/m-zajac/portfoliobuilder/internal/extension/popup"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serverAddress string
	lang          string
	debug         bool

	l  = logrus.New()
	tr *i18n.Translations
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Build a developer portfolio from GitHub contributions",
	Long:          `Analyzes a GitHub repository and user's contributions in it, then generates a portfolio page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l.Out = io.Discard
		if debug {
			l.Out = os.Stderr
			l.Level = logrus.DebugLevel
		}

		var err error
		tr, err = i18n.NewTranslations(lang)
		if err != nil {
			return fmt.Errorf("loading translations: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddress, "server", popup.DefaultServerAddress, "backend server address")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "language of messages (en, ko)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
}

func newBackendClient() *popup.BackendClient {
	httpClient := &netHttp.Client{
		Timeout: 5 * time.Minute,
	}
	return popup.NewBackendClient(httpClient, serverAddress, tr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
