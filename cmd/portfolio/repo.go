package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-zajac/portfoliobuilder/internal/extension/background"
	"github.com/m-zajac/portfoliobuilder/internal/extension/repourl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo <tab-url>",
	Short: "Detect the repository of a browser tab",
	Long:  `Runs the background agent against a single active tab opened at the given url and prints the detected repository.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tab := background.Tab{ID: 1, URL: args[0]}
		agent, err := background.NewAgent(
			background.StaticTabs{tab},
			&logIconSetter{l: l},
			repourl.DefaultHost,
			tr,
			background.DefaultRegistrySize,
			l.WithField("component", "background"),
		)
		if err != nil {
			return err
		}
		agent.OnTabUpdated(tab.ID, background.TabStatusComplete, tab.URL)

		resp, err := agent.GetCurrentRepo(cmd.Context())
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return errors.New(resp.Error)
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", cyan("owner:"), resp.Owner)
		fmt.Fprintf(out, "%s %s\n", cyan("repo: "), resp.Repo)
		fmt.Fprintf(out, "%s %s\n", cyan("url:  "), resp.RepoURL)

		return nil
	},
}

// logIconSetter stands in for the browser action icon.
type logIconSetter struct {
	l logrus.FieldLogger
}

func (s *logIconSetter) SetIcon(tabID int) error {
	s.l.Debugf("icon refreshed for tab %d", tabID)
	return nil
}

func init() {
	rootCmd.AddCommand(repoCmd)
}
