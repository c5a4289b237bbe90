package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/extension/popup"
	"github.com/spf13/cobra"
)

var (
	buildUsername string
	buildOutDir   string
	buildCopy     bool
	buildOpen     bool
)

var buildCmd = &cobra.Command{
	Use:   "build <repo-url>",
	Short: "Build a portfolio page from user's contributions in a repository",
	Long: `Runs all three steps in order: repository analysis, contribution analysis and portfolio generation.
The generated page is saved as <repo>-portfolio.html in the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		state := popup.NewState()
		ctrl := popup.NewController(
			&state,
			newBackendClient(),
			&terminalNotifier{out: out, tr: tr},
			tr,
			l.WithField("component", "popup"),
		)

		if err := ctrl.SetRepoURL(args[0]); err != nil {
			return err
		}

		repo, err := ctrl.AnalyzeRepo(ctx)
		if err != nil {
			return err
		}
		printRepo(out, repo)

		contributions, err := ctrl.AnalyzeContributions(ctx, strings.TrimSpace(buildUsername))
		if err != nil {
			return err
		}
		printContributions(out, contributions)

		if _, err := ctrl.GeneratePortfolio(ctx); err != nil {
			return err
		}

		if _, err := ctrl.DownloadHTML(buildOutDir); err != nil {
			return err
		}
		if buildCopy {
			if err := ctrl.CopyHTML(systemClipboard{}); err != nil {
				return err
			}
		}
		if buildOpen {
			if _, err := ctrl.OpenHTML(systemOpener{}); err != nil {
				return err
			}
		}

		return nil
	},
}

func printRepo(out io.Writer, repo *popup.RepoResult) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	info := repo.RepoInfo
	fmt.Fprintf(out, "\n%s %s\n", cyan(info.Name), gray("by "+info.Owner))
	fmt.Fprintf(out, "  %s\n", orDefault(info.Description, "-"))
	fmt.Fprintf(out, "  %s  stars: %d  forks: %d\n", orDefault(info.Language, "Unknown"), info.Stars, info.Forks)

	bk := repo.BackgroundKnowledge
	if bk.Degraded() {
		fmt.Fprintf(out, "  %s\n\n", gray(bk.String(app.KeyError)))
		return
	}
	fmt.Fprintf(out, "  %s\n", orDefault(bk.String(app.KeyProjectOverview), "-"))
	for _, f := range bk.Strings(app.KeyKeyFeatures) {
		fmt.Fprintf(out, "   - %s\n", f)
	}
	if tech := bk.Strings(app.KeyTechStack); len(tech) > 0 {
		fmt.Fprintf(out, "  %s\n", gray(strings.Join(tech, ", ")))
	}
	fmt.Fprintln(out)
}

func printContributions(out io.Writer, res *popup.ContributionResult) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(out, "\n%s %s\n", cyan(res.Username), gray(fmt.Sprintf("(%d commits)", len(res.ContributionDetails))))

	ca := res.ContributionAnalysis
	if ca.Degraded() {
		fmt.Fprintf(out, "  %s\n\n", gray(ca.String(app.KeyError)))
		return
	}
	for _, a := range ca.Strings(app.KeyContributionAreas) {
		fmt.Fprintf(out, "   - %s\n", a)
	}
	if skills := ca.Strings(app.KeyTechnicalSkills); len(skills) > 0 {
		fmt.Fprintf(out, "  %s\n", gray(strings.Join(skills, ", ")))
	}
	fmt.Fprintf(out, "  %s\n", orDefault(ca.String(app.KeyContributionSummary), "-"))
	fmt.Fprintf(out, "  %s\n\n", orDefault(ca.String(app.KeyImpactAnalysis), "-"))
}

func orDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}

func init() {
	buildCmd.Flags().StringVarP(&buildUsername, "user", "u", "", "GitHub username whose contributions are analyzed")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", ".", "directory the portfolio is saved to")
	buildCmd.Flags().BoolVar(&buildCopy, "copy", false, "copy the portfolio html to clipboard")
	buildCmd.Flags().BoolVar(&buildOpen, "open", false, "open the portfolio in a browser")
	rootCmd.AddCommand(buildCmd)
}
