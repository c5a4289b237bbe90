package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-zajac/portfoliobuilder/internal/extract"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	recentCommitsCount     = 10
	userCommitsCount       = 10
	contributionsAnalyzed  = 5
	commitDetailFetchLimit = 5
)

// GithubClient returns github repository data.
//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/portfoliobuilder/internal/app GithubClient,Completer,Prompter
type GithubClient interface {
	Repository(ctx context.Context, owner string, name string) (Repository, error)
	Readme(ctx context.Context, owner string, name string) (string, error)
	Contents(ctx context.Context, owner string, name string) ([]RepoFile, error)
	Commits(ctx context.Context, owner string, name string, author string, count int) ([]Commit, error)
	CommitDetail(ctx context.Context, owner string, name string, sha string) (CommitDetail, error)
}

// Completer sends a prompt to a language model completion api and returns the response text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Prompter builds prompts for the completion api.
type Prompter interface {
	RepoAnalysis(data RepoPromptData) (string, error)
	ContributionAnalysis(data ContributionPromptData) (string, error)
	Portfolio(data PortfolioPromptData) (string, error)
}

// RepoPromptData is the context gathered for repository analysis.
type RepoPromptData struct {
	Repository Repository
	Readme     string
	Files      []RepoFile
	Commits    []Commit
}

// ContributionPromptData is the context gathered for contribution analysis.
type ContributionPromptData struct {
	Owner    string
	Repo     string
	Username string
	Details  []ContributionDetail
}

// PortfolioPromptData is the context for portfolio generation.
type PortfolioPromptData struct {
	Username             string
	BackgroundKnowledge  Document
	ContributionAnalysis Document
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient    GithubClient
	completer       Completer
	prompter        Prompter
	timeout         time.Duration
	defaultUsername string
	l               logrus.FieldLogger
}

// NewService creates new Service instance.
// defaultUsername is used in portfolios generated without username.
func NewService(
	githubClient GithubClient,
	completer Completer,
	prompter Prompter,
	timeout time.Duration,
	defaultUsername string,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient:    githubClient,
		completer:       completer,
		prompter:        prompter,
		timeout:         timeout,
		defaultUsername: defaultUsername,
		l:               l,
	}
}

// AnalyzeRepo gathers repository data and asks the completion api for its background knowledge.
//
// Only repository metadata is required. Readme, top-level listing and recent commits are
// fetched best-effort and replaced with empty values on failure.
func (s *Service) AnalyzeRepo(ctx context.Context, owner string, name string) (*RepoAnalysis, error) {
	if owner == "" || name == "" {
		return nil, InvalidRequestError("repository owner and name are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	repo, err := s.githubClient.Repository(ctx, owner, name)
	if err != nil {
		return nil, &UpstreamError{Op: "fetching repository info", Err: err}
	}

	readme, err := s.githubClient.Readme(ctx, owner, name)
	if err != nil {
		s.l.Warnf("fetching readme of %s/%s: %v", owner, name, err)
		readme = ""
	}

	files, err := s.githubClient.Contents(ctx, owner, name)
	if err != nil {
		s.l.Warnf("fetching contents of %s/%s: %v", owner, name, err)
		files = []RepoFile{}
	}

	commits, err := s.githubClient.Commits(ctx, owner, name, "", recentCommitsCount)
	if err != nil {
		s.l.Warnf("fetching commits of %s/%s: %v", owner, name, err)
		commits = []Commit{}
	}

	prompt, err := s.prompter.RepoAnalysis(RepoPromptData{
		Repository: repo,
		Readme:     readme,
		Files:      files,
		Commits:    commits,
	})
	if err != nil {
		return nil, fmt.Errorf("building repository analysis prompt: %w", err)
	}

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Op: "requesting repository analysis", Err: err}
	}

	return &RepoAnalysis{
		Repository:          repo,
		BackgroundKnowledge: s.extractDocument(text, "repository analysis"),
	}, nil
}

// AnalyzeContributions analyzes most recent commits of given user in given repository.
//
// Returns report with Empty flag set, when user has no commits. Details of the five most
// recent commits are fetched concurrently. Failure of any of them fails the whole call.
func (s *Service) AnalyzeContributions(
	ctx context.Context,
	owner string,
	name string,
	username string,
) (*ContributionReport, error) {
	if owner == "" || name == "" || username == "" {
		return nil, InvalidRequestError("repository owner, name and username are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	commits, err := s.githubClient.Commits(ctx, owner, name, username, userCommitsCount)
	if err != nil {
		s.l.Warnf("fetching commits of %s in %s/%s: %v", username, owner, name, err)
		commits = nil
	}
	if len(commits) == 0 {
		return &ContributionReport{
			Username: username,
			Empty:    true,
		}, nil
	}
	if len(commits) > contributionsAnalyzed {
		commits = commits[:contributionsAnalyzed]
	}

	details, err := s.contributionDetails(ctx, owner, name, commits)
	if err != nil {
		return nil, &UpstreamError{Op: "fetching commit details", Err: err}
	}

	prompt, err := s.prompter.ContributionAnalysis(ContributionPromptData{
		Owner:    owner,
		Repo:     name,
		Username: username,
		Details:  details,
	})
	if err != nil {
		return nil, fmt.Errorf("building contribution analysis prompt: %w", err)
	}

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Op: "requesting contribution analysis", Err: err}
	}

	return &ContributionReport{
		Username: username,
		Details:  details,
		Analysis: s.extractDocument(text, "contribution analysis"),
	}, nil
}

// contributionDetails fetches details of given commits, at most commitDetailFetchLimit at once.
// Result order matches commits order.
func (s *Service) contributionDetails(
	ctx context.Context,
	owner string,
	name string,
	commits []Commit,
) ([]ContributionDetail, error) {
	details := make([]ContributionDetail, len(commits))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(commitDetailFetchLimit)
	for i, c := range commits {
		i, c := i, c
		g.Go(func() error {
			d, err := s.githubClient.CommitDetail(ctx, owner, name, c.SHA)
			if err != nil {
				return fmt.Errorf("commit %s: %w", c.SHA, err)
			}
			details[i] = ContributionDetail{
				SHA:       c.SHA,
				Message:   c.Message,
				Date:      c.Date,
				Additions: d.Additions,
				Deletions: d.Deletions,
				Changes:   d.Files,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// GeneratePortfolio asks the completion api for a portfolio html page.
//
// When the completion contains no recognizable html, returned portfolio has NoHTML flag set
// and holds the raw text.
func (s *Service) GeneratePortfolio(
	ctx context.Context,
	backgroundKnowledge Document,
	contributionAnalysis Document,
	username string,
) (*Portfolio, error) {
	if backgroundKnowledge == nil || contributionAnalysis == nil {
		return nil, InvalidRequestError("background knowledge and contribution analysis are required")
	}
	if strings.TrimSpace(username) == "" {
		username = s.defaultUsername
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt, err := s.prompter.Portfolio(PortfolioPromptData{
		Username:             username,
		BackgroundKnowledge:  backgroundKnowledge,
		ContributionAnalysis: contributionAnalysis,
	})
	if err != nil {
		return nil, fmt.Errorf("building portfolio prompt: %w", err)
	}

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Op: "requesting portfolio", Err: err}
	}

	res := extract.HTML(text)
	if !res.OK {
		s.l.Warnf("portfolio for %s: %s", username, res.Err)
		return &Portfolio{HTML: res.Value, NoHTML: true}, nil
	}

	return &Portfolio{
		HTML:       res.Value,
		RawContent: res.Raw,
	}, nil
}

func (s *Service) extractDocument(text string, what string) Document {
	res := extract.JSONAs[Document](text)
	if !res.OK {
		s.l.Warnf("%s: %s", what, res.Err)
		return DegradedDocument(res.Err, res.Raw)
	}
	if res.Value == nil {
		// A literal null parses fine but is not an object.
		return DegradedDocument(extract.ReasonInvalidJSON, res.Raw)
	}

	return res.Value
}
