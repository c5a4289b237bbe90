package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"golang.org/x/oauth2"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github repository data.
// This struct is an adapter for app.GithubClient.
type Client struct {
	gh *github.Client
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address and authToken are optional. Empty address means public github api.
func NewClient(doer HTTPDoer, address string, authToken string) (*Client, error) {
	httpClient := &http.Client{Transport: doerTransport{doer: doer}}
	if authToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: authToken},
		))
	}

	gh := github.NewClient(httpClient)
	if address != "" {
		u, err := url.Parse(strings.TrimSuffix(address, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github api address: %w", err)
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// Repository returns repository metadata.
func (c *Client) Repository(ctx context.Context, owner string, name string) (app.Repository, error) {
	if err := validateRepo(owner, name); err != nil {
		return app.Repository{}, err
	}

	r, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return app.Repository{}, apiError("getting repository", err)
	}

	return toRepository(r), nil
}

// Readme returns decoded readme text.
func (c *Client) Readme(ctx context.Context, owner string, name string) (string, error) {
	if err := validateRepo(owner, name); err != nil {
		return "", err
	}

	content, _, err := c.gh.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		return "", apiError("getting readme", err)
	}

	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding readme: %w", err)
	}

	return text, nil
}

// Contents returns top level directory listing.
func (c *Client) Contents(ctx context.Context, owner string, name string) ([]app.RepoFile, error) {
	if err := validateRepo(owner, name); err != nil {
		return nil, err
	}

	_, dir, _, err := c.gh.Repositories.GetContents(ctx, owner, name, "", nil)
	if err != nil {
		return nil, apiError("getting contents", err)
	}

	return toRepoFiles(dir), nil
}

// Commits returns most recent commits, optionally filtered by author login.
func (c *Client) Commits(ctx context.Context, owner string, name string, author string, count int) ([]app.Commit, error) {
	if err := validateRepo(owner, name); err != nil {
		return nil, err
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, name, &github.CommitsListOptions{
		Author: author,
		ListOptions: github.ListOptions{
			PerPage: count,
		},
	})
	if err != nil {
		return nil, apiError("listing commits", err)
	}
	if len(commits) > count {
		commits = commits[:count]
	}

	return toCommits(commits), nil
}

// CommitDetail returns line stats and changed files of a single commit.
func (c *Client) CommitDetail(ctx context.Context, owner string, name string, sha string) (app.CommitDetail, error) {
	if err := validateRepo(owner, name); err != nil {
		return app.CommitDetail{}, err
	}
	if sha == "" {
		return app.CommitDetail{}, app.InvalidRequestError("commit sha cannot be empty")
	}

	commit, _, err := c.gh.Repositories.GetCommit(ctx, owner, name, sha, nil)
	if err != nil {
		return app.CommitDetail{}, apiError("getting commit "+sha, err)
	}

	return toCommitDetail(commit)
}

func validateRepo(owner string, name string) error {
	if owner == "" {
		return app.InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return app.InvalidRequestError("repository name cannot be empty")
	}
	return nil
}

func apiError(op string, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%s: rate limit exceeded, resets at %s: %w", op, rateErr.Rate.Reset.Time.UTC(), err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%s: secondary rate limit exceeded: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type doerTransport struct {
	doer HTTPDoer
}

func (t doerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.doer.Do(r)
}
