package popup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
)

// DefaultServerAddress is the backend address the popup talks to.
const DefaultServerAddress = "http://localhost:3000"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer executes http requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Backend is the backend orchestrator api.
type Backend interface {
	Ping(ctx context.Context) error
	AnalyzeRepo(ctx context.Context, owner string, repo string) (*RepoResult, error)
	AnalyzeContributions(ctx context.Context, owner string, repo string, username string) (*ContributionResult, error)
	GeneratePortfolio(
		ctx context.Context,
		backgroundKnowledge app.Document,
		contributionAnalysis app.Document,
		username string,
	) (*PortfolioResult, error)
}

// RepoInfo is a repository summary returned by repository analysis.
type RepoInfo struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

// RepoResult is a repository analysis response.
type RepoResult struct {
	RepoInfo            RepoInfo     `json:"repoInfo"`
	BackgroundKnowledge app.Document `json:"backgroundKnowledge"`
}

// Contribution is a single analyzed commit.
type Contribution struct {
	SHA       string `json:"sha"`
	Message   string `json:"message"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// ContributionResult is a contribution analysis response.
//
// When user has no commits in the repository only Analysis is set, with a message.
type ContributionResult struct {
	Username             string         `json:"username"`
	ContributionDetails  []Contribution `json:"contributionDetails"`
	ContributionAnalysis app.Document   `json:"contributionAnalysis"`

	Analysis struct {
		Message string `json:"message"`
	} `json:"analysis"`
}

// PortfolioResult is a portfolio generation response.
type PortfolioResult struct {
	HTML       string `json:"html"`
	RawContent string `json:"rawContent"`
	Error      string `json:"error"`
}

// BackendError is returned when backend responds with non 2xx status or with an unexpected body.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

type errorBody struct {
	Details string `json:"details"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// BackendClient calls backend orchestrator over http.
type BackendClient struct {
	doer    HTTPDoer
	address string
	tr      Translator
}

// NewBackendClient creates new BackendClient instance.
func NewBackendClient(doer HTTPDoer, address string, tr Translator) *BackendClient {
	return &BackendClient{
		doer:    doer,
		address: strings.TrimSuffix(address, "/"),
		tr:      tr,
	}
}

// Ping probes backend liveness.
func (c *BackendClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.call(ctx, http.MethodGet, "/ping", nil, &resp)
}

// AnalyzeRepo requests repository analysis.
func (c *BackendClient) AnalyzeRepo(ctx context.Context, owner string, repo string) (*RepoResult, error) {
	req := map[string]string{
		"owner": owner,
		"repo":  repo,
	}
	var resp RepoResult
	if err := c.call(ctx, http.MethodPost, "/api/analyze-repo", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeContributions requests analysis of user's contributions.
func (c *BackendClient) AnalyzeContributions(
	ctx context.Context,
	owner string,
	repo string,
	username string,
) (*ContributionResult, error) {
	req := map[string]string{
		"owner":    owner,
		"repo":     repo,
		"username": username,
	}
	var resp ContributionResult
	if err := c.call(ctx, http.MethodPost, "/api/analyze-contributions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GeneratePortfolio requests portfolio generation.
func (c *BackendClient) GeneratePortfolio(
	ctx context.Context,
	backgroundKnowledge app.Document,
	contributionAnalysis app.Document,
	username string,
) (*PortfolioResult, error) {
	req := struct {
		BackgroundKnowledge  app.Document `json:"backgroundKnowledge"`
		ContributionAnalysis app.Document `json:"contributionAnalysis"`
		Username             string       `json:"username"`
	}{
		BackgroundKnowledge:  backgroundKnowledge,
		ContributionAnalysis: contributionAnalysis,
		Username:             username,
	}
	var resp PortfolioResult
	if err := c.call(ctx, http.MethodPost, "/api/generate-portfolio", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *BackendClient) call(ctx context.Context, method string, path string, body interface{}, v interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.address+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return &BackendError{
			StatusCode: resp.StatusCode,
			Message:    c.tr.Message(i18n.ServerInvalidJSON, nil),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &BackendError{
			StatusCode: resp.StatusCode,
			Message:    c.tr.Message(i18n.ServerInvalidJSON, nil),
		}
	}

	return nil
}

func (c *BackendClient) statusError(status int, data []byte) error {
	statusMsg := c.tr.Message(i18n.ServerError, map[string]interface{}{"Status": status})

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return &BackendError{StatusCode: status, Message: statusMsg}
	}

	msg := statusMsg
	switch {
	case body.Details != "":
		msg = body.Details
	case body.Message != "":
		msg = body.Message
	case body.Error != "":
		msg = body.Error
	}

	return &BackendError{StatusCode: status, Message: msg}
}
