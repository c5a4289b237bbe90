package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
)

const maxRequestBodySize = 10 * 1024 * 1024

// Map keys are sorted, so documents are encoded deterministically.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service orchestrates portfolio building.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/portfoliobuilder/internal/api/http Service
type Service interface {
	AnalyzeRepo(ctx context.Context, owner string, name string) (*app.RepoAnalysis, error)
	AnalyzeContributions(ctx context.Context, owner string, name string, username string) (*app.ContributionReport, error)
	GeneratePortfolio(
		ctx context.Context,
		backgroundKnowledge app.Document,
		contributionAnalysis app.Document,
		username string,
	) (*app.Portfolio, error)
}

// Translator returns localized messages.
type Translator interface {
	Message(id string, data map[string]interface{}) string
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type analyzeRepoRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

type repoInfo struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

type analyzeRepoResponse struct {
	RepoInfo            repoInfo     `json:"repoInfo"`
	BackgroundKnowledge app.Document `json:"backgroundKnowledge"`
}

func newAnalyzeRepoResponse(a *app.RepoAnalysis) analyzeRepoResponse {
	return analyzeRepoResponse{
		RepoInfo: repoInfo{
			Name:        a.Repository.Name,
			Owner:       a.Repository.OwnerLogin,
			Description: a.Repository.Description,
			Language:    a.Repository.Language,
			Stars:       a.Repository.Stars,
			Forks:       a.Repository.Forks,
		},
		BackgroundKnowledge: a.BackgroundKnowledge,
	}
}

// NewAnalyzeRepoHandler creates handlerfunc returning repository info and background knowledge.
func NewAnalyzeRepoHandler(service Service, tr Translator, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := requestLogger(r, l)

		var req analyzeRepoRequest
		if !decodeRequest(w, r, &req, tr) {
			return
		}
		if req.Owner == "" || req.Repo == "" {
			writeError(w, http.StatusBadRequest, tr.Message(i18n.RepoFieldsRequired, nil), "")
			return
		}

		analysis, err := service.AnalyzeRepo(r.Context(), req.Owner, req.Repo)
		if err != nil {
			writeServiceError(w, err, tr.Message(i18n.RepoFieldsRequired, nil), tr.Message(i18n.RepoAnalysisFailed, nil))
			l.Errorf("analyzing repository %s/%s: %v", req.Owner, req.Repo, err)
			return
		}

		writeJSON(w, http.StatusOK, newAnalyzeRepoResponse(analysis))
	}
}

type analyzeContributionsRequest struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	Username string `json:"username"`
}

type fileChange struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch,omitempty"`
}

type contributionDetail struct {
	SHA       string       `json:"sha"`
	Message   string       `json:"message"`
	Date      time.Time    `json:"date"`
	Additions int          `json:"additions"`
	Deletions int          `json:"deletions"`
	Changes   []fileChange `json:"changes"`
}

type analyzeContributionsResponse struct {
	Username             string               `json:"username"`
	ContributionDetails  []contributionDetail `json:"contributionDetails"`
	ContributionAnalysis app.Document         `json:"contributionAnalysis"`
}

type noContributionsAnalysis struct {
	Message string `json:"message"`
}

type noContributionsResponse struct {
	Contributions []contributionDetail    `json:"contributions"`
	Analysis      noContributionsAnalysis `json:"analysis"`
}

func newAnalyzeContributionsResponse(report *app.ContributionReport) analyzeContributionsResponse {
	details := make([]contributionDetail, 0, len(report.Details))
	for _, d := range report.Details {
		changes := make([]fileChange, 0, len(d.Changes))
		for _, c := range d.Changes {
			changes = append(changes, fileChange{
				Filename:  c.Filename,
				Status:    c.Status,
				Additions: c.Additions,
				Deletions: c.Deletions,
				Patch:     c.Patch,
			})
		}
		details = append(details, contributionDetail{
			SHA:       d.SHA,
			Message:   d.Message,
			Date:      d.Date,
			Additions: d.Additions,
			Deletions: d.Deletions,
			Changes:   changes,
		})
	}

	return analyzeContributionsResponse{
		Username:             report.Username,
		ContributionDetails:  details,
		ContributionAnalysis: report.Analysis,
	}
}

// NewAnalyzeContributionsHandler creates handlerfunc returning analysis of user's commits.
func NewAnalyzeContributionsHandler(service Service, tr Translator, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := requestLogger(r, l)

		var req analyzeContributionsRequest
		if !decodeRequest(w, r, &req, tr) {
			return
		}
		if req.Owner == "" || req.Repo == "" || req.Username == "" {
			writeError(w, http.StatusBadRequest, tr.Message(i18n.ContributionFieldsRequired, nil), "")
			return
		}

		report, err := service.AnalyzeContributions(r.Context(), req.Owner, req.Repo, req.Username)
		if err != nil {
			writeServiceError(
				w,
				err,
				tr.Message(i18n.ContributionFieldsRequired, nil),
				tr.Message(i18n.ContributionAnalysisFailed, nil),
			)
			l.Errorf("analyzing contributions of %s in %s/%s: %v", req.Username, req.Owner, req.Repo, err)
			return
		}

		if report.Empty {
			writeJSON(w, http.StatusOK, noContributionsResponse{
				Contributions: []contributionDetail{},
				Analysis: noContributionsAnalysis{
					Message: tr.Message(i18n.NoContributions, nil),
				},
			})
			return
		}

		writeJSON(w, http.StatusOK, newAnalyzeContributionsResponse(report))
	}
}

type generatePortfolioRequest struct {
	BackgroundKnowledge  app.Document `json:"backgroundKnowledge"`
	ContributionAnalysis app.Document `json:"contributionAnalysis"`
	Username             string       `json:"username"`
}

type generatePortfolioResponse struct {
	HTML       string `json:"html"`
	RawContent string `json:"rawContent,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewGeneratePortfolioHandler creates handlerfunc returning portfolio html.
func NewGeneratePortfolioHandler(service Service, tr Translator, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := requestLogger(r, l)

		var req generatePortfolioRequest
		if !decodeRequest(w, r, &req, tr) {
			return
		}
		if req.BackgroundKnowledge == nil || req.ContributionAnalysis == nil {
			writeError(w, http.StatusBadRequest, tr.Message(i18n.PortfolioFieldsRequired, nil), "")
			return
		}

		portfolio, err := service.GeneratePortfolio(
			r.Context(),
			req.BackgroundKnowledge,
			req.ContributionAnalysis,
			strings.TrimSpace(req.Username),
		)
		if err != nil {
			writeServiceError(
				w,
				err,
				tr.Message(i18n.PortfolioFieldsRequired, nil),
				tr.Message(i18n.PortfolioGenerationFailed, nil),
			)
			l.Errorf("generating portfolio: %v", err)
			return
		}

		resp := generatePortfolioResponse{
			HTML:       portfolio.HTML,
			RawContent: portfolio.RawContent,
		}
		if portfolio.NoHTML {
			resp.Error = tr.Message(i18n.NoHTMLFound, nil)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type pingResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewPingHandler creates liveness probe handler.
func NewPingHandler(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pingResponse{
			Status:    "ok",
			Timestamp: now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}
}

// NewStatusHandler creates status handler.
func NewStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pingResponse{Status: "ok"})
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}, tr Translator) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, tr.Message(i18n.InvalidRequestBody, nil), err.Error())
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error, invalidMsg string, failedMsg string) {
	if app.IsInvalidRequestError(err) {
		writeError(w, http.StatusBadRequest, invalidMsg, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, failedMsg, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string, details string) {
	writeJSON(w, status, errorResponse{
		Error:   msg,
		Details: details,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
