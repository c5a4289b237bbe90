package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/portfoliobuilder/internal/api/http/mock"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func testTranslations(t *testing.T) *i18n.Translations {
	tr, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return tr
}

type handlerTest struct {
	name       string
	body       string
	setupMock  func(*mock.MockService)
	wantStatus int
	wantBody   string
}

func runHandlerTests(
	t *testing.T,
	tests []handlerTest,
	newHandler func(Service, Translator, logrus.FieldLogger) http.HandlerFunc,
) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			handler := newHandler(s, testTranslations(t), testLogger())
			req := httptest.NewRequest(http.MethodPost, "/testurl", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, jsonContentType, w.Header().Get("Content-type"))
			assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestNewAnalyzeRepoHandler(t *testing.T) {
	t.Parallel()

	runHandlerTests(t, []handlerTest{
		{
			name:       "missing owner",
			body:       `{"repo": "Hello-World"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Repository owner and name are required."}`,
		},
		{
			name:       "missing repo",
			body:       `{"owner": "octocat"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Repository owner and name are required."}`,
		},
		{
			name:       "invalid json",
			body:       `{"owner": `,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Request body must be a valid JSON object.","details":"` + decodeErrorText(`{"owner": `) + `"}`,
		},
		{
			name: "service error",
			body: `{"owner": "octocat", "repo": "nope"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeRepo(gomock.Any(), "octocat", "nope").
					Return(nil, &app.UpstreamError{Op: "fetching repository info", Err: errors.New("404 Not Found")})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred while analyzing the repository.","details":"fetching repository info: 404 Not Found"}`,
		},
		{
			name: "valid response",
			body: `{"owner": "octocat", "repo": "Hello-World"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeRepo(gomock.Any(), "octocat", "Hello-World").
					Return(&app.RepoAnalysis{
						Repository: app.Repository{
							Name:        "Hello-World",
							OwnerLogin:  "octocat",
							Description: "My first repository",
							Language:    "JavaScript",
							Stars:       80,
							Forks:       9,
						},
						BackgroundKnowledge: app.Document{
							"projectOverview": "...",
							"techStack":       []interface{}{"JavaScript"},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"repoInfo":{"name":"Hello-World","owner":"octocat","description":"My first repository","language":"JavaScript","stars":80,"forks":9},` +
				`"backgroundKnowledge":{"projectOverview":"...","techStack":["JavaScript"]}}`,
		},
		{
			name: "degraded background knowledge",
			body: `{"owner": "octocat", "repo": "Hello-World"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeRepo(gomock.Any(), "octocat", "Hello-World").
					Return(&app.RepoAnalysis{
						Repository:          app.Repository{Name: "Hello-World", OwnerLogin: "octocat"},
						BackgroundKnowledge: app.DegradedDocument("no JSON object found in response", "plain text"),
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"repoInfo":{"name":"Hello-World","owner":"octocat","description":"","language":"","stars":0,"forks":0},` +
				`"backgroundKnowledge":{"error":"no JSON object found in response","rawContent":"plain text"}}`,
		},
	}, NewAnalyzeRepoHandler)
}

func TestNewAnalyzeContributionsHandler(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	runHandlerTests(t, []handlerTest{
		{
			name:       "missing username",
			body:       `{"owner": "octocat", "repo": "Hello-World"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Repository information and username are required."}`,
		},
		{
			name: "no contributions",
			body: `{"owner": "octocat", "repo": "Hello-World", "username": "ghost"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeContributions(gomock.Any(), "octocat", "Hello-World", "ghost").
					Return(&app.ContributionReport{Username: "ghost", Empty: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"contributions":[],"analysis":{"message":"The user has no contributions in this repository."}}`,
		},
		{
			name: "service error",
			body: `{"owner": "octocat", "repo": "Hello-World", "username": "octocat"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeContributions(gomock.Any(), "octocat", "Hello-World", "octocat").
					Return(nil, &app.UpstreamError{Op: "fetching commit details", Err: errors.New("commit detail has no stats")})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred while analyzing user contributions.","details":"fetching commit details: commit detail has no stats"}`,
		},
		{
			name: "valid response",
			body: `{"owner": "octocat", "repo": "Hello-World", "username": "octocat"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeContributions(gomock.Any(), "octocat", "Hello-World", "octocat").
					Return(&app.ContributionReport{
						Username: "octocat",
						Details: []app.ContributionDetail{
							{
								SHA:       "abc",
								Message:   "fix",
								Date:      date,
								Additions: 1,
								Deletions: 2,
								Changes: []app.FileChange{
									{Filename: "a.go", Status: "modified", Additions: 1, Deletions: 2, Patch: "@@"},
								},
							},
						},
						Analysis: app.Document{"contributionSummary": "fixes"},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"username":"octocat","contributionDetails":[{"sha":"abc","message":"fix","date":"2024-05-01T12:00:00Z","additions":1,"deletions":2,` +
				`"changes":[{"filename":"a.go","status":"modified","additions":1,"deletions":2,"patch":"@@"}]}],` +
				`"contributionAnalysis":{"contributionSummary":"fixes"}}`,
		},
	}, NewAnalyzeContributionsHandler)
}

func TestNewGeneratePortfolioHandler(t *testing.T) {
	t.Parallel()

	runHandlerTests(t, []handlerTest{
		{
			name:       "missing contribution analysis",
			body:       `{"backgroundKnowledge": {"projectOverview": "x"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Project background knowledge and contribution analysis are required."}`,
		},
		{
			name: "html found",
			body: `{"backgroundKnowledge": {"a": 1}, "contributionAnalysis": {"b": 2}, "username": " octocat "}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GeneratePortfolio(gomock.Any(), app.Document{"a": float64(1)}, app.Document{"b": float64(2)}, "octocat").
					Return(&app.Portfolio{HTML: "<html></html>", RawContent: "Sure: <html></html>"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"html":"<html></html>","rawContent":"Sure: <html></html>"}`,
		},
		{
			name: "no html found",
			body: `{"backgroundKnowledge": {}, "contributionAnalysis": {}}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GeneratePortfolio(gomock.Any(), app.Document{}, app.Document{}, "").
					Return(&app.Portfolio{HTML: "# markdown", NoHTML: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"html":"# markdown","error":"No HTML found in the response."}`,
		},
		{
			name: "service error",
			body: `{"backgroundKnowledge": {}, "contributionAnalysis": {}}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GeneratePortfolio(gomock.Any(), gomock.Any(), gomock.Any(), "").
					Return(nil, errors.New("requesting portfolio: overloaded"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred while generating the portfolio.","details":"requesting portfolio: overloaded"}`,
		},
	}, NewGeneratePortfolioHandler)
}

func TestNewPingHandler(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 123000000, time.UTC)
	handler := NewPingHandler(func() time.Time { return now })

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, jsonContentType, w.Header().Get("Content-type"))
	assert.Equal(t, `{"status":"ok","timestamp":"2024-05-01T12:00:00.123Z"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestNewStatusHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewStatusHandler()(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`, strings.Trim(w.Body.String(), "\n"))
}

// decodeErrorText returns json encoded decoding error of an analyze repo request body.
func decodeErrorText(body string) string {
	var v analyzeRepoRequest
	err := json.NewDecoder(strings.NewReader(body)).Decode(&v)
	if err == nil {
		return ""
	}
	b, _ := json.Marshal(err.Error())
	return string(b[1 : len(b)-1])
}
