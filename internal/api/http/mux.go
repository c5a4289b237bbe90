package http

import (
	"net/http"
	"time"

	"github.com/m-zajac/portfoliobuilder/internal/api/http/limiter"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
)

// MuxConfig configures app's http router.
type MuxConfig struct {
	// Timeout limits processing time of api requests.
	Timeout time.Duration
	// RateLimit is maximum number of requests per second. Zero disables throttling.
	RateLimit float64
	RateBurst int
}

// NewMux creates router for app's http server.
func NewMux(service Service, conf MuxConfig, tr Translator, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(conf.Timeout)

	m := http.NewServeMux()
	m.HandleFunc("POST /api/analyze-repo", timeoutMiddleware(NewAnalyzeRepoHandler(service, tr, l)))
	m.HandleFunc("POST /api/analyze-contributions", timeoutMiddleware(NewAnalyzeContributionsHandler(service, tr, l)))
	m.HandleFunc("POST /api/generate-portfolio", timeoutMiddleware(NewGeneratePortfolioHandler(service, tr, l)))
	m.HandleFunc("GET /ping", NewPingHandler(time.Now))
	m.HandleFunc("GET /api/status", NewStatusHandler())

	var h http.Handler = m
	if conf.RateLimit > 0 {
		h = limiter.NewMiddleware(conf.RateLimit, conf.RateBurst, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, tr.Message(i18n.TooManyRequests, nil), "")
		})(h)
	}
	h = NewCORSMiddleware()(h)
	h = NewLoggingMiddleware(l)(h)

	return h
}
