package popup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-zajac/portfoliobuilder/internal/i18n"
)

// ErrNoPortfolio is returned by result actions before portfolio is generated.
var ErrNoPortfolio = errors.New("portfolio not generated")

// Clipboard stores text in system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Opener opens a file in a new browser window.
type Opener interface {
	Open(path string) error
}

// CopyHTML copies generated portfolio to clipboard.
func (c *Controller) CopyHTML(clipboard Clipboard) error {
	if c.state.PortfolioHTML == "" {
		return ErrNoPortfolio
	}

	if err := clipboard.WriteText(c.state.PortfolioHTML); err != nil {
		c.n.Notify(LevelDanger, c.tr.Message(i18n.HTMLCopyFailed, nil))
		return fmt.Errorf("copying html: %w", err)
	}
	c.n.Notify(LevelSuccess, c.tr.Message(i18n.HTMLCopied, nil))

	return nil
}

// DownloadHTML saves generated portfolio as "<repo>-portfolio.html" in given directory.
// Returns path of the written file.
func (c *Controller) DownloadHTML(dir string) (string, error) {
	if c.state.PortfolioHTML == "" {
		return "", ErrNoPortfolio
	}

	path := filepath.Join(dir, PortfolioFileName(c.state.RepoName))
	if err := os.WriteFile(path, []byte(c.state.PortfolioHTML), 0o644); err != nil {
		return "", fmt.Errorf("writing html: %w", err)
	}
	c.n.Notify(LevelSuccess, c.tr.Message(i18n.HTMLSaved, map[string]interface{}{"Path": path}))

	return path, nil
}

// OpenHTML writes generated portfolio to a temporary file and opens it.
// Returns path of the opened file.
func (c *Controller) OpenHTML(opener Opener) (string, error) {
	if c.state.PortfolioHTML == "" {
		return "", ErrNoPortfolio
	}

	f, err := os.CreateTemp("", "*-"+PortfolioFileName(c.state.RepoName))
	if err != nil {
		return "", fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := f.WriteString(c.state.PortfolioHTML); err != nil {
		f.Close()
		return "", fmt.Errorf("writing preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing preview file: %w", err)
	}

	if err := opener.Open(f.Name()); err != nil {
		return "", fmt.Errorf("opening preview: %w", err)
	}
	c.n.Notify(LevelInfo, c.tr.Message(i18n.HTMLOpened, nil))

	return f.Name(), nil
}

// PortfolioFileName returns file name of downloaded portfolio.
func PortfolioFileName(repo string) string {
	return repo + "-portfolio.html"
}
