// Package repourl holds the repository URL rules shared by the background agent and the popup.
package repourl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultHost is the host of github web pages.
const DefaultHost = "github.com"

var (
	// ErrInvalidRepoURL is returned when URL doesn't point to a repository page.
	ErrInvalidRepoURL = errors.New("invalid repository url")
	// ErrNotHostPage is returned when URL doesn't belong to the host.
	ErrNotHostPage = errors.New("not a host page")
	// ErrNoRepository is returned when URL path has less than two segments after the host.
	ErrNoRepository = errors.New("repository not found in url")
)

var repoPattern = regexp.MustCompile(`^https://` + regexp.QuoteMeta(DefaultHost) + `/([^/]+)/([^/]+)(?:/.*)?$`)

// Ref identifies a repository.
type Ref struct {
	Owner string
	Repo  string
}

// String returns "owner/repo".
func (r Ref) String() string {
	return r.Owner + "/" + r.Repo
}

// URL returns canonical repository page url.
func (r Ref) URL(host string) string {
	return fmt.Sprintf("https://%s/%s/%s", host, r.Owner, r.Repo)
}

// Parse validates repository url entered by the user.
// Only https://github.com/<owner>/<repo> urls, optionally followed by further path segments, are accepted.
func Parse(rawURL string) (Ref, error) {
	m := repoPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return Ref{}, ErrInvalidRepoURL
	}

	return Ref{
		Owner: m[1],
		Repo:  m[2],
	}, nil
}

// FromTabURL extracts repository from a browser tab url.
// The url is split on the host boundary and the first two path segments are taken.
func FromTabURL(rawURL string, host string) (Ref, error) {
	boundary := host + "/"
	idx := strings.Index(rawURL, boundary)
	if idx < 0 {
		return Ref{}, ErrNotHostPage
	}

	path := strings.Split(rawURL[idx+len(boundary):], "/")
	if len(path) < 2 {
		return Ref{}, ErrNoRepository
	}

	return Ref{
		Owner: path[0],
		Repo:  path[1],
	}, nil
}

// IsHostURL tells if url belongs to the host.
func IsHostURL(rawURL string, host string) bool {
	return rawURL != "" && strings.Contains(rawURL, host)
}
