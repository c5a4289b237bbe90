// Package background implements the extension's background agent.
// It tracks tabs visiting the github host and answers current repository queries.
package background

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/portfoliobuilder/internal/extension/repourl"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
)

// ActionGetCurrentRepo is the only request kind handled by the agent.
const ActionGetCurrentRepo = "getCurrentRepo"

// TabStatusComplete is reported when tab finished loading.
const TabStatusComplete = "complete"

// DefaultRegistrySize is a number of remembered github tabs.
const DefaultRegistrySize = 64

// Tab is a browser tab.
type Tab struct {
	ID  int
	URL string
}

// Tabs returns active tabs of the current window.
type Tabs interface {
	Active(ctx context.Context) ([]Tab, error)
}

// IconSetter refreshes extension icon for a tab.
type IconSetter interface {
	SetIcon(tabID int) error
}

// Translator returns localized messages.
type Translator interface {
	Message(id string, data map[string]interface{}) string
}

// Message is a request sent to the agent.
type Message struct {
	Action string `json:"action"`
}

// Response is an answer to a Message. Either Error or repository fields are set.
type Response struct {
	Owner   string `json:"owner,omitempty"`
	Repo    string `json:"repo,omitempty"`
	RepoURL string `json:"repoUrl,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Agent is the extension's background agent.
type Agent struct {
	tabs     Tabs
	icons    IconSetter
	host     string
	tr       Translator
	registry *lru.Cache
	l        logrus.FieldLogger
}

// NewAgent creates new Agent instance.
func NewAgent(
	tabs Tabs,
	icons IconSetter,
	host string,
	tr Translator,
	registrySize int,
	l logrus.FieldLogger,
) (*Agent, error) {
	registry, err := lru.New(registrySize)
	if err != nil {
		return nil, fmt.Errorf("creating tab registry: %w", err)
	}

	return &Agent{
		tabs:     tabs,
		icons:    icons,
		host:     host,
		tr:       tr,
		registry: registry,
		l:        l,
	}, nil
}

// OnInstalled is called once, when extension is installed.
func (a *Agent) OnInstalled() {
	a.l.Info(a.tr.Message(i18n.ExtensionInstalled, nil))
}

// OnTabUpdated refreshes icon of a tab that finished loading a github page.
func (a *Agent) OnTabUpdated(tabID int, status string, url string) {
	if status != TabStatusComplete || !repourl.IsHostURL(url, a.host) {
		return
	}

	a.registry.Add(tabID, url)
	if err := a.icons.SetIcon(tabID); err != nil {
		a.l.Warnf("setting icon for tab %d: %v", tabID, err)
	}
}

// KnownTab tells if tab recently loaded a github page.
func (a *Agent) KnownTab(tabID int) bool {
	return a.registry.Contains(tabID)
}

// Handle processes a message asynchronously. Exactly one response is sent on the returned channel.
func (a *Agent) Handle(ctx context.Context, msg Message) <-chan Response {
	a.l.Debugf("message received: %s", msg.Action)

	out := make(chan Response, 1)
	go func() {
		defer close(out)

		switch msg.Action {
		case ActionGetCurrentRepo:
			out <- a.currentRepo(ctx)
		default:
			out <- Response{
				Error: a.tr.Message(i18n.UnknownRequest, map[string]interface{}{"Action": msg.Action}),
			}
		}
	}()

	return out
}

// GetCurrentRepo sends getCurrentRepo message and waits for the response.
func (a *Agent) GetCurrentRepo(ctx context.Context) (Response, error) {
	select {
	case resp := <-a.Handle(ctx, Message{Action: ActionGetCurrentRepo}):
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

func (a *Agent) currentRepo(ctx context.Context) Response {
	tabs, err := a.tabs.Active(ctx)
	if err != nil {
		a.l.Errorf("querying active tab: %v", err)
		return Response{Error: a.tr.Message(i18n.NoActiveTab, nil)}
	}
	if len(tabs) == 0 {
		return Response{Error: a.tr.Message(i18n.NoActiveTab, nil)}
	}

	url := tabs[0].URL
	if url == "" {
		return Response{Error: a.tr.Message(i18n.TabWithoutURL, nil)}
	}

	ref, err := repourl.FromTabURL(url, a.host)
	switch err {
	case nil:
	case repourl.ErrNoRepository:
		return Response{Error: a.tr.Message(i18n.RepositoryNotFound, nil)}
	default:
		return Response{Error: a.tr.Message(i18n.NotGithubPage, nil)}
	}

	return Response{
		Owner:   ref.Owner,
		Repo:    ref.Repo,
		RepoURL: url,
	}
}

// StaticTabs is a Tabs source with a fixed list of active tabs.
type StaticTabs []Tab

// Active returns the fixed tabs.
func (s StaticTabs) Active(ctx context.Context) ([]Tab, error) {
	return s, nil
}
