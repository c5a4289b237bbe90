package background

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/m-zajac/portfoliobuilder/internal/extension/repourl"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tabsFunc func(ctx context.Context) ([]Tab, error)

func (f tabsFunc) Active(ctx context.Context) ([]Tab, error) {
	return f(ctx)
}

type iconRecorder struct {
	mu   sync.Mutex
	tabs []int
	err  error
}

func (r *iconRecorder) SetIcon(tabID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tabs = append(r.tabs, tabID)
	return r.err
}

func newTestAgent(t *testing.T, tabs Tabs, icons IconSetter, registrySize int) *Agent {
	t.Helper()

	tr, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	l := logrus.New()
	l.Out = io.Discard

	a, err := NewAgent(tabs, icons, repourl.DefaultHost, tr, registrySize, l)
	require.NoError(t, err)
	return a
}

func TestAgentGetCurrentRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tabs Tabs
		want Response
	}{
		{
			name: "repository tab",
			tabs: StaticTabs{{ID: 1, URL: "https://github.com/octocat/Hello-World/issues"}},
			want: Response{
				Owner:   "octocat",
				Repo:    "Hello-World",
				RepoURL: "https://github.com/octocat/Hello-World/issues",
			},
		},
		{
			name: "first active tab wins",
			tabs: StaticTabs{
				{ID: 1, URL: "https://github.com/octocat/Hello-World"},
				{ID: 2, URL: "https://github.com/golang/go"},
			},
			want: Response{
				Owner:   "octocat",
				Repo:    "Hello-World",
				RepoURL: "https://github.com/octocat/Hello-World",
			},
		},
		{
			name: "no active tab",
			tabs: StaticTabs{},
			want: Response{Error: "No active tab found."},
		},
		{
			name: "tabs query error",
			tabs: tabsFunc(func(ctx context.Context) ([]Tab, error) {
				return nil, errors.New("window closed")
			}),
			want: Response{Error: "No active tab found."},
		},
		{
			name: "tab without url",
			tabs: StaticTabs{{ID: 1}},
			want: Response{Error: "Cannot read the tab URL."},
		},
		{
			name: "not a github page",
			tabs: StaticTabs{{ID: 1, URL: "https://example.com/octocat/Hello-World"}},
			want: Response{Error: "Not a GitHub page."},
		},
		{
			name: "owner page",
			tabs: StaticTabs{{ID: 1, URL: "https://github.com/octocat"}},
			want: Response{Error: "GitHub repository not found."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAgent(t, tt.tabs, &iconRecorder{}, DefaultRegistrySize)

			got, err := a.GetCurrentRepo(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgentHandleUnknownAction(t *testing.T) {
	a := newTestAgent(t, StaticTabs{}, &iconRecorder{}, DefaultRegistrySize)

	ch := a.Handle(context.Background(), Message{Action: "generatePortfolio"})

	resp, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, Response{Error: "Unknown request: generatePortfolio"}, resp)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after the single response")
}

func TestAgentHandleIsAsynchronous(t *testing.T) {
	release := make(chan struct{})
	tabs := tabsFunc(func(ctx context.Context) ([]Tab, error) {
		<-release
		return []Tab{{ID: 1, URL: "https://github.com/octocat/Hello-World"}}, nil
	})
	a := newTestAgent(t, tabs, &iconRecorder{}, DefaultRegistrySize)

	ch := a.Handle(context.Background(), Message{Action: ActionGetCurrentRepo})

	select {
	case <-ch:
		t.Fatal("response delivered before tabs query finished")
	case <-time.After(10 * time.Millisecond):
	}

	close(release)
	resp := <-ch
	assert.Equal(t, "octocat", resp.Owner)
}

func TestAgentGetCurrentRepoContextDone(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	tabs := tabsFunc(func(ctx context.Context) ([]Tab, error) {
		<-release
		return nil, nil
	})
	a := newTestAgent(t, tabs, &iconRecorder{}, DefaultRegistrySize)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	_, err := a.GetCurrentRepo(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAgentOnTabUpdated(t *testing.T) {
	icons := &iconRecorder{}
	a := newTestAgent(t, StaticTabs{}, icons, 2)

	a.OnTabUpdated(1, "loading", "https://github.com/octocat/Hello-World")
	a.OnTabUpdated(2, TabStatusComplete, "https://example.com")
	a.OnTabUpdated(3, TabStatusComplete, "")
	a.OnTabUpdated(4, TabStatusComplete, "https://github.com/octocat/Hello-World")
	a.OnTabUpdated(5, TabStatusComplete, "https://github.com/golang/go")
	a.OnTabUpdated(6, TabStatusComplete, "https://github.com/")

	assert.Equal(t, []int{4, 5, 6}, icons.tabs)
	assert.False(t, a.KnownTab(1))
	assert.False(t, a.KnownTab(2))
	assert.False(t, a.KnownTab(4), "oldest tab should be evicted")
	assert.True(t, a.KnownTab(5))
	assert.True(t, a.KnownTab(6))
}

func TestAgentOnTabUpdatedIconError(t *testing.T) {
	icons := &iconRecorder{err: errors.New("no such tab")}
	a := newTestAgent(t, StaticTabs{}, icons, DefaultRegistrySize)

	a.OnTabUpdated(7, TabStatusComplete, "https://github.com/octocat/Hello-World")

	assert.Equal(t, []int{7}, icons.tabs)
	assert.True(t, a.KnownTab(7))
}

func TestNewAgentInvalidRegistrySize(t *testing.T) {
	tr, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	_, err = NewAgent(StaticTabs{}, &iconRecorder{}, repourl.DefaultHost, tr, 0, logrus.New())
	assert.Error(t, err)
}
