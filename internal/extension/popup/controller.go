package popup

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m-zajac/portfoliobuilder/internal/extension/repourl"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPrecondition is returned when step can't be triggered. State is not changed then.
	ErrPrecondition = errors.New("precondition failed")
	// ErrNoContributions is returned by contribution analysis when user has no commits in the repository.
	ErrNoContributions = errors.New("no contributions")
)

// Level is a severity of user visible notification.
type Level string

// Notification levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Notifier renders user visible feedback.
type Notifier interface {
	Notify(level Level, msg string)
	StepChanged(step int, status Status, progress int)
}

// Translator returns localized messages.
type Translator interface {
	Message(id string, data map[string]interface{}) string
}

// Controller executes popup steps against the backend, keeping session state.
type Controller struct {
	state   *State
	backend Backend
	n       Notifier
	tr      Translator
	l       logrus.FieldLogger
}

// NewController creates new Controller instance.
func NewController(state *State, backend Backend, n Notifier, tr Translator, l logrus.FieldLogger) *Controller {
	return &Controller{
		state:   state,
		backend: backend,
		n:       n,
		tr:      tr,
		l:       l,
	}
}

// State returns copy of current state.
func (c *Controller) State() State {
	return *c.state
}

// SetRepoURL selects repository by its url. Invalid url disables repository analysis.
func (c *Controller) SetRepoURL(rawURL string) error {
	ref, err := repourl.Parse(rawURL)
	if err != nil {
		*c.state = RejectRepo(*c.state)
		msg := c.tr.Message(i18n.InvalidRepoURL, nil)
		c.n.Notify(LevelWarning, msg)
		return fmt.Errorf("%w: %s", ErrPrecondition, msg)
	}

	*c.state = SelectRepo(*c.state, ref)
	c.n.Notify(LevelInfo, c.tr.Message(i18n.RepoDetected, nil))

	return nil
}

// CheckServer probes backend liveness and reports the outcome.
func (c *Controller) CheckServer(ctx context.Context) error {
	if err := c.backend.Ping(ctx); err != nil {
		c.l.Debugf("ping failed: %v", err)
		c.n.Notify(LevelDanger, c.tr.Message(i18n.ServerUnreachable, nil))
		return err
	}
	c.n.Notify(LevelSuccess, c.tr.Message(i18n.ServerReachable, nil))
	return nil
}

// AnalyzeRepo runs step 1.
func (c *Controller) AnalyzeRepo(ctx context.Context) (*RepoResult, error) {
	if !c.state.HasRepo() || !c.state.StepEnabled(StepRepoAnalysis) {
		return nil, c.warn(i18n.OpenRepoPage)
	}
	if err := c.ping(ctx); err != nil {
		return nil, err
	}

	c.apply(StartRepoAnalysis(*c.state), StepRepoAnalysis, i18n.RepoAnalysisInProgress)

	res, err := c.backend.AnalyzeRepo(ctx, c.state.RepoOwner, c.state.RepoName)
	if err != nil {
		return nil, c.fail(StepRepoAnalysis, err)
	}
	c.apply(ReceiveResult(*c.state, StepRepoAnalysis), StepRepoAnalysis, "")

	c.apply(CompleteRepoAnalysis(*c.state, res.BackgroundKnowledge), StepRepoAnalysis, i18n.RepoAnalysisCompleted)
	c.n.StepChanged(StepContributionAnalysis, c.state.StepStatus(StepContributionAnalysis), c.state.Progress)

	return res, nil
}

// AnalyzeContributions runs step 2 for given username.
func (c *Controller) AnalyzeContributions(ctx context.Context, username string) (*ContributionResult, error) {
	if c.state.BackgroundKnowledge == nil || !c.state.StepEnabled(StepContributionAnalysis) {
		return nil, c.warn(i18n.AnalyzeRepoFirst)
	}
	if username == "" {
		return nil, c.warn(i18n.UsernameRequired)
	}
	if err := c.ping(ctx); err != nil {
		return nil, err
	}

	c.apply(StartContributionAnalysis(*c.state, username), StepContributionAnalysis, i18n.ContributionInProgress)

	res, err := c.backend.AnalyzeContributions(ctx, c.state.RepoOwner, c.state.RepoName, username)
	if err != nil {
		return nil, c.fail(StepContributionAnalysis, err)
	}
	if res.ContributionAnalysis == nil {
		msg := res.Analysis.Message
		if msg == "" {
			msg = c.tr.Message(i18n.GenericFailure, nil)
		}
		return nil, c.fail(
			StepContributionAnalysis,
			fmt.Errorf("%w: %w", ErrNoContributions, &BackendError{StatusCode: http.StatusOK, Message: msg}),
		)
	}
	c.apply(ReceiveResult(*c.state, StepContributionAnalysis), StepContributionAnalysis, "")

	c.apply(
		CompleteContributionAnalysis(*c.state, res.ContributionAnalysis),
		StepContributionAnalysis,
		i18n.ContributionCompleted,
	)
	c.n.StepChanged(StepPortfolio, c.state.StepStatus(StepPortfolio), c.state.Progress)

	return res, nil
}

// GeneratePortfolio runs step 3.
func (c *Controller) GeneratePortfolio(ctx context.Context) (*PortfolioResult, error) {
	if c.state.BackgroundKnowledge == nil {
		return nil, c.warn(i18n.AnalyzeRepoFirst)
	}
	if c.state.ContributionAnalysis == nil || !c.state.StepEnabled(StepPortfolio) {
		return nil, c.warn(i18n.AnalyzeContributionsFirst)
	}
	if err := c.ping(ctx); err != nil {
		return nil, err
	}

	c.apply(StartPortfolio(*c.state), StepPortfolio, i18n.PortfolioInProgress)

	res, err := c.backend.GeneratePortfolio(
		ctx,
		c.state.BackgroundKnowledge,
		c.state.ContributionAnalysis,
		c.state.Username,
	)
	if err != nil {
		return nil, c.fail(StepPortfolio, err)
	}
	c.apply(ReceiveResult(*c.state, StepPortfolio), StepPortfolio, "")

	c.apply(CompletePortfolio(*c.state, res.HTML), StepPortfolio, i18n.PortfolioCompleted)
	if res.Error != "" {
		c.n.Notify(LevelWarning, res.Error)
	}

	return res, nil
}

func (c *Controller) ping(ctx context.Context) error {
	if err := c.backend.Ping(ctx); err != nil {
		c.l.Debugf("ping failed: %v", err)
		return c.warn(i18n.ServerUnreachable)
	}
	return nil
}

func (c *Controller) warn(msgID string) error {
	msg := c.tr.Message(msgID, nil)
	c.n.Notify(LevelWarning, msg)
	return fmt.Errorf("%w: %s", ErrPrecondition, msg)
}

func (c *Controller) apply(s State, step int, msgID string) {
	*c.state = s
	c.n.StepChanged(step, s.StepStatus(step), s.Progress)
	if msgID != "" {
		c.n.Notify(LevelInfo, c.tr.Message(msgID, nil))
	}
}

func (c *Controller) fail(step int, err error) error {
	msg := c.failureMessage(err)
	*c.state = FailStep(*c.state, step, msg)

	c.l.Errorf("step %d failed: %v", step, err)
	c.n.StepChanged(step, StatusError, c.state.Progress)
	c.n.Notify(LevelDanger, c.tr.Message(i18n.StepFailed, map[string]interface{}{"Message": msg}))

	return err
}

// failureMessage returns backend error detail, or generic message when there is none.
func (c *Controller) failureMessage(err error) string {
	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return c.tr.Message(i18n.GenericFailure, nil)
}
