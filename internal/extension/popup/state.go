// Package popup implements the extension popup: a 3 step linear state machine
// driving repository analysis, contribution analysis and portfolio generation.
package popup

import (
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/extension/repourl"
)

// Steps.
const (
	StepRepoAnalysis         = 1
	StepContributionAnalysis = 2
	StepPortfolio            = 3
)

// Status of a single step.
type Status string

// Step statuses.
const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// progressPoints holds progress percentage for each step when it starts,
// when its result is received and when it completes.
var progressPoints = [3][3]int{
	{10, 30, 40},
	{50, 70, 80},
	{85, 95, 100},
}

const (
	phaseStarted = iota
	phaseReceived
	phaseCompleted
)

// State is the popup session state. Reset only by creating a new one.
type State struct {
	Step                 int
	RepoOwner            string
	RepoName             string
	BackgroundKnowledge  app.Document
	ContributionAnalysis app.Document
	Username             string
	PortfolioHTML        string
	Progress             int

	// Statuses and Enabled are indexed by step - 1.
	Statuses [3]Status
	Enabled  [3]bool

	Message string
}

// NewState returns initial state. No step can be triggered until a repository is selected.
func NewState() State {
	return State{
		Step:     StepRepoAnalysis,
		Statuses: [3]Status{StatusWaiting, StatusWaiting, StatusWaiting},
	}
}

// StepStatus returns status of a step.
func (s State) StepStatus(step int) Status {
	return s.Statuses[step-1]
}

// StepEnabled tells if step's trigger is enabled.
func (s State) StepEnabled(step int) bool {
	return s.Enabled[step-1]
}

// HasRepo tells if repository was selected.
func (s State) HasRepo() bool {
	return s.RepoOwner != "" && s.RepoName != ""
}

// Done tells if portfolio is ready and result actions are available.
func (s State) Done() bool {
	return s.StepStatus(StepPortfolio) == StatusCompleted && s.PortfolioHTML != ""
}

// SelectRepo stores repository reference and enables repository analysis.
func SelectRepo(s State, ref repourl.Ref) State {
	s.RepoOwner = ref.Owner
	s.RepoName = ref.Repo
	s.Enabled[StepRepoAnalysis-1] = true
	return s
}

// RejectRepo clears repository reference and disables repository analysis.
func RejectRepo(s State) State {
	s.RepoOwner = ""
	s.RepoName = ""
	s.Enabled[StepRepoAnalysis-1] = false
	return s
}

// StartRepoAnalysis marks step 1 in progress.
func StartRepoAnalysis(s State) State {
	s = start(s, StepRepoAnalysis)
	s.PortfolioHTML = ""
	return s
}

// ReceiveResult advances progress when backend answered for the step.
func ReceiveResult(s State, step int) State {
	s.Progress = progressPoints[step-1][phaseReceived]
	return s
}

// CompleteRepoAnalysis stores background knowledge and unlocks step 2.
func CompleteRepoAnalysis(s State, backgroundKnowledge app.Document) State {
	s.BackgroundKnowledge = backgroundKnowledge
	return complete(s, StepRepoAnalysis)
}

// StartContributionAnalysis marks step 2 in progress.
func StartContributionAnalysis(s State, username string) State {
	s.Username = username
	return start(s, StepContributionAnalysis)
}

// CompleteContributionAnalysis stores contribution analysis and unlocks step 3.
func CompleteContributionAnalysis(s State, contributionAnalysis app.Document) State {
	s.ContributionAnalysis = contributionAnalysis
	return complete(s, StepContributionAnalysis)
}

// StartPortfolio marks step 3 in progress and clears previous result.
func StartPortfolio(s State) State {
	s = start(s, StepPortfolio)
	s.PortfolioHTML = ""
	return s
}

// CompletePortfolio stores generated html.
func CompletePortfolio(s State, html string) State {
	s.PortfolioHTML = html
	return complete(s, StepPortfolio)
}

// FailStep marks step as failed and re-enables its trigger for retry.
func FailStep(s State, step int, msg string) State {
	s.Statuses[step-1] = StatusError
	s.Enabled[step-1] = true
	s.Message = msg
	return s
}

func start(s State, step int) State {
	s.Step = step
	s.Statuses[step-1] = StatusInProgress
	s.Enabled[step-1] = false
	s.Progress = progressPoints[step-1][phaseStarted]
	s.Message = ""
	return s
}

func complete(s State, step int) State {
	s.Statuses[step-1] = StatusCompleted
	s.Enabled[step-1] = true
	s.Progress = progressPoints[step-1][phaseCompleted]
	if step < StepPortfolio {
		s.Step = step + 1
		s.Statuses[step] = StatusWaiting
		s.Enabled[step] = true
	}
	return s
}
