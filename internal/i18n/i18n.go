// Package i18n provides localized user facing messages.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids.
const (
	DefaultUsername            = "default_username"
	RepoFieldsRequired         = "repo_fields_required"
	ContributionFieldsRequired = "contribution_fields_required"
	PortfolioFieldsRequired    = "portfolio_fields_required"
	InvalidRequestBody         = "invalid_request_body"
	RepoAnalysisFailed         = "repo_analysis_failed"
	ContributionAnalysisFailed = "contribution_analysis_failed"
	PortfolioGenerationFailed  = "portfolio_generation_failed"
	NoContributions            = "no_contributions"
	NoHTMLFound                = "no_html_found"
	TooManyRequests            = "too_many_requests"
	RequestTimeout             = "request_timeout"
	ServerListening            = "server_listening"
	ServerUnreachable          = "server_unreachable"
	ServerReachable            = "server_reachable"
	ServerInvalidJSON          = "server_invalid_json"
	ServerError                = "server_error"
	RepoDetected               = "repo_detected"
	OpenRepoPage               = "open_repo_page"
	InvalidRepoURL             = "invalid_repo_url"
	UsernameRequired           = "username_required"
	AnalyzeRepoFirst           = "analyze_repo_first"
	AnalyzeContributionsFirst  = "analyze_contributions_first"
	RepoAnalysisInProgress     = "repo_analysis_in_progress"
	RepoAnalysisCompleted      = "repo_analysis_completed"
	ContributionInProgress     = "contribution_analysis_in_progress"
	ContributionCompleted      = "contribution_analysis_completed"
	PortfolioInProgress        = "portfolio_in_progress"
	PortfolioCompleted         = "portfolio_completed"
	StepFailed                 = "step_failed"
	GenericFailure             = "generic_failure"
	StatusWaiting              = "status_waiting"
	StatusInProgress           = "status_in_progress"
	StatusCompleted            = "status_completed"
	StatusError                = "status_error"
	HTMLCopied                 = "html_copied"
	HTMLCopyFailed             = "html_copy_failed"
	HTMLSaved                  = "html_saved"
	HTMLOpened                 = "html_opened"
	NoActiveTab                = "no_active_tab"
	TabWithoutURL              = "tab_without_url"
	NotGithubPage              = "not_github_page"
	RepositoryNotFound         = "repository_not_found"
	UnknownRequest             = "unknown_request"
	ExtensionInstalled         = "extension_installed"
)

//go:embed locales/active.*.toml
var localesFS embed.FS

// Translations resolves message ids into text of a single language.
type Translations struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
}

// NewTranslations loads all embedded locales and selects given language.
func NewTranslations(lang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localesFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading locale file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("loading locale file %s: %w", name, err)
		}
	}

	t := &Translations{bundle: bundle}
	if err := t.SetLanguage(lang); err != nil {
		return nil, err
	}

	return t, nil
}

// SetLanguage switches language of returned messages.
func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localizer = i18n.NewLocalizer(t.bundle, lang)
			t.lang = lang
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// Language returns current language tag.
func (t *Translations) Language() string {
	return t.lang
}

// Message returns localized message. Unknown ids are returned as is.
func (t *Translations) Message(id string, data map[string]interface{}) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
