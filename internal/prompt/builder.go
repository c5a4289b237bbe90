// Package prompt renders completion prompts from yaml templates embedded in the binary.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"gopkg.in/yaml.v3"
)

const (
	repoAnalysisTemplate         = "repo_analysis"
	contributionAnalysisTemplate = "contribution_analysis"
	portfolioTemplate            = "portfolio"
)

//go:embed prompts/*.yaml
var promptsFS embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Template is a single prompt definition.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Text        string `yaml:"text"`
}

// Builder renders prompts. Implements app.Prompter.
type Builder struct {
	templates map[string]*template.Template
}

// NewBuilder parses all embedded prompt templates.
func NewBuilder() (*Builder, error) {
	entries, err := promptsFS.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("reading prompts: %w", err)
	}

	b := &Builder{
		templates: make(map[string]*template.Template, len(entries)),
	}
	for _, e := range entries {
		data, err := promptsFS.ReadFile(path.Join("prompts", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading prompt %s: %w", e.Name(), err)
		}
		tpl, err := parseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", e.Name(), err)
		}
		if _, ok := b.templates[tpl.Name()]; ok {
			return nil, fmt.Errorf("prompt %s: duplicated name %q", e.Name(), tpl.Name())
		}
		b.templates[tpl.Name()] = tpl
	}

	for _, name := range []string{repoAnalysisTemplate, contributionAnalysisTemplate, portfolioTemplate} {
		if _, ok := b.templates[name]; !ok {
			return nil, fmt.Errorf("missing prompt %q", name)
		}
	}

	return b, nil
}

func parseTemplate(data []byte) (*template.Template, error) {
	var def Template
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(def.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}

	tpl, err := template.New(def.Name).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(def.Text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return tpl, nil
}

// RepoAnalysis renders repository analysis prompt.
func (b *Builder) RepoAnalysis(data app.RepoPromptData) (string, error) {
	return b.render(repoAnalysisTemplate, data)
}

// ContributionAnalysis renders contribution analysis prompt.
func (b *Builder) ContributionAnalysis(data app.ContributionPromptData) (string, error) {
	return b.render(contributionAnalysisTemplate, data)
}

// Portfolio renders portfolio generation prompt.
func (b *Builder) Portfolio(data app.PortfolioPromptData) (string, error) {
	return b.render(portfolioTemplate, data)
}

func (b *Builder) render(name string, data interface{}) (string, error) {
	tpl, ok := b.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering prompt %q: %w", name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

var funcs = template.FuncMap{
	"date":      formatDate,
	"json":      toJSON,
	"orDefault": orDefault,
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return t.Format("2006-01-02")
}

func toJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func orDefault(value string, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
