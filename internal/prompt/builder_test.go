package prompt

import (
	"testing"
	"time"

	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRepoAnalysis(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	got, err := b.RepoAnalysis(app.RepoPromptData{
		Repository: app.Repository{
			Name:     "Hello-World",
			Language: "JavaScript",
			Stars:    80,
			Forks:    9,
		},
		Files: []app.RepoFile{
			{Name: "README", Type: "file"},
			{Name: "src", Type: "dir"},
		},
		Commits: []app.Commit{
			{Message: "Merge pull request #6", Date: time.Date(2012, 3, 6, 23, 6, 50, 0, time.UTC)},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, got, "Name: Hello-World")
	assert.Contains(t, got, "Description: no description")
	assert.Contains(t, got, "Primary language: JavaScript")
	assert.Contains(t, got, "Stars: 80")
	assert.Contains(t, got, "Forks: 9")
	assert.Contains(t, got, "README:\nno content")
	assert.Contains(t, got, "- README (file)\n- src (dir)")
	assert.Contains(t, got, "- Merge pull request #6 (2012-03-06)")
	assert.Contains(t, got, "techStack")
}

func TestBuilderContributionAnalysis(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	got, err := b.ContributionAnalysis(app.ContributionPromptData{
		Owner:    "octocat",
		Repo:     "Hello-World",
		Username: "monalisa",
		Details: []app.ContributionDetail{
			{
				Message:   "add greeting",
				Additions: 10,
				Deletions: 2,
				Changes: []app.FileChange{
					{Filename: "hello.go", Status: "added", Additions: 10, Patch: "+package hello"},
					{Filename: "logo.png", Status: "modified"},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, got, "user monalisa to the GitHub repository octocat/Hello-World")
	assert.Contains(t, got, "Commit: add greeting")
	assert.Contains(t, got, "Date: unknown date")
	assert.Contains(t, got, "File: hello.go")
	assert.Contains(t, got, "+package hello")
	assert.Contains(t, got, "no patch available")
	assert.Contains(t, got, "impactAnalysis")
}

func TestBuilderPortfolio(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	got, err := b.Portfolio(app.PortfolioPromptData{
		Username:             "monalisa",
		BackgroundKnowledge:  app.Document{"projectOverview": "greeting service"},
		ContributionAnalysis: app.Document{"technicalSkills": []interface{}{"Go"}},
	})
	require.NoError(t, err)

	assert.Contains(t, got, "\"projectOverview\": \"greeting service\"")
	assert.Contains(t, got, "Contribution analysis of user monalisa")
	assert.Contains(t, got, "\"Go\"")
	assert.Contains(t, got, "complete HTML document")
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: "name: x\ntext: hello {{ .Name }}\n",
		},
		{
			name:    "missing name",
			data:    "text: hello\n",
			wantErr: true,
		},
		{
			name:    "missing text",
			data:    "name: x\n",
			wantErr: true,
		},
		{
			name:    "broken template",
			data:    "name: x\ntext: hello {{ .Name\n",
			wantErr: true,
		},
		{
			name:    "unknown function",
			data:    "name: x\ntext: \"{{ shout .Name }}\"\n",
			wantErr: true,
		},
		{
			name:    "not yaml mapping",
			data:    "- a\n- b\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseTemplate([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "x", orDefault("x", "d"))
	assert.Equal(t, "d", orDefault("  ", "d"))
}
