package github

import (
	"errors"

	"github.com/google/go-github/v57/github"
	"github.com/m-zajac/portfoliobuilder/internal/app"
)

var (
	errMissingStats = errors.New("commit detail has no stats")
	errMissingFiles = errors.New("commit detail has no files")
)

func toRepository(r *github.Repository) app.Repository {
	return app.Repository{
		Name:        r.GetName(),
		OwnerLogin:  r.GetOwner().GetLogin(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
	}
}

func toRepoFiles(contents []*github.RepositoryContent) []app.RepoFile {
	files := make([]app.RepoFile, 0, len(contents))
	for _, c := range contents {
		files = append(files, app.RepoFile{
			Name: c.GetName(),
			Type: c.GetType(),
		})
	}

	return files
}

func toCommits(commits []*github.RepositoryCommit) []app.Commit {
	out := make([]app.Commit, 0, len(commits))
	for _, c := range commits {
		out = append(out, app.Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
			Date:    c.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return out
}

// toCommitDetail fails for commits without stats or files, github omits them for some merge commits.
func toCommitDetail(c *github.RepositoryCommit) (app.CommitDetail, error) {
	if c.Stats == nil {
		return app.CommitDetail{}, errMissingStats
	}
	if c.Files == nil {
		return app.CommitDetail{}, errMissingFiles
	}

	files := make([]app.FileChange, 0, len(c.Files))
	for _, f := range c.Files {
		files = append(files, app.FileChange{
			Filename:  f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Patch:     f.GetPatch(),
		})
	}

	return app.CommitDetail{
		SHA:       c.GetSHA(),
		Additions: c.Stats.GetAdditions(),
		Deletions: c.Stats.GetDeletions(),
		Files:     files,
	}, nil
}
