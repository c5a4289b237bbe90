package app

import "time"

// Repository is a read-only projection of a github repository resource.
type Repository struct {
	Name        string
	OwnerLogin  string
	Description string
	Language    string
	Stars       int
	Forks       int
}

// RepoFile is a single entry of a repository's top-level directory listing.
type RepoFile struct {
	Name string
	Type string
}

// Commit entity, as listed by the commits endpoint.
type Commit struct {
	SHA     string
	Message string
	Date    time.Time
}

// CommitDetail holds line stats and per-file changes of a single commit.
type CommitDetail struct {
	SHA       string
	Additions int
	Deletions int
	Files     []FileChange
}

// FileChange entity
type FileChange struct {
	Filename  string
	Status    string
	Additions int
	Deletions int
	Patch     string
}

// ContributionDetail is a commit authored by the analyzed user, joined with its details.
type ContributionDetail struct {
	SHA       string
	Message   string
	Date      time.Time
	Additions int
	Deletions int
	Changes   []FileChange
}

// Document is a loosely structured object produced by the completion API.
// No schema is enforced, so every key may be absent.
type Document map[string]interface{}

// Well known document keys.
const (
	KeyError      = "error"
	KeyRawContent = "rawContent"

	KeyProjectOverview    = "projectOverview"
	KeyKeyFeatures        = "keyFeatures"
	KeyTechStack          = "techStack"
	KeyProjectStructure   = "projectStructure"
	KeyDevelopmentHistory = "developmentHistory"

	KeyContributionAreas   = "contributionAreas"
	KeyTechnicalSkills     = "technicalSkills"
	KeyContributionSummary = "contributionSummary"
	KeyKeyCodeChanges      = "keyCodeChanges"
	KeyImpactAnalysis      = "impactAnalysis"
)

// DegradedDocument returns document carrying an error marker and the raw completion text.
func DegradedDocument(reason string, raw string) Document {
	return Document{
		KeyError:      reason,
		KeyRawContent: raw,
	}
}

// Degraded tells if document is a result of failed extraction.
func (d Document) Degraded() bool {
	_, ok := d[KeyError]
	return ok
}

// String returns string value for key, or empty string when key is missing or not a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Strings returns string items of a list value. Non-string items are skipped.
func (d Document) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []interface{}:
		ss := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				ss = append(ss, s)
			}
		}
		return ss
	default:
		return nil
	}
}

// RepoAnalysis is the result of repository analysis.
type RepoAnalysis struct {
	Repository          Repository
	BackgroundKnowledge Document
}

// ContributionReport is the result of contribution analysis.
//
// Empty is set when the user has no commits in the repository. Details and Analysis are nil then.
type ContributionReport struct {
	Username string
	Empty    bool
	Details  []ContributionDetail
	Analysis Document
}

// Portfolio is a generated portfolio page.
//
// NoHTML is set when no recognizable html was found in the completion, HTML holds the raw text then.
type Portfolio struct {
	HTML       string
	RawContent string
	NoHTML     bool
}
