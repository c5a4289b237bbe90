// Package extract recovers structured payloads (json objects, html documents) embedded
// in free-form completion text.
//
// Extraction never fails with an error. Callers always get a Result, which tells whether a
// payload was found and carries the original text for degraded responses.
package extract

import (
	"regexp"

	jsoniter "github.com/json-iterator/go"
)

// Failure reasons reported in Result.Err.
const (
	ReasonNoJSON      = "no JSON object found in response"
	ReasonInvalidJSON = "JSON parsing failed"
	ReasonNoHTML      = "no HTML found in response"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	fencedJSONRegex = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	objectRegex     = regexp.MustCompile(`\{[\s\S]*\}`)

	htmlDocRegex    = regexp.MustCompile(`(?i)<html[\s\S]*?</html>`)
	doctypeDocRegex = regexp.MustCompile(`(?i)<!DOCTYPE[\s\S]*?</html>`)
	bodyRegex       = regexp.MustCompile(`(?i)<body[\s\S]*?</body>`)
	divRegex        = regexp.MustCompile(`(?i)<div[\s\S]*?</div>`)
)

// Result is the outcome of an extraction.
type Result[T any] struct {
	// OK is set when the payload was found (and parsed).
	OK bool
	// Value holds extracted payload.
	Value T
	// Err describes why extraction failed. Empty when OK.
	Err string
	// Raw is the complete input text.
	Raw string
}

// JSON extracts a json object from text.
func JSON(text string) Result[map[string]interface{}] {
	return JSONAs[map[string]interface{}](text)
}

// JSONAs extracts json payload from text and decodes it into T.
//
// Rules, in order:
//  1. content of the first ```json fenced block,
//  2. span from the first '{' to the last '}'.
//
// The first rule that matches is parsed. If it doesn't parse, extraction fails.
func JSONAs[T any](text string) Result[T] {
	candidate, found := jsonCandidate(text)
	if !found {
		return Result[T]{Err: ReasonNoJSON, Raw: text}
	}

	var v T
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return Result[T]{Err: ReasonInvalidJSON, Raw: text}
	}

	return Result[T]{OK: true, Value: v, Raw: text}
}

func jsonCandidate(text string) (string, bool) {
	if m := fencedJSONRegex.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := objectRegex.FindString(text); m != "" {
		return m, true
	}

	return "", false
}

// HTML extracts html markup from text.
//
// Rules, in order: a full document (<!DOCTYPE ...</html> or <html>...</html>, whichever starts
// first), then <body>...</body>, then <div>...</div>. Matching is case insensitive and
// non-greedy. When nothing matches, Value holds the whole text.
func HTML(text string) Result[string] {
	if m := fullDocument(text); m != "" {
		return Result[string]{OK: true, Value: m, Raw: text}
	}
	for _, re := range []*regexp.Regexp{bodyRegex, divRegex} {
		if m := re.FindString(text); m != "" {
			return Result[string]{OK: true, Value: m, Raw: text}
		}
	}

	return Result[string]{Value: text, Err: ReasonNoHTML, Raw: text}
}

func fullDocument(text string) string {
	htmlLoc := htmlDocRegex.FindStringIndex(text)
	doctypeLoc := doctypeDocRegex.FindStringIndex(text)

	switch {
	case htmlLoc == nil && doctypeLoc == nil:
		return ""
	case doctypeLoc == nil:
		return text[htmlLoc[0]:htmlLoc[1]]
	case htmlLoc == nil || doctypeLoc[0] < htmlLoc[0]:
		return text[doctypeLoc[0]:doctypeLoc[1]]
	default:
		return text[htmlLoc[0]:htmlLoc[1]]
	}
}
