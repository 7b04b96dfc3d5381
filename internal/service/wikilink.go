package service

import (
	"regexp"
	"strings"
)

const wikipediaBaseURL = "https://en.wikipedia.org/wiki/"

var (
	wikiStripPattern    = regexp.MustCompile(`[^\w \-]`)
	wikiSpaceRunPattern = regexp.MustCompile(`\s+`)
)

// WikipediaLink derives the article URL for a place name: characters
// outside word characters, space and hyphen are stripped, whitespace runs
// collapse to a single underscore. Returns "" when the name is missing,
// the upstream "N/A" sentinel, or nothing survives the stripping.
func WikipediaLink(name string) string {
	if name == "" || name == "N/A" {
		return ""
	}
	slug := wikiStripPattern.ReplaceAllString(name, "")
	slug = strings.TrimSpace(slug)
	slug = wikiSpaceRunPattern.ReplaceAllString(slug, "_")
	if slug == "" {
		return ""
	}
	return wikipediaBaseURL + slug
}
