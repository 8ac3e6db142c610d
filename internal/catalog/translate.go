package catalog

import (
	"regexp"
	"strings"
)

// Placeholders shown when neither a translation nor an English synopsis exists
const (
	NoDescription         = "No description available"
	NoDetailedDescription = "No detailed description available"
)

// packageLabel matches a leading "包 fmt：" label on the first translated line
var packageLabel = regexp.MustCompile(`^包\s*[^：]*：`)

// ShortDescription resolves the one-line synopsis for a package: the first
// line of its translation without the package label, then the English desc,
// then NoDescription. The English desc is returned with surrounding
// whitespace trimmed, and a whitespace-only desc counts as missing.
func (c *Catalog) ShortDescription(name string) string {
	if text, ok := c.translatedSynopsis(name); ok {
		return text
	}
	if pkg, ok := c.Lookup(name); ok && strings.TrimSpace(pkg.Desc) != "" {
		return strings.TrimSpace(pkg.Desc)
	}
	return NoDescription
}

// LongDescription resolves the full description as paragraphs, one per
// non-blank translated line. Blank lines are dropped rather than kept as
// empty paragraphs, and every line is trimmed. Without a translation it
// falls back to the trimmed English desc, then NoDetailedDescription.
func (c *Catalog) LongDescription(name string) []string {
	if text, ok := c.translations.Lookup(name); ok {
		if paragraphs := splitParagraphs(text); len(paragraphs) > 0 {
			return paragraphs
		}
	}
	if pkg, ok := c.Lookup(name); ok && strings.TrimSpace(pkg.Desc) != "" {
		return []string{strings.TrimSpace(pkg.Desc)}
	}
	return []string{NoDetailedDescription}
}

func (c *Catalog) translatedSynopsis(name string) (string, bool) {
	text, ok := c.translations.Lookup(name)
	if !ok {
		return "", false
	}
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(packageLabel.ReplaceAllString(first, ""))
	if first == "" {
		return "", false
	}
	return first, true
}

// splitParagraphs trims every line and drops the blank ones
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
