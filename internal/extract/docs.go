package extract

import (
	"regexp"
	"strings"
)

var (
	markdownHeaderRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	depsSectionRe    = regexp.MustCompile(`(?is)#+\s*Dependencies\s*\n(.*?)(?:\n#|\z)`)
	listItemRe       = regexp.MustCompile(`[-*+]\s+([^\n]+)`)

	docTypePatterns = []struct {
		kind string
		re   *regexp.Regexp
	}{
		{"readme", regexp.MustCompile(`(?i)^README\.md$`)},
		{"changelog", regexp.MustCompile(`(?i)^CHANGELOG\.md$`)},
		{"contributing", regexp.MustCompile(`(?i)^CONTRIBUTING\.md$`)},
		{"api_doc", regexp.MustCompile(`(?i)^api.*\.md$`)},
	}
)

// DocType classifies a documentation file by name; unrecognized names are
// generic "doc" files.
func DocType(filename string) string {
	for _, p := range docTypePatterns {
		if p.re.MatchString(filename) {
			return p.kind
		}
	}
	return "doc"
}

// DocSections returns the markdown header hierarchy of a document.
func DocSections(src string) []DocSection {
	var out []DocSection
	for _, m := range markdownHeaderRe.FindAllStringSubmatchIndex(src, -1) {
		out = append(out, DocSection{
			Title: strings.TrimSpace(src[m[4]:m[5]]),
			Level: m[3] - m[2],
			Line:  lineAt(src, m[0]),
		})
	}
	return out
}

// DocOverview returns an overview paragraph: the body of an
// Overview/Introduction/About section when one exists, otherwise the
// document's first paragraph.
func DocOverview(src string) string {
	for _, heading := range []string{"Overview", "Introduction", "About"} {
		re := regexp.MustCompile(`(?is)#+\s*` + heading + `\s*\n(.*?)(?:\n#|\z)`)
		if m := re.FindStringSubmatch(src); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if first, _, found := strings.Cut(strings.TrimSpace(src), "\n\n"); found || first != "" {
		return strings.TrimSpace(first)
	}
	return ""
}

// DocDependencies returns the list items of a Dependencies section, deduped
// in first-seen order.
func DocDependencies(src string) []string {
	m := depsSectionRe.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, item := range listItemRe.FindAllStringSubmatch(m[1], -1) {
		dep := strings.TrimSpace(item[1])
		if dep == "" || seen[dep] {
			continue
		}
		seen[dep] = true
		out = append(out, dep)
	}
	return out
}
