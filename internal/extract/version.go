package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	javaVersionRe = regexp.MustCompile(`@Target\("Java(\d+)"\)`)
	apiVersionRe  = regexp.MustCompile(`(?is)@Api\(.*?version\s*=\s*["']([^"']+)["']`)
	sinceRe       = regexp.MustCompile(`@since\s+([\d.]+)`)
	requiresRe    = regexp.MustCompile(`@requires\s+([\d.]+)`)
	deprecatedRe  = regexp.MustCompile(`@Deprecated(?:\([^)]*\))?(?:\s*/\*\*?\s*([^*]+)\*+/)?`)
)

// VersionConstraints returns the version requirements declared in the
// source: Java target versions, API versions, @since and @requires javadoc
// tags, and deprecation markers. Results are in source order.
func VersionConstraints(src string) []VersionConstraint {
	type located struct {
		v      VersionConstraint
		offset int
	}
	var found []located

	add := func(kind, value string, offset int) {
		found = append(found, located{
			v:      VersionConstraint{Kind: kind, Value: value, Line: lineAt(src, offset)},
			offset: offset,
		})
	}

	for _, m := range javaVersionRe.FindAllStringSubmatchIndex(src, -1) {
		add("java", src[m[2]:m[3]], m[0])
	}
	for _, m := range apiVersionRe.FindAllStringSubmatchIndex(src, -1) {
		add("api", src[m[2]:m[3]], m[0])
	}
	for _, m := range sinceRe.FindAllStringSubmatchIndex(src, -1) {
		add("since", src[m[2]:m[3]], m[0])
	}
	for _, m := range requiresRe.FindAllStringSubmatchIndex(src, -1) {
		add("requires", src[m[2]:m[3]], m[0])
	}
	for _, m := range deprecatedRe.FindAllStringSubmatchIndex(src, -1) {
		value := "Deprecated"
		if m[2] >= 0 {
			if reason := strings.TrimSpace(src[m[2]:m[3]]); reason != "" {
				value = reason
			}
		}
		add("deprecated", value, m[0])
	}

	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	out := make([]VersionConstraint, 0, len(found))
	for _, l := range found {
		out = append(out, l.v)
	}
	return out
}
