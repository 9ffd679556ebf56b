package extract

import (
	"regexp"
	"sort"
)

var (
	translationKeyRes = []*regexp.Regexp{
		regexp.MustCompile(`getString\s*\(\s*"([^"]+)"\s*\)`),
		regexp.MustCompile(`getMessage\s*\(\s*"([^"]+)"\s*\)`),
		regexp.MustCompile(`Locale\.forLanguageTag\s*\(\s*"([^"]+)"\s*\)`),
	}

	// Locale identifiers require an explicit region (en_US, pt_BR); a bare
	// two-letter match would fire on every short lowercase word.
	localeTokenRe = regexp.MustCompile(`\b([a-z]{2,3}_[A-Z]{2})\b`)

	// ResourceBundle naming convention: messages_en_US.properties.
	localeSuffixRe = regexp.MustCompile(`_([a-z]{2,3}(?:_[A-Z]{2})?)\.properties$`)
)

// Localizations returns the translation-key lookups and locale identifiers
// found in the source, in source order.
func Localizations(src string) []Localization {
	type located struct {
		l      Localization
		offset int
	}
	var found []located

	for _, re := range translationKeyRes {
		for _, m := range re.FindAllStringSubmatchIndex(src, -1) {
			found = append(found, located{
				l:      Localization{Kind: "translation_key", Value: src[m[2]:m[3]], Line: lineAt(src, m[0])},
				offset: m[0],
			})
		}
	}
	for _, m := range localeTokenRe.FindAllStringSubmatchIndex(src, -1) {
		token := src[m[2]:m[3]]
		found = append(found, located{
			l:      Localization{Kind: "locale", Value: token, Locale: token, Line: lineAt(src, m[0])},
			offset: m[0],
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	out := make([]Localization, 0, len(found))
	for _, l := range found {
		out = append(out, l.l)
	}
	return out
}

// LocaleFromFilename extracts the locale suffix from a ResourceBundle file
// name, e.g. "messages_en_US.properties" yields "en_US".
func LocaleFromFilename(name string) (string, bool) {
	m := localeSuffixRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
