package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	docCommentRe   = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*[^*].*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)

	todoRe  = regexp.MustCompile(`(?i)\bTODO\b`)
	fixmeRe = regexp.MustCompile(`(?i)\bFIXME\b`)

	leadingStarRe = regexp.MustCompile(`(?m)^\s*\*\s?`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

type locatedComment struct {
	c      Comment
	offset int
	end    int
}

// Comments returns all comments in the source, in source order. Javadoc
// comments, plain block comments, and line comments are distinguished by
// kind, and comments carrying a TODO or FIXME marker are tagged.
func Comments(src string) []Comment {
	var found []locatedComment

	for _, m := range docCommentRe.FindAllStringIndex(src, -1) {
		text := cleanBlockComment(strings.TrimSuffix(strings.TrimPrefix(src[m[0]:m[1]], "/**"), "*/"))
		found = append(found, locatedComment{
			c:      Comment{Kind: CommentDoc, Tag: tagFor(text), Text: text, Line: lineAt(src, m[0])},
			offset: m[0],
			end:    m[1],
		})
	}
	for _, m := range blockCommentRe.FindAllStringIndex(src, -1) {
		text := cleanBlockComment(strings.TrimSuffix(strings.TrimPrefix(src[m[0]:m[1]], "/*"), "*/"))
		found = append(found, locatedComment{
			c:      Comment{Kind: CommentBlock, Tag: tagFor(text), Text: text, Line: lineAt(src, m[0])},
			offset: m[0],
			end:    m[1],
		})
	}
	for _, m := range lineCommentRe.FindAllStringIndex(src, -1) {
		// The line pattern also fires on "//" sequences inside block and doc
		// comments, so those hits are dropped.
		if insideBlock(found, m[0]) {
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(src[m[0]:m[1]], "//"))
		found = append(found, locatedComment{
			c:      Comment{Kind: CommentLine, Tag: tagFor(text), Text: text, Line: lineAt(src, m[0])},
			offset: m[0],
			end:    m[1],
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	out := make([]Comment, 0, len(found))
	for _, l := range found {
		out = append(out, l.c)
	}
	return out
}

func insideBlock(found []locatedComment, pos int) bool {
	for _, l := range found {
		if pos >= l.offset && pos < l.end {
			return true
		}
	}
	return false
}

func cleanBlockComment(raw string) string {
	s := leadingStarRe.ReplaceAllString(raw, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func tagFor(text string) CommentTag {
	switch {
	case fixmeRe.MatchString(text):
		return TagFixme
	case todoRe.MatchString(text):
		return TagTodo
	default:
		return TagPlain
	}
}
