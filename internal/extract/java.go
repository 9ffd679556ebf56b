package extract

import (
	"regexp"
	"strings"

	"javakg/internal/scan"
)

// --- Regex patterns ---

var (
	packageRe = regexp.MustCompile(`package\s+([\w.]+)\s*;`)
	importRe  = regexp.MustCompile(`import\s+(static\s+)?([\w.]+?)(\.\*)?\s*;`)

	annotationRe        = regexp.MustCompile(`@([\w.]+)`)
	leadingAnnotationRe = regexp.MustCompile(`^(?:@[\w.]+(?:\([^)]*\))?\s+)+`)

	// Class / interface / enum declarations.
	// Captures: annotations (1), modifiers (2), keyword (3), name (4),
	// extends clause (5), implements clause (6).
	classRe = regexp.MustCompile(
		`((?:@[\w.]+(?:\([^)]*\))?\s+)*)` +
			`((?:(?:public|protected|private|static|final|abstract|sealed|strictfp)\s+)*)` +
			`\b(class|interface|enum)\s+(\w+)` +
			`(?:\s+extends\s+([\w.<>,\s]+?))?` +
			`(?:\s+implements\s+([\w.<>,\s]+?))?` +
			`\s*\{`)

	// Method declarations.
	// Captures: annotations (1), modifiers (2), return type (3), name (4),
	// parameter list (5), throws clause (6), terminator (7).
	methodRe = regexp.MustCompile(
		`((?:@[\w.]+(?:\([^)]*\))?\s+)*)` +
			`((?:(?:public|protected|private|static|final|abstract|synchronized|native|strictfp|default)\s+)*)` +
			`([\w$.<>\[\]]+)[ \t]+(\w+)\s*\(([^)]*)\)` +
			`(?:\s*throws\s+([\w.,\s]+?))?` +
			`\s*(\{|;)`)

	// Field declarations. At least one modifier is required so that local
	// variables inside initializer blocks are not picked up.
	fieldRe = regexp.MustCompile(
		`((?:@[\w.]+(?:\([^)]*\))?\s+)*)` +
			`((?:(?:public|protected|private|static|final|volatile|transient)\s+)+)` +
			`([\w$.<>\[\]]+)[ \t]+(\w+)\s*(=[^;]*)?;`)
)

// modifierKeywords is used to recognize a modifier token captured in the
// return-type position, which happens for constructors (they have no return
// type, so the last modifier lands there).
var modifierKeywords = map[string]bool{
	"public": true, "protected": true, "private": true, "static": true,
	"final": true, "abstract": true, "synchronized": true, "native": true,
	"strictfp": true, "default": true,
}

// statementKeywords rejects matches where a statement or declaration keyword
// landed in the return-type position (e.g. "new Foo()" in an initializer
// block, or "class Inner" for a nested type). Rejected matches with a body
// still skip past it, so members of nested types are never attributed to the
// enclosing level.
var statementKeywords = map[string]bool{
	"new": true, "return": true, "throw": true, "else": true, "case": true,
	"break": true, "continue": true, "do": true, "assert": true, "yield": true,
	"class": true, "interface": true, "enum": true,
}

// Package returns the declared package name, if any.
func Package(src string) (string, bool) {
	m := packageRe.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Imports returns all import statements in source order.
func Imports(src string) []Import {
	var out []Import
	for _, m := range importRe.FindAllStringSubmatchIndex(src, -1) {
		imp := Import{
			Path:     src[m[4]:m[5]],
			Static:   m[2] >= 0,
			Wildcard: m[6] >= 0,
			Line:     lineAt(src, m[0]),
		}
		out = append(out, imp)
	}
	return out
}

// Classes returns the class, interface, and enum declarations found at the
// current nesting level of the given span. Scanning resumes after each
// declaration's body, so declarations nested inside a body are never reported
// at this level; callers recurse into Body to descend. When the body's close
// delimiter cannot be found, Body is empty and scanning resumes just past the
// opening delimiter.
func Classes(span string) []Class {
	var out []Class
	pos := 0
	for pos < len(span) {
		m := classRe.FindStringSubmatchIndex(span[pos:])
		if m == nil {
			break
		}

		cls := Class{
			Name: span[pos+m[8] : pos+m[9]],
			Kind: ClassKind(span[pos+m[6]:pos+m[7]]),
			Line: lineAt(span, pos+m[6]),
		}
		if m[2] >= 0 {
			cls.Annotations = Annotations(span[pos+m[2] : pos+m[3]])
		}
		if m[4] >= 0 {
			cls.Modifiers = strings.Fields(span[pos+m[4] : pos+m[5]])
		}
		if m[10] >= 0 {
			cls.Extends = strings.TrimSpace(span[pos+m[10] : pos+m[11]])
		}
		if m[12] >= 0 {
			cls.Implements = splitTypeList(span[pos+m[12] : pos+m[13]])
		}

		open := pos + m[1] - 1 // the matched '{'
		cls.BodyLine = lineAt(span, open)
		next := open + 1
		if end := scan.FindMatchingBrace(span, open); end != scan.NotFound {
			cls.Body = span[open+1 : end-1]
			next = end
		}
		out = append(out, cls)
		pos = next
	}
	return out
}

// Methods returns the method declarations found at the current nesting level
// of a class body. Concrete method bodies are skipped over, so statements
// inside them are never misread as declarations. Constructor classification
// is up to the caller: a Method whose name equals the enclosing class's
// simple name is a constructor.
func Methods(body string) []Method {
	var out []Method
	pos := 0
	for pos < len(body) {
		m := methodRe.FindStringSubmatchIndex(body[pos:])

		// A nested type declaration that starts before the next method match
		// is skipped wholesale, so its members stay at their own level.
		if cm := classRe.FindStringSubmatchIndex(body[pos:]); cm != nil && (m == nil || cm[0] < m[0]) {
			open := pos + cm[1] - 1
			if end := scan.FindMatchingBrace(body, open); end != scan.NotFound {
				pos = end
			} else {
				pos = open + 1
			}
			continue
		}
		if m == nil {
			break
		}

		returnType := body[pos+m[6] : pos+m[7]]
		name := body[pos+m[8] : pos+m[9]]
		terminator := body[pos+m[14] : pos+m[15]]

		next := pos + m[1]
		if terminator == "{" {
			open := pos + m[1] - 1
			next = open + 1
			if end := scan.FindMatchingBrace(body, open); end != scan.NotFound {
				next = end
			}
		}

		if statementKeywords[returnType] {
			pos = next
			continue
		}

		meth := Method{
			Name:       name,
			ReturnType: returnType,
			Params:     splitParams(body[pos+m[10] : pos+m[11]]),
			Abstract:   terminator == ";",
			Line:       lineAt(body, pos+m[8]),
		}
		if m[2] >= 0 {
			meth.Annotations = Annotations(body[pos+m[2] : pos+m[3]])
		}
		if m[4] >= 0 {
			meth.Modifiers = strings.Fields(body[pos+m[4] : pos+m[5]])
		}
		if m[12] >= 0 {
			meth.Throws = splitTypeList(body[pos+m[12] : pos+m[13]])
		}

		// Constructors have no return type, so the last modifier is captured
		// in its place. Fold it back into the modifier list.
		if modifierKeywords[meth.ReturnType] {
			meth.Modifiers = append(meth.Modifiers, meth.ReturnType)
			meth.ReturnType = ""
		}

		out = append(out, meth)
		pos = next
	}
	return out
}

// Fields returns the field declarations in a class body.
func Fields(body string) []Field {
	var out []Field
	for _, m := range fieldRe.FindAllStringSubmatchIndex(body, -1) {
		f := Field{
			Type:           body[m[6]:m[7]],
			Name:           body[m[8]:m[9]],
			HasInitializer: m[10] >= 0,
			Line:           lineAt(body, m[6]),
		}
		if m[2] >= 0 {
			f.Annotations = Annotations(body[m[2]:m[3]])
		}
		if m[4] >= 0 {
			f.Modifiers = strings.Fields(body[m[4]:m[5]])
		}
		out = append(out, f)
	}
	return out
}

// Annotations returns the annotation identifiers (without the leading @)
// found in an annotation run. Parenthesized arguments are discarded.
func Annotations(run string) []string {
	var out []string
	for _, m := range annotationRe.FindAllStringSubmatch(run, -1) {
		out = append(out, m[1])
	}
	return out
}

// splitParams splits a raw parameter list on commas and decomposes each
// parameter into type and name on the last whitespace boundary. Varargs
// markers are normalized to array syntax first. Commas nested inside generic
// type arguments are not special-cased, so "Map<String, Integer> m"
// mis-splits; this limitation is deliberate and documented.
func splitParams(raw string) []Param {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []Param
	for _, piece := range strings.Split(raw, ",") {
		p := strings.TrimSpace(piece)
		if p == "" {
			continue
		}

		p = strings.ReplaceAll(p, "...", "[]")

		var anns []string
		if loc := leadingAnnotationRe.FindStringIndex(p); loc != nil {
			anns = Annotations(p[:loc[1]])
			p = strings.TrimSpace(p[loc[1]:])
		}

		idx := strings.LastIndexAny(p, " \t")
		if idx < 0 {
			continue
		}
		out = append(out, Param{
			Type:        strings.TrimSpace(p[:idx]),
			Name:        strings.TrimSpace(p[idx+1:]),
			Annotations: anns,
		})
	}
	return out
}

// splitTypeList splits a comma-separated type list, trimming whitespace.
func splitTypeList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// lineAt returns the 1-based line number of the given byte offset.
func lineAt(s string, offset int) int {
	if offset > len(s) {
		offset = len(s)
	}
	return strings.Count(s[:offset], "\n") + 1
}
