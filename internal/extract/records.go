// Package extract turns raw file text into typed records, one extractor per
// concern. Extractors are stateless pure functions: they never touch the
// graph and never perform I/O on source files.
package extract

// ClassKind distinguishes class, interface, and enum declarations.
type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindEnum      ClassKind = "enum"
)

// Class is a class, interface, or enum declaration found at one nesting
// level. Body is the declaration's brace-delimited body without the outer
// braces, or empty when the scanner found no matching close. Line and
// BodyLine are relative to the scanned span; callers recursing into Body
// rebase nested line numbers with BodyLine.
type Class struct {
	Name        string
	Kind        ClassKind
	Annotations []string
	Modifiers   []string
	Extends     string
	Implements  []string
	Body        string
	Line        int
	BodyLine    int // line of the body's opening brace
}

// Method is a method declaration. Constructor classification is left to the
// caller, which knows the enclosing class's simple name.
type Method struct {
	Name        string
	ReturnType  string
	Params      []Param
	Annotations []string
	Modifiers   []string
	Throws      []string
	Abstract    bool
	Line        int
}

// Param is a single method parameter.
type Param struct {
	Name        string
	Type        string
	Annotations []string
}

// Field is a field declaration inside a class body.
type Field struct {
	Name           string
	Type           string
	Annotations    []string
	Modifiers      []string
	HasInitializer bool
	Line           int
}

// Import is a single import statement.
type Import struct {
	Path     string
	Static   bool
	Wildcard bool
	Line     int
}

// CommentKind distinguishes comment productions by delimiter shape.
type CommentKind string

const (
	CommentDoc   CommentKind = "doc"
	CommentBlock CommentKind = "block"
	CommentLine  CommentKind = "line"
)

// CommentTag marks TODO/FIXME comments; everything else is plain.
type CommentTag string

const (
	TagTodo  CommentTag = "todo"
	TagFixme CommentTag = "fixme"
	TagPlain CommentTag = "plain"
)

// Comment is one comment with its cleaned text.
type Comment struct {
	Kind CommentKind
	Tag  CommentTag
	Text string
	Line int
}

// LogStatement is a logging call with its level normalized to the shared
// TRACE/DEBUG/INFO/WARN/ERROR/FATAL vocabulary.
type LogStatement struct {
	Framework string
	Level     string
	Message   string
	Line      int
}

// VersionConstraint is a version-related marker found in source.
type VersionConstraint struct {
	Kind  string // "since", "requires", "api", "java", "deprecated"
	Value string
	Line  int
}

// Localization is a localization usage found in source or a resource file.
type Localization struct {
	Kind   string // "translation_key", "locale", or "resource_key"
	Value  string
	Locale string // for resource entries: locale derived from the file name
	Line   int
}

// Integration is a third-party integration point found in source.
type Integration struct {
	Kind   string // "api_endpoint", "sdk_client", "database_connection", "credential"
	Name   string
	Detail string
	Line   int
}

// Dependency is a build dependency from a Maven or Gradle descriptor.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
}

// Coordinate returns the group:artifact:version triple.
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// DocSection is a markdown section header.
type DocSection struct {
	Title string
	Level int
	Line  int
}
