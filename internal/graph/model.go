package graph

// Kind categorizes a node in the knowledge graph.
type Kind string

// Node kinds.
const (
	KindFile          Kind = "file"
	KindPackage       Kind = "package"
	KindClass         Kind = "class"
	KindInterface     Kind = "interface"
	KindEnum          Kind = "enum"
	KindMethod        Kind = "method"
	KindParameter     Kind = "parameter"
	KindType          Kind = "type"
	KindImport        Kind = "import"
	KindDependency    Kind = "dependency"
	KindAnnotation    Kind = "annotation"
	KindComment       Kind = "comment"
	KindLogStatement  Kind = "log_statement"
	KindConfig        Kind = "config"
	KindDocumentation Kind = "documentation"
	KindLocalization  Kind = "localization"
	KindIntegration   Kind = "integration"
	KindVersion       Kind = "version"
	KindBuildScript   Kind = "build_script"
)

// Relation labels a directed edge between two nodes.
type Relation string

// Edge relations.
const (
	RelContainsFile     Relation = "CONTAINS_FILE"
	RelImports          Relation = "IMPORTS"
	RelDefines          Relation = "DEFINES"
	RelHasMethod        Relation = "HAS_METHOD"
	RelHasParameter     Relation = "HAS_PARAMETER"
	RelOfType           Relation = "OF_TYPE"
	RelReturns          Relation = "RETURNS"
	RelHasInnerClass    Relation = "HAS_INNER_CLASS"
	RelAnnotatedWith    Relation = "ANNOTATED_WITH"
	RelHasComment       Relation = "HAS_COMMENT"
	RelUses             Relation = "USES"
	RelIntegratesWith   Relation = "INTEGRATES_WITH"
	RelHasVersion       Relation = "HAS_VERSION"
	RelDependsOn        Relation = "DEPENDS_ON"
	RelConfiguredBy     Relation = "CONFIGURED_BY"
	RelHasDocumentation Relation = "HAS_DOCUMENTATION"
	RelContains         Relation = "CONTAINS"
)

// Node is a single entity in the knowledge graph. Key is its identity for
// deduplication; Attrs holds kind-specific properties fixed at first insertion.
type Node struct {
	Key   string         `json:"key"`
	Kind  Kind           `json:"kind"`
	Name  string         `json:"name"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Edge is a directed, labeled relationship between two nodes.
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Relation Relation `json:"relation"`
}

// Snapshot holds the complete result of an analysis run.
type Snapshot struct {
	Meta  Meta           `json:"meta"`
	Nodes []Node         `json:"nodes"`
	Edges []Edge         `json:"links"`
	Stats map[string]int `json:"stats"`
}

// Meta contains metadata about a snapshot generation run.
type Meta struct {
	RootPath       string `json:"root_path"`
	GeneratedAt    string `json:"generated_at"`
	Duration       string `json:"duration"`
	FilesFound     int    `json:"files_found"`
	FilesProcessed int    `json:"files_processed"`
	FilesErrored   int    `json:"files_errored"`
}
