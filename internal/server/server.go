package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"javakg/internal/config"
	"javakg/internal/engine"
	"javakg/internal/export"
	"javakg/internal/graph"
)

// Server wraps the MCP server and connects it to the analysis engine.
type Server struct {
	mcp *mcp.Server
	eng *engine.Engine
	cfg *config.Config
}

// New creates a new MCP server wired to the given engine.
func New(eng *engine.Engine, cfg *config.Config) (*Server, error) {
	s := &Server{
		eng: eng,
		cfg: cfg,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "javakg",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds MCP resources for the generated graph.
func (s *Server) registerResources() {
	// Resource: the full node-link graph
	s.mcp.AddResource(&mcp.Resource{
		URI:         "javakg://graph",
		Name:        "Knowledge Graph",
		Description: "The full code knowledge graph in node-link JSON format",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		snap := s.eng.Snapshot()
		if snap == nil {
			return nil, fmt.Errorf("no graph available (run generate_graph first)")
		}
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, snap); err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: buf.String(), MIMEType: "application/json"},
			},
		}, nil
	})

	// Resource: per-kind statistics
	s.mcp.AddResource(&mcp.Resource{
		URI:         "javakg://stats",
		Name:        "Graph Statistics",
		Description: "Per-kind node counts and run metadata from the last analysis",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		snap := s.eng.Snapshot()
		if snap == nil {
			return nil, fmt.Errorf("no graph available (run generate_graph first)")
		}
		data, err := json.MarshalIndent(map[string]any{
			"meta":  snap.Meta,
			"stats": snap.Stats,
		}, "", "  ")
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: string(data), MIMEType: "application/json"},
			},
		}, nil
	})
}

// generateGraphArgs are the arguments for the generate_graph tool.
type generateGraphArgs struct {
	RootPath string `json:"root_path" jsonschema:"Path to the Java project to analyze. Defaults to the configured root path."`
}

// queryNodesArgs are the arguments for the query_nodes tool.
type queryNodesArgs struct {
	Kind  string `json:"kind,omitempty" jsonschema:"Filter by node kind: file, package, class, interface, enum, method, parameter, type, import, dependency, annotation, comment, log_statement, config, documentation, localization, integration, version, or build_script"`
	Name  string `json:"name,omitempty" jsonschema:"Filter by name using substring match"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of nodes to return (default 100)"`
}

// traverseGraphArgs are the arguments for the traverse_graph tool.
type traverseGraphArgs struct {
	Start     string `json:"start" jsonschema:"required,Identity key of the node to start from"`
	Direction string `json:"direction,omitempty" jsonschema:"Edge direction to follow: forward (default) or reverse"`
	MaxDepth  int    `json:"max_depth,omitempty" jsonschema:"Maximum traversal depth (default 5)"`
	MaxNodes  int    `json:"max_nodes,omitempty" jsonschema:"Maximum number of nodes to visit (default 100)"`
}

// showSourceArgs are the arguments for the show_source tool.
type showSourceArgs struct {
	Name         string `json:"name" jsonschema:"required,Class or method name to look up (substring match)"`
	ContextLines int    `json:"context_lines,omitempty" jsonschema:"Number of source lines to show around the declaration (default 30)"`
}

// registerTools adds MCP tools for graph generation and querying.
func (s *Server) registerTools() {
	// Tool: generate_graph
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "generate_graph",
		Description: "Analyze a Java project tree and build its code knowledge graph: classes, methods, imports, build dependencies, comments, logging, and more.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args generateGraphArgs) (*mcp.CallToolResult, any, error) {
		rootPath := args.RootPath
		if rootPath == "" {
			rootPath = s.cfg.Root
		}

		absRoot, err := filepath.Abs(rootPath)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid root path: %v", err)), nil, nil
		}

		snap, err := s.eng.Generate(ctx, absRoot)
		if err != nil {
			return errorResult(fmt.Sprintf("graph generation failed: %v", err)), nil, nil
		}

		if err := s.eng.WriteArtifacts(absRoot); err != nil {
			log.Printf("[server] warning: failed to write artifacts: %v", err)
		}

		summary := fmt.Sprintf(
			"Graph generated successfully.\n\n"+
				"- Root: %s\n"+
				"- Files: %d found, %d processed, %d errored\n"+
				"- Nodes: %d\n"+
				"- Edges: %d\n"+
				"- Duration: %s\n\n"+
				"Use the javakg://graph resource to read the full graph.",
			snap.Meta.RootPath,
			snap.Meta.FilesFound,
			snap.Meta.FilesProcessed,
			snap.Meta.FilesErrored,
			len(snap.Nodes),
			len(snap.Edges),
			snap.Meta.Duration,
		)

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: summary},
			},
		}, nil, nil
	})

	// Tool: query_nodes
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "query_nodes",
		Description: "Query graph nodes by kind and name substring. Returns matching nodes with their attributes as JSON.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args queryNodesArgs) (*mcp.CallToolResult, any, error) {
		g := s.eng.Graph()
		if g.NodeCount() == 0 {
			return errorResult("No graph available. Run generate_graph first."), nil, nil
		}

		results := g.Query(graph.Kind(args.Kind), args.Name, args.Limit)
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal results: %v", err)), nil, nil
		}

		limit := args.Limit
		if limit <= 0 {
			limit = 100
		}
		text := string(data)
		if len(results) == limit {
			text += fmt.Sprintf("\n\n... (showing first %d of %d nodes, refine your query)", limit, g.NodeCount())
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: text},
			},
		}, nil, nil
	})

	// Tool: graph_stats
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Show per-kind node counts, edge count, and metadata from the last analysis run.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		snap := s.eng.Snapshot()
		if snap == nil {
			return errorResult("No graph available. Run generate_graph first."), nil, nil
		}

		data, err := json.MarshalIndent(map[string]any{
			"meta":  snap.Meta,
			"nodes": len(snap.Nodes),
			"edges": len(snap.Edges),
			"stats": snap.Stats,
		}, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal stats: %v", err)), nil, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil, nil
	})

	// Tool: traverse_graph
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "traverse_graph",
		Description: "Walk the graph breadth-first from a node key, following edges forward (outgoing) or reverse (incoming).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args traverseGraphArgs) (*mcp.CallToolResult, any, error) {
		g := s.eng.Graph()
		if g.NodeCount() == 0 {
			return errorResult("No graph available. Run generate_graph first."), nil, nil
		}
		if args.Start == "" {
			return errorResult("start is required"), nil, nil
		}
		if _, ok := g.Node(args.Start); !ok {
			return errorResult(fmt.Sprintf("no node with key %q", args.Start)), nil, nil
		}

		result := g.Traverse(args.Start, args.Direction, args.MaxDepth, args.MaxNodes)
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal traversal: %v", err)), nil, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil, nil
	})

	// Tool: show_source
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "show_source",
		Description: "Show source code for a class or method found in the graph. Returns the declaration with surrounding context lines.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args showSourceArgs) (*mcp.CallToolResult, any, error) {
		snap := s.eng.Snapshot()
		if snap == nil {
			return errorResult("No graph available. Run generate_graph first."), nil, nil
		}
		if args.Name == "" {
			return errorResult("name is required"), nil, nil
		}

		g := s.eng.Graph()
		var matches []graph.Node
		for _, kind := range []graph.Kind{graph.KindClass, graph.KindInterface, graph.KindEnum, graph.KindMethod} {
			matches = append(matches, g.Query(kind, args.Name, 5)...)
		}
		if len(matches) == 0 {
			return errorResult(fmt.Sprintf("No classes or methods matching %q", args.Name)), nil, nil
		}
		if len(matches) > 5 {
			matches = matches[:5]
		}

		contextLines := args.ContextLines
		if contextLines <= 0 {
			contextLines = 30
		}

		var sb strings.Builder
		for i, n := range matches {
			if i > 0 {
				sb.WriteString("\n---\n\n")
			}

			file := enclosingFile(n.Key)
			line := attrInt(n.Attrs, "line")
			sb.WriteString(fmt.Sprintf("### %s (%s)\n", n.Name, n.Kind))
			sb.WriteString(fmt.Sprintf("File: %s  Line: %d\n\n", file, line))

			if file == "" {
				sb.WriteString("_Could not locate enclosing file_\n")
				continue
			}
			absFile := filepath.Join(snap.Meta.RootPath, filepath.FromSlash(file))
			source, err := readSourceWindow(absFile, line, contextLines)
			if err != nil {
				sb.WriteString(fmt.Sprintf("_Could not read source: %v_\n", err))
				continue
			}
			sb.WriteString(fmt.Sprintf("```java\n%s```\n", source))
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: sb.String()},
			},
		}, nil, nil
	})
}

// enclosingFile walks an identity key's context chain to find the file it
// belongs to. Keys nest as "kind: name (parentKey)", so the innermost
// parenthesized "file: ..." segment names the file.
func enclosingFile(key string) string {
	if idx := strings.LastIndex(key, "(file: "); idx >= 0 {
		rest := key[idx+len("(file: "):]
		return strings.TrimRight(rest, ")")
	}
	if rest, ok := strings.CutPrefix(key, "file: "); ok {
		return rest
	}
	return ""
}

// attrInt reads an integer attribute, tolerating the float64 shape JSON
// decoding produces.
func attrInt(attrs map[string]any, name string) int {
	switch v := attrs[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// readSourceWindow reads lines from a file centered around the given line number.
func readSourceWindow(absFile string, centerLine, contextLines int) (string, error) {
	data, err := os.ReadFile(absFile)
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(data), "\n")
	startLine := centerLine - contextLines/2
	if startLine < 1 {
		startLine = 1
	}
	endLine := centerLine + contextLines/2
	if endLine > len(lines) {
		endLine = len(lines)
	}

	var sb strings.Builder
	for i := startLine; i <= endLine; i++ {
		sb.WriteString(fmt.Sprintf("%4d| %s\n", i, lines[i-1]))
	}
	return sb.String(), nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
