package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"javakg/internal/config"
	"javakg/internal/engine"
	"javakg/internal/server"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "javakg",
	Short: "javakg builds a knowledge graph of a Java codebase",
	Long: `javakg scans a Java project tree and derives a directed property graph
of its classes, methods, imports, build dependencies, comments, logging,
and supporting artifacts. The graph is written as node-link JSON and can
optionally be exported to SQLite or served over MCP.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Analyze a project tree and write the graph artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		root := cfg.Root
		if len(args) == 1 {
			root = args[0]
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving root path: %w", err)
		}

		eng := engine.New(cfg)
		snap, err := eng.Generate(cmd.Context(), absRoot)
		if err != nil {
			return err
		}
		if err := eng.WriteArtifacts(absRoot); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
		fmt.Fprintf(os.Stderr, "  Root:       %s\n", snap.Meta.RootPath)
		fmt.Fprintf(os.Stderr, "  Files:      %d found, %d processed, %d errored\n",
			snap.Meta.FilesFound, snap.Meta.FilesProcessed, snap.Meta.FilesErrored)
		fmt.Fprintf(os.Stderr, "  Nodes:      %d\n", len(snap.Nodes))
		fmt.Fprintf(os.Stderr, "  Edges:      %d\n", len(snap.Edges))
		for _, kind := range []string{"class", "interface", "enum", "method", "package", "dependency"} {
			if n := snap.Stats[kind]; n > 0 {
				fmt.Fprintf(os.Stderr, "  %-11s %d\n", kind+"s:", n)
			}
		}
		fmt.Fprintf(os.Stderr, "  Duration:   %s\n", snap.Meta.Duration)
		fmt.Fprintf(os.Stderr, "  Output:     %s\n", filepath.Join(absRoot, cfg.Output.Dir))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		eng := engine.New(cfg)
		srv, err := server.New(eng, cfg)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	return cfg
}

func main() {
	// Log output goes to stderr, never stdout (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "javakg.yaml", "path to configuration file")
	rootCmd.AddCommand(generateCmd, serveCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("javakg: %v", err)
	}
}
