// Command sgc compiles shader graph documents to GLSL stage sources.
//
// Usage:
//
//	sgc compile graph.json                         # print both stages
//	sgc compile -vert out.vert -frag out.frag graph.json
//	sgc validate graph.json                        # structural diagnostics
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/gogpu/shadergraph"
	"github.com/gogpu/shadergraph/graph"
)

func main() {
	cmd := &cli.Command{
		Name:  "sgc",
		Usage: "Compile shader graph documents to GLSL stage sources",
		Commands: []*cli.Command{
			newCompileCommand(),
			newValidateCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("SGC_LOG_LEVEL"),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sgc: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func newCompileCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compile a graph document to vertex and fragment sources",
		ArgsUsage: "<graph.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "vert",
				Usage: "Write the vertex stage to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "frag",
				Usage: "Write the fragment stage to this file instead of stdout",
			},
		},
		Action: func(_ context.Context, command *cli.Command) error {
			logger := setupLogger(command.String("log-level"))
			if command.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one graph document, got %d", command.Args().Len())
			}
			path := command.Args().First()

			g, err := loadDocument(path)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "path", path, "nodes", len(g.Nodes), "connections", len(g.Connections))

			src, err := shadergraph.Compile(g)
			if err != nil {
				return fmt.Errorf("compile %s: %w", path, err)
			}
			if src == nil {
				return fmt.Errorf("compile %s: graph has no %q node", path, "output")
			}

			if err := writeStage(command.String("vert"), "vertex", src.Vertex); err != nil {
				return err
			}
			return writeStage(command.String("frag"), "fragment", src.Fragment)
		},
	}
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Report structural diagnostics for a graph document",
		ArgsUsage: "<graph.json>",
		Action: func(_ context.Context, command *cli.Command) error {
			if command.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one graph document, got %d", command.Args().Len())
			}
			path := command.Args().First()

			g, err := loadDocument(path)
			if err != nil {
				return err
			}

			issues := shadergraph.Validate(g, nil)
			failed := false
			for _, issue := range issues {
				fmt.Println(issue)
				if issue.Severity == graph.SeverityError {
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("%s: graph has structural errors", path)
			}
			fmt.Printf("%s: ok (%d nodes, %d connections)\n", path, len(g.Nodes), len(g.Connections))
			return nil
		},
	}
}

func writeStage(path, name, source string) error {
	if path == "" {
		fmt.Printf("// --- %s stage ---\n%s\n", name, source)
		return nil
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return fmt.Errorf("write %s stage: %w", name, err)
	}
	return nil
}
