package command

import (
	"fmt"
	"reflect"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snaptree-go/internal/cli/output"
	"github.com/yndnr/snaptree-go/internal/core/snapshot"
	"github.com/yndnr/snaptree-go/internal/fixture"
	"github.com/yndnr/snaptree-go/internal/storage/record"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
)

// BuildCommand returns the build command.
func BuildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a snapshot tree from a fixture",
		ArgsUsage: "[FIXTURE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fixture",
				Aliases: []string{"f"},
				Usage:   "Live tree document (YAML or JSON)",
			},
			&cli.BoolFlag{
				Name:  "records",
				Usage: "Also list the record store entries",
			},
			&cli.BoolFlag{
				Name:  "redact",
				Usage: "Mask props and context values with sensitive names",
			},
		},
		Action: runBuild,
	}
}

// BuildResult is the machine-readable output of build --records.
type BuildResult struct {
	Tree    *snapshot.Tree `json:"tree" yaml:"tree"`
	Records []RecordView   `json:"records" yaml:"records"`
}

// RecordView describes one record store entry.
type RecordView struct {
	Index   int    `json:"index" yaml:"index"`
	Mutator string `json:"mutator" yaml:"mutator"`
}

func fixturePath(c *cli.Context) (string, error) {
	path := c.String("fixture")
	if path == "" {
		path = c.Args().First()
	}
	if path == "" {
		return "", fmt.Errorf("a fixture is required (--fixture or first argument)")
	}
	return path, nil
}

func runBuild(c *cli.Context) error {
	path, err := fixturePath(c)
	if err != nil {
		return err
	}
	cfg := GetConfig(c)
	log := GetLogger(c)

	g, err := fixture.Load(path)
	if err != nil {
		return err
	}

	store := record.New()
	b, err := NewBuilder(cfg, store, log, nil)
	if err != nil {
		return err
	}
	tree, stats, err := b.BuildWithStats(c.Context, g.Root)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	log.Info("snapshot built",
		"tree_id", tree.ID,
		"nodes", stats.Accepted,
		"records", store.Len(),
		"failures", stats.FailureCount(),
	)

	if c.Bool("redact") {
		RedactTree(tree)
	}

	f := formatter(c)
	if !c.Bool("records") {
		return f.Format(outWriter(c), tree)
	}

	entries := store.Entries()
	if _, ok := f.(*output.TableFormatter); ok {
		if err := f.Format(outWriter(c), tree); err != nil {
			return err
		}
		fmt.Fprintln(outWriter(c))
		return f.Format(outWriter(c), entries)
	}
	result := BuildResult{Tree: tree, Records: make([]RecordView, len(entries))}
	for i, e := range entries {
		result.Records[i] = RecordView{Index: e.Index, Mutator: reflect.TypeOf(e.Mutator).String()}
	}
	return f.Format(outWriter(c), result)
}

// RedactTree masks sensitive keys in every node's props and context.
func RedactTree(tree *snapshot.Tree) {
	tree.Walk(func(n *snapshot.Node, _ int) bool {
		n.Data.Props = logger.RedactMap(n.Data.Props)
		n.Data.Context = logger.RedactMap(n.Data.Context)
		return true
	})
}
