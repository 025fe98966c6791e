package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/casegen/pkg/batch"
	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/errors"
	"github.com/matzehuels/casegen/pkg/gen"
	"github.com/matzehuels/casegen/pkg/render"
)

// Output formats for generated records.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	seed      int64
	count     int
	format    string
	output    string
	renderDir string
	noCache   bool
	refresh   bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <constraints-file>",
		Short: "Generate test data from a constraint file",
		Long: `Generate one or more records from a constraint file.

The file format follows the extension: .json, .yaml/.yml or .toml. Fields
are generated in the order they are declared. With --seed the output is
reproducible and is cached locally, so repeating a seeded run is instant.`,
		Example: `  casegen generate constraints.json --seed 42
  casegen generate constraints.yaml -n 20 --format yaml -o cases.yaml
  casegen generate graph.toml --seed 7 --render-dir out/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *int64
			if cmd.Flags().Changed("seed") {
				seed = &opts.seed
			}
			return c.runGenerate(cmd.Context(), args[0], seed, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for reproducible output")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, fmt.Sprintf("number of records (max %d)", batch.MaxCount))
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.renderDir, "render-dir", "", "write DOT and SVG drawings of graph fields to this directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the local cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if a cached batch exists")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, path string, seed *int64, opts generateOpts) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}

	set, err := loadConstraints(ctx, path)
	if err != nil {
		return err
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Run(ctx, batch.Request{
		Constraints: set,
		Count:       opts.count,
		Seed:        seed,
		Refresh:     opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d records", len(res.Records)))

	var buf bytes.Buffer
	if err := writeRecords(&buf, res.Records, opts.format); err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess("Generated from %s", StyleHighlight.Render(filepath.Base(path)))
		printBatchSummary(res, set.Len())
		printWritten(opts.output)
		if opts.renderDir == "" && hasGraphFields(set) {
			printNextStep("Draw graph fields", fmt.Sprintf("casegen generate %s --render-dir drawings", path))
		}
	}

	if opts.renderDir != "" {
		return c.renderGraphs(ctx, opts.renderDir, res.Records, set)
	}
	return nil
}

// writeRecords encodes records in format. A single record is written as an
// object, several as a list.
func writeRecords(w io.Writer, records []*gen.Record, format string) error {
	var v any = records
	if len(records) == 1 {
		v = records[0]
	}

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "unsupported output format %q (use json or yaml)", format)
}

// renderGraphs writes <field>.dot and <field>.svg for every graph-like field.
// With several records the files are named <field>-<index>.
func (c *CLI) renderGraphs(ctx context.Context, dir string, records []*gen.Record, set *constraint.Set) error {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return err
	}

	type job struct {
		base string
		d    render.Drawable
	}
	var jobs []job
	for i, rec := range records {
		drawables, err := render.Fields(rec, set)
		if err != nil {
			return err
		}
		for _, d := range drawables {
			jobs = append(jobs, job{base: renderBaseName(d.Field, i, len(records)), d: d})
		}
	}
	if len(jobs) == 0 {
		printWarning("No graph, tree or weightedEdges fields to render")
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create render dir: %w", err)
	}

	sp := startSpinner(ctx, "Rendering graphs")
	var written []string
	for n, j := range jobs {
		sp.step("Rendering "+j.base, n+1, len(jobs))
		paths, err := writeDrawing(ctx, dir, j.base, j.d)
		if err != nil {
			sp.fail("Rendering %s failed", j.base)
			return err
		}
		written = append(written, paths...)
	}
	sp.succeed("Rendered %s", plural(len(jobs), "drawing"))
	c.Logger.Debug("rendered graphs", "dir", dir, "files", len(written))
	for _, p := range written {
		printWritten(p)
	}
	return nil
}

func hasGraphFields(set *constraint.Set) bool {
	for _, c := range set.All() {
		if c.Type.IsGraph() {
			return true
		}
	}
	return false
}

func renderBaseName(field string, index, total int) string {
	if total == 1 {
		return field
	}
	return fmt.Sprintf("%s-%d", field, index)
}

func writeDrawing(ctx context.Context, dir, base string, d render.Drawable) ([]string, error) {
	dotPath := filepath.Join(dir, base+".dot")
	if err := os.WriteFile(dotPath, []byte(d.DOT), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", dotPath, err)
	}

	svg, err := render.RenderSVG(ctx, d.DOT)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", d.Field, err)
	}
	svgPath := filepath.Join(dir, base+".svg")
	if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", svgPath, err)
	}
	return []string{dotPath, svgPath}, nil
}
