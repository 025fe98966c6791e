package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/casegen/pkg/batch"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		seedVal int64
		count   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "browse <constraints-file>",
		Short: "Page through generated records interactively",
		Long: `Generate a batch of records and list them in the terminal. Press enter to
print the highlighted record as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			set, err := loadConstraints(ctx, args[0])
			if err != nil {
				return err
			}

			req := batch.Request{Constraints: set, Count: count}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seedVal
			}

			runner := c.newRunner(noCache)
			defer runner.Cache.Close()
			sp := startSpinner(ctx, fmt.Sprintf("Generating %s", plural(max(count, 1), "record")))
			res, err := runner.Run(ctx, req)
			sp.stop()
			if err != nil {
				return err
			}
			c.Logger.Debug("batch ready", "id", res.ID, "cached", res.CacheHit)

			model := NewRecordListModel(res.Records, set.Names())
			final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			m, ok := final.(RecordListModel)
			if !ok || m.Selected == nil {
				return nil
			}
			return writeRecords(os.Stdout, res.Records[m.Cursor:m.Cursor+1], formatJSON)
		},
	}

	cmd.Flags().Int64Var(&seedVal, "seed", 0, "seed for reproducible output")
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of records to generate")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the local cache")

	return cmd
}
