package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/casegen/pkg/testcase"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "convert <results.json>...",
		Short: "Reformat judge results into test case records",
		Long: `Split the expectedOutput of every result at its TestCase-<n> markers and
write one {"output", "input", "visibleToUser"} record per section.

Each input is written to <out-dir>/<parent dir name>/<file name>.`,
		Example: `  casegen convert data/week3/results.json
  casegen convert data/*/results.json --out-dir converted`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			for _, in := range args {
				out, n, err := testcase.ConvertFile(in, outDir)
				if err != nil {
					return err
				}
				logger.Debug("converted", "input", in, "output", out, "cases", n)
				printSuccess("Converted %s (%s)", StyleHighlight.Render(in), plural(n, "case"))
				printWritten(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", defaultOutDir, "root directory for converted files")

	return cmd
}
