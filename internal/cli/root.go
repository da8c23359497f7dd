// Package cli wires the command line to the loader, reporter and checker.
package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"landxmlcheck/internal/check"
	"landxmlcheck/internal/landxml"
	"landxmlcheck/internal/report"
	"landxmlcheck/internal/tui"
)

const usage = "Usage: landxmlcheck <input.xml> [--summary|-s] [--check|-c]"

type options struct {
	summary bool
	check   bool
	browse  bool
	noColor bool
}

// browse runs the interactive browser; replaced in tests.
var browse = func(path string, s landxml.Summary) error {
	_, err := tea.NewProgram(tui.New(path, s, check.DefaultLimits), tea.WithAltScreen()).Run()
	return err
}

// Run executes the command against args (without the program name). The
// first argument is the input path; if it is missing or not a file the usage
// line is printed and nothing else happens. A document that fails to parse
// is an error.
func Run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || !isFile(args[0]) {
		_, err := io.WriteString(stdout, usage+"\n")
		return err
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "landxmlcheck <input.xml>",
		Short: "Check LandXML surface and point counts against ingestion limits",
		Long: `landxmlcheck reads a LandXML file, counts the surfaces in every Surfaces
group and the points (P elements) in every surface, and reports those counts
against the theoretical limits of 160,000,000 points, 850 surfaces and
16,000,000 points per group.

Example:
  landxmlcheck site.xml --summary --check`,
		Args:               cobra.MinimumNArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// one argument at a time, so a bad or unknown flag (or help)
			// is skipped without hiding the flags after it
			f := cmd.Flags()
			for _, a := range args[1:] {
				_ = f.Parse([]string{a})
			}
			return execute(cmd.OutOrStdout(), args[0], opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.summary, "summary", "s", false, "print per-group and total surface/point counts")
	f.BoolVarP(&opts.check, "check", "c", false, "check counts against the ingestion limits")
	f.BoolVarP(&opts.browse, "browse", "b", false, "browse groups and surfaces interactively")
	f.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	return cmd
}

func execute(out io.Writer, path string, opts options) error {
	s, err := landxml.Load(path)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out, opts.noColor)
	if opts.summary {
		p.Summary(s)
	}
	if opts.check {
		p.Checks(check.Evaluate(s, check.DefaultLimits))
	}
	if opts.browse {
		return browse(path, s)
	}
	return nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
