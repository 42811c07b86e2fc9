package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/aemrules/catalog"
	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/scanner"
)

type failure struct {
	Path  string `yaml:"path" json:"path"`
	Error string `yaml:"error" json:"error"`
}

type report struct {
	Files    int           `yaml:"files" json:"files"`
	Issues   []check.Issue `yaml:"issues" json:"issues"`
	Failures []failure     `yaml:"failures,omitempty" json:"failures,omitempty"`
}

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan Java files or directories",
		RunE:  runScan,
	}
	cmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")
	cmd.Flags().Bool("fail", false, "Exit with error when any issue is found")
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}
	fail, _ := cmd.Flags().GetBool("fail")

	s, err := scanner.New(catalog.Registry(),
		scanner.WithConcurrency(cfg.Scan.Concurrency),
		scanner.WithLogger(logger),
		scanner.WithDisabled(cfg.DisabledRules()...),
		scanner.WithParams(cfg.RuleParams()),
		scanner.WithExclusions(cfg.Scan.Exclude...),
	)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	var URLs []string
	for _, arg := range args {
		URLs = append(URLs, location(arg))
	}
	result, err := s.Scan(commandContext(cmd), URLs...)
	if err != nil {
		return err
	}
	if err = writeResult(cmd.OutOrStdout(), format, result); err != nil {
		return err
	}
	if fail && len(result.Issues) > 0 {
		return fmt.Errorf("found %d issue(s)", len(result.Issues))
	}
	return nil
}

func writeResult(w io.Writer, format string, result *scanner.Result) error {
	if strings.ToLower(format) != "text" {
		value := report{Files: result.Files, Issues: result.Issues}
		for _, item := range result.Failures {
			value.Failures = append(value.Failures, failure{Path: item.Path, Error: item.Err.Error()})
		}
		return encode(w, format, value)
	}
	for _, issue := range result.Issues {
		fmt.Fprintln(w, issue.String())
	}
	for _, item := range result.Failures {
		fmt.Fprintf(w, "%v: failed: %v\n", item.Path, item.Err)
	}
	fmt.Fprintf(w, "%d file(s), %d issue(s), %d failure(s)\n", result.Files, len(result.Issues), len(result.Failures))
	return nil
}
