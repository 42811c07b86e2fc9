package cli

import (
	"github.com/spf13/cobra"
	"github.com/viant/aemrules/catalog"
	"github.com/viant/aemrules/rules"
	"github.com/viant/afs"
)

func newRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print rule definitions",
		RunE:  runRules,
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	var descriptions rules.DescriptionSource = rules.NewEmbeddedSource()
	if cfg.Descriptions.URL != "" {
		descriptions = rules.ChainSource{rules.NewURLSource(cfg.Descriptions.URL, afs.New()), descriptions}
	}
	loader := rules.NewLoader(rules.WithDescriptions(descriptions), rules.WithLoaderLogger(logger))
	repo, err := catalog.Repository(commandContext(cmd), loader)
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), format, repo.Rules())
}
