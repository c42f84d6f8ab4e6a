package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/config"
)

var (
	templateOverrides string
	templateName      string
	templateSave      string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "List, inspect and build the built-in templates",
	Long: `Work with the built-in building templates.

Subcommands:
  list    - List the available templates
  show    - Print a template configuration as YAML
  create  - Build a template, optionally with overrides`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := registry.Templates()
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), templates)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  NAME\tTYPE\tDESCRIPTION\n")
		for _, t := range templates {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", t.Name, t.Config.Type, t.Description)
		}
		return w.Flush()
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a template configuration as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := registry.Template(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), t)
		}
		data, err := config.Marshal(t.Config)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s: %s\n", t.Name, t.Description)
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var templateCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Build a template, optionally with overrides",
	Long: `Build a named template. Overrides come from a YAML file using the
configuration schema; dimensions and parameters are merged field by
field, openings, finishes and metadata replace the template's when set.

Examples:
  gosteel template create medium
  gosteel template create medium --name "Workshop 2" --overrides longer.yaml
  gosteel template create canopy-large --save my-canopy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateCreate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateCreateCmd)

	f := templateCreateCmd.Flags()
	f.StringVar(&templateOverrides, "overrides", "", "YAML file with configuration overrides")
	f.StringVarP(&templateName, "name", "n", "", "Building name")
	f.StringVar(&templateSave, "save", "", "Write the merged configuration to this YAML file")
	addDrawFlags(templateCreateCmd)
}

func runTemplateCreate(cmd *cobra.Command, args []string) error {
	t, err := registry.Template(args[0])
	if err != nil {
		return err
	}

	var overrides building.Config
	if templateOverrides != "" {
		if overrides, err = config.LoadOverrides(templateOverrides, t.Config.Type); err != nil {
			return err
		}
	}
	if templateName != "" {
		overrides.Name = templateName
	}

	cfg, err := registry.ConfigFromTemplate(t.Name, overrides)
	if err != nil {
		return err
	}
	if templateSave != "" {
		if err := config.Save(templateSave, cfg); err != nil {
			return err
		}
		appLog.Logger.Info().Str("file", templateSave).Msg("configuration saved")
	}

	rep, err := registry.Build(cfg, nil)
	if err != nil {
		return err
	}
	return render(cmd, rep)
}
