package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/config"
)

var createConfig string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a building from a YAML configuration file",
	Long: `Generate a building described by a YAML configuration file. The type
field selects the engine; when it is omitted the type follows the shape
of the dimensions block.

Example file:
  name: Hangar
  type: sloped
  dimensions:
    length: 20000
    width: 12000
    height_wall: 6000
    slope: 10
  parameters:
    post_spacing: 5000
  openings:
    - kind: door
      wall: front
      width: 4000
      height: 4500
      x: 2000

Examples:
  gosteel create --config hangar.yaml
  gosteel create -c hangar.yaml --json > hangar.json`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createConfig, "config", "c", "", "Building configuration file (YAML) [required]")
	addDrawFlags(createCmd)
	createCmd.MarkFlagRequired("config")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(createConfig)
	if err != nil {
		return err
	}
	rep, err := registry.Build(cfg, nil)
	if err != nil {
		return err
	}
	return render(cmd, rep)
}
