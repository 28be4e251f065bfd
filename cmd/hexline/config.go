package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexline/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective board config",
	Long: `Resolve the board config the same way play does and print it as YAML.

Search order: --config, ~/.hexline/configs/hexline.yaml,
./configs/hexline.yaml, then the built-in defaults. --difficulty is
applied on top.

Examples:
  hexline config > ~/.hexline/configs/hexline.yaml
  hexline config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, src, err := config.LoadHexlineWithSource(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	_, err = os.Stdout.Write(data)
	return err
}
