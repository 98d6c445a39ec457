package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pdftab/pdftab/internal/config"
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pdftab configuration",
	Long: `Manage pdftab configuration files.

Configuration is searched in ., $HOME, $HOME/.config/pdftab and
/etc/pdftab, and every key can be overridden through PDFTAB_* environment
variables (e.g. PDFTAB_OUTPUT_FORMAT=json).`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with all defaults",
	Long: `Write a configuration file populated with the default values.

Without a path the file is written to ./pdftab.yaml. Existing files are
not overwritten unless --force is given.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the resolved configuration",
	Long:         `Show the effective configuration after merging defaults, config file and environment variables.`,
	SilenceUsage: true,
	RunE:         runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ConfigFileName + ".yaml"
	if len(args) > 0 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := config.DefaultConfig().ToYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	GetConfig() // populates the shared viper with defaults, file and environment

	data, err := yaml.Marshal(GetConfigLoader().GetResolvedConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := GetConfigLoader().GetConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# config file: none (defaults and environment)")
	}
	_, err = out.Write(data)
	return err
}
