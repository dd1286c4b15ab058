package cli

import (
	"fmt"

	"github.com/Davincible/euclid/pkg/config"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates a command group for configuration and presets
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration and manage code presets",
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigInitCommand(),
		newPresetCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			if err := cm.ValidateConfig(); err != nil {
				color.New(color.FgRed, color.Bold).Fprintf(cmd.ErrOrStderr(), "⚠️  %v\n", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cm.Path())
			return writeJSON(cmd.OutOrStdout(), cm.GetConfig())
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Reset the configuration file to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			cm.SetConfig(config.DefaultConfig())
			if err := cm.SaveConfig(); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote default configuration to %s\n", cm.Path())
			return nil
		},
	}
}

func newPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named code parameter sets",
	}

	cmd.AddCommand(
		newPresetAddCommand(),
		newPresetListCommand(),
		newPresetDeleteCommand(),
	)

	return cmd
}

func newPresetAddCommand() *cobra.Command {
	var (
		params      rs.Params
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Save a code parameter set",
		Example: `  euclid config preset add small -p 5 -n 4 -d 3 -a 2 --description "GF(5), one error"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			preset := &config.Preset{
				Name:        args[0],
				Description: description,
				Params:      params,
				Tags:        tags,
			}
			if err := cm.AddPreset(preset); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Saved preset %s: %s\n", preset.Name, preset.Params)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&params.Prime, "prime", "p", 0, "Field characteristic p (prime)")
	cmd.Flags().IntVarP(&params.Length, "length", "n", 0, "Code length n")
	cmd.Flags().IntVarP(&params.Distance, "distance", "d", 0, "Designed distance d")
	cmd.Flags().Int64VarP(&params.Base, "base", "a", 0, "Evaluation base a")
	cmd.Flags().StringVar(&description, "description", "", "Free text description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")
	_ = cmd.MarkFlagRequired("prime")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

func newPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			presets := cm.ListPresets()
			if wantJSON(cmd, cm) {
				return writeJSON(cmd.OutOrStdout(), presets)
			}

			w := cmd.OutOrStdout()
			if len(presets) == 0 {
				fmt.Fprintln(w, "No presets saved")
				return nil
			}

			cyan := color.New(color.FgCyan, color.Bold)
			for _, p := range presets {
				cyan.Fprintf(w, "%-12s", p.Name)
				fmt.Fprintf(w, " %s", p.Params)
				if p.Description != "" {
					fmt.Fprintf(w, "  %s", p.Description)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newPresetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			if err := cm.DeletePreset(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", args[0])
			return nil
		},
	}
}
