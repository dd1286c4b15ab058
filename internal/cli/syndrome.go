package cli

import (
	"fmt"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type SyndromeResult struct {
	Params     rs.Params `json:"params"`
	Syndrome   []uint64  `json:"syndrome"`
	IsCodeword bool      `json:"is_codeword"`
}

func NewSyndromeCommand() *cobra.Command {
	var (
		flags    codeFlags
		useStdin bool
	)

	cmd := &cobra.Command{
		Use:   "syndrome [word]",
		Short: "Compute the syndrome of a word",
		Long:  `Evaluate the word at a, a^2, ..., a^(d-1). The word is a codeword exactly when all values are zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			params, err := flags.resolve(cm)
			if err != nil {
				return err
			}

			word, err := readWord(cmd, args, "Enter word (lowest degree first): ", useStdin)
			if err != nil {
				return fmt.Errorf("failed to read word: %w", err)
			}

			code, err := rs.NewCode(params)
			if err != nil {
				return err
			}

			s, err := code.Syndrome(word)
			if err != nil {
				return err
			}

			result := SyndromeResult{
				Params:     params,
				Syndrome:   field.Values(s.Coefficients()),
				IsCodeword: s.IsZero(),
			}

			if wantJSON(cmd, cm) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Syndrome: %s\n", formatValues(result.Syndrome))
			if result.IsCodeword {
				color.New(color.FgGreen, color.Bold).Fprintln(w, "✓ Word is a codeword")
			} else {
				color.New(color.FgRed, color.Bold).Fprintln(w, "✗ Word is not a codeword")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the word from stdin")

	return cmd
}
