package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the euclid command tree. level is raised to debug
// when --verbose is given.
func NewRootCommand(version string, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "euclid",
		Short: "Reed-Solomon decoding over prime fields with Euclid's algorithm",
		Long: `Euclid encodes and decodes Reed-Solomon style codes over GF(p).

A code is given by a prime p, a length n, a designed distance d and an
evaluation base a. Its codewords are the polynomials of degree below n that
vanish at a, a^2, ..., a^(d-1). Received words are corrected with the
extended Euclidean algorithm, fixing up to (d-1)/2 errors.

Features:
- Exact arithmetic modulo any 64-bit prime
- Euclidean decoding with error locator and evaluator polynomials
- Encoding with the generator polynomial
- Syndrome checks and polynomial long division
- Saved code presets`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
	}

	rootCmd.AddCommand(
		NewDecodeCommand(),
		NewEncodeCommand(),
		NewSyndromeCommand(),
		NewDivideCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	return rootCmd
}
