package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/euclid/internal/validation"
	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewDecodeCommand() *cobra.Command {
	var (
		flags      codeFlags
		useStdin   bool
		showSteps  bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "decode [word]",
		Short: "Correct errors in a received word",
		Long: `Decode a received word with the extended Euclidean algorithm.

The word is a list of integers, lowest degree first. It is reduced modulo p,
its syndromes y(a), y(a^2), ..., y(a^(d-1)) are computed, and the error
locator and evaluator polynomials are found by running Euclid's algorithm on
x^(d-1) and the syndrome polynomial. Up to (d-1)/2 errors are corrected.

Code parameters come from flags, a saved preset, or the configured defaults.`,
		Example: `  # One error in a GF(5) code
  euclid decode -p 5 -n 4 -d 3 -a 2 1,0,2,1

  # Two errors in GF(11), showing the Euclidean steps
  euclid decode -p 11 -n 7 -d 5 -a 2 --steps "1, -1, 1, 0, 3, 2, 0, 1"

  # Read the word from stdin and write a JSON report
  echo "1 0 2 1" | euclid decode --preset small --stdin --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			params, err := flags.resolve(cm)
			if err != nil {
				return err
			}

			word, err := readWord(cmd, args, "Enter received word (lowest degree first): ", useStdin)
			if err != nil {
				return fmt.Errorf("failed to read word: %w", err)
			}

			if err := validation.ValidateWordLength(word, params.Length); err != nil {
				return err
			}

			code, err := rs.NewCode(params)
			if err != nil {
				return err
			}

			slog.Debug("Decoding", "params", params.String(), "coefficients", len(word))

			res, err := code.Decode(word)
			if err != nil {
				return fmt.Errorf("failed to decode: %w", err)
			}

			slog.Debug("Decoded", "steps", len(res.Steps), "errors", len(res.Errors), "verified", res.Verified)

			if !cmd.Flags().Changed("steps") {
				showSteps = cm.GetConfig().UI.ShowSteps
			}

			report := newDecodeReport(params, res, showSteps)

			if outputFile != "" {
				return saveToFile(cmd.OutOrStdout(), report, outputFile)
			}

			if wantJSON(cmd, cm) {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			printDecodeResult(cmd, code, res, showSteps)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the word from stdin")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "Show the Euclidean algorithm steps")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write a JSON report to file")

	return cmd
}

func printDecodeResult(cmd *cobra.Command, code *rs.Code, res *rs.Result, showSteps bool) {
	w := cmd.OutOrStdout()
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	yellow.Fprintln(w, "=== EUCLIDEAN DECODING ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Code:      %s (corrects up to %d errors)\n", code.Params(), code.Capacity())
	fmt.Fprintf(w, "Received:  %s\n", formatValues(field.Values(res.Received.Coefficients())))
	fmt.Fprintf(w, "Syndrome:  %s\n", formatValues(field.Values(res.Syndrome.Coefficients())))

	if res.Syndrome.IsZero() {
		fmt.Fprintln(w)
		green.Fprintln(w, "✓ Zero syndrome, the word is a codeword")
		return
	}

	fmt.Fprintf(w, "Locator:   %s\n", res.Locator.Trim())
	fmt.Fprintf(w, "Evaluator: %s\n", res.Evaluator.Trim())

	if showSteps {
		fmt.Fprintln(w)
		cyan.Fprintln(w, "Euclidean algorithm:")
		fmt.Fprint(w, renderSteps(code.Params(), res))
	}

	fmt.Fprintln(w)
	cyan.Fprintf(w, "Located %d error(s):\n", len(res.Errors))
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  position %d: value %d\n", e.Position, e.Value.Value())
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Corrected: %s\n", formatValues(field.Values(res.Corrected.Coefficients())))
	fmt.Fprintln(w)

	switch {
	case res.Exceeded:
		red.Fprintln(w, "⚠️  More errors than the code can correct, result is unreliable")
	case !res.Verified:
		red.Fprintln(w, "⚠️  Corrected word does not have a zero syndrome")
	default:
		green.Fprintln(w, "✓ Corrected word is a codeword")
	}
}
