package cli

import (
	"fmt"

	"github.com/Davincible/euclid/internal/validation"
	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/algebra/poly"
	"github.com/spf13/cobra"
)

type DivideResult struct {
	Prime     uint64   `json:"prime"`
	Quotient  []uint64 `json:"quotient"`
	Remainder []uint64 `json:"remainder"`
}

func NewDivideCommand() *cobra.Command {
	var prime uint64

	cmd := &cobra.Command{
		Use:   "divide [dividend] [divisor]",
		Short: "Divide two polynomials over GF(p)",
		Long:  `Polynomial long division over GF(p). Coefficients are given lowest degree first.`,
		Example: `  # (1 + 2x + x^2) / (1 + x) over GF(5)
  euclid divide -p 5 1,2,1 1,1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			if prime == 0 {
				prime = cm.GetConfig().Defaults.Prime
			}
			if err := validation.ValidatePrime(prime); err != nil {
				return err
			}

			f, err := field.NewField(prime)
			if err != nil {
				return err
			}

			dividend, err := parsePoly(f, args[0])
			if err != nil {
				return fmt.Errorf("dividend: %w", err)
			}
			divisor, err := parsePoly(f, args[1])
			if err != nil {
				return fmt.Errorf("divisor: %w", err)
			}

			q, r, err := dividend.DivideBy(divisor)
			if err != nil {
				return err
			}

			result := DivideResult{
				Prime:     prime,
				Quotient:  field.Values(q.Coefficients()),
				Remainder: field.Values(r.Coefficients()),
			}

			if wantJSON(cmd, cm) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "(%s) / (%s) over GF(%d)\n", dividend, divisor, prime)
			fmt.Fprintf(w, "Quotient:  %s\n", q.Trim())
			fmt.Fprintf(w, "Remainder: %s\n", r.Trim())
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&prime, "prime", "p", 0, "Field characteristic p (prime)")

	return cmd
}

func parsePoly(f field.Field, s string) (poly.Poly[field.Element], error) {
	vs, err := validation.ParseWord(s)
	if err != nil {
		return poly.Poly[field.Element]{}, err
	}
	return poly.New(field.Lift(f, vs))
}
