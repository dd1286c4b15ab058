package cli

import (
	"fmt"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type EncodeResult struct {
	Params    rs.Params `json:"params"`
	Message   []uint64  `json:"message"`
	Generator []uint64  `json:"generator"`
	Codeword  []uint64  `json:"codeword"`
}

func NewEncodeCommand() *cobra.Command {
	var (
		flags    codeFlags
		useStdin bool
	)

	cmd := &cobra.Command{
		Use:   "encode [message]",
		Short: "Encode a message into a codeword",
		Long: `Encode a message m as the codeword m(x) * g(x), where
g(x) = (x - a)(x - a^2)...(x - a^(d-1)) is the generator polynomial.

The message may hold at most n - (d - 1) symbols.`,
		Example: `  euclid encode -p 11 -n 8 -d 5 -a 2 3,1,4,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			params, err := flags.resolve(cm)
			if err != nil {
				return err
			}

			msg, err := readWord(cmd, args, "Enter message (lowest degree first): ", useStdin)
			if err != nil {
				return fmt.Errorf("failed to read message: %w", err)
			}

			code, err := rs.NewCode(params)
			if err != nil {
				return err
			}

			cw, err := code.Encode(msg)
			if err != nil {
				return fmt.Errorf("failed to encode: %w", err)
			}

			g, err := code.Generator()
			if err != nil {
				return err
			}

			result := EncodeResult{
				Params:    params,
				Message:   field.Values(field.Lift(code.Field(), msg)),
				Generator: field.Values(g.Coefficients()),
				Codeword:  field.Values(cw.Coefficients()),
			}

			if wantJSON(cmd, cm) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)

			fmt.Fprintf(w, "Code:      %s (dimension %d)\n", params, code.Dimension())
			fmt.Fprintf(w, "Generator: %s\n", g)
			fmt.Fprintf(w, "Message:   %s\n", formatValues(result.Message))
			green.Fprint(w, "Codeword:  ")
			fmt.Fprintln(w, formatValues(result.Codeword))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the message from stdin")

	return cmd
}
