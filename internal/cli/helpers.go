package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Davincible/euclid/internal/validation"
	"github.com/Davincible/euclid/pkg/config"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// codeFlags are the code parameter flags shared by decode, encode and syndrome
type codeFlags struct {
	prime    uint64
	length   int
	distance int
	base     int64
	preset   string
}

func (f *codeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64VarP(&f.prime, "prime", "p", 0, "Field characteristic p (prime)")
	cmd.Flags().IntVarP(&f.length, "length", "n", 0, "Code length n")
	cmd.Flags().IntVarP(&f.distance, "distance", "d", 0, "Designed distance d (2 <= d <= n)")
	cmd.Flags().Int64VarP(&f.base, "base", "a", 0, "Evaluation base a")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Use a saved code preset")
}

// resolve merges preset, flags and configured defaults, in that order of
// increasing precedence for flags.
func (f *codeFlags) resolve(cm *config.ConfigManager) (rs.Params, error) {
	var params rs.Params

	if f.preset != "" {
		preset, err := cm.GetPreset(f.preset)
		if err != nil {
			return rs.Params{}, err
		}
		params = preset.Params
	}

	if f.prime != 0 {
		params.Prime = f.prime
	}
	if f.length != 0 {
		params.Length = f.length
	}
	if f.distance != 0 {
		params.Distance = f.distance
	}
	if f.base != 0 {
		params.Base = f.base
	}

	cm.ApplyDefaults(&params)

	if err := validation.ValidateCodeParams(params); err != nil {
		return rs.Params{}, fmt.Errorf("invalid code parameters: %w", err)
	}

	return params, nil
}

// loadConfig opens the configuration and applies its UI settings
func loadConfig() (*config.ConfigManager, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !cm.GetConfig().UI.UseColor {
		color.NoColor = true
	}

	return cm, nil
}

// wantJSON reports whether output should be JSON, either from the global
// --json flag or the configured output format
func wantJSON(cmd *cobra.Command, cm *config.ConfigManager) bool {
	if v, err := cmd.Flags().GetBool("json"); err == nil && v {
		return true
	}
	return cm.GetConfig().Output.Format == "json"
}

// readWord reads a word from the arguments, or from stdin when none are given
func readWord(cmd *cobra.Command, args []string, prompt string, useStdin bool) ([]int64, error) {
	if len(args) > 0 {
		return validation.ParseWord(strings.Join(args, " "))
	}

	in := cmd.InOrStdin()

	if useStdin || !isTerminal(in) {
		data, err := readAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return validation.ParseWord(data)
	}

	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	return validation.ParseWord(line)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readAll(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.Join(lines, "\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func saveToFile(w io.Writer, v any, filename string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	slog.Debug("Report written", "file", filename, "bytes", len(data))
	fmt.Fprintf(w, "Report saved to %s\n", filename)
	return nil
}

// formatValues renders field values the way words are typed in
func formatValues(vs []uint64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
