package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/rs"
)

var (
	wordPattern      = regexp.MustCompile(`^[\[(]?\s*-?\d+(\s*[,\s]\s*-?\d+)*\s*,?\s*[\])]?$`)
	separatorPattern = regexp.MustCompile(`[\s,]+`)
)

// ParseWord parses a list of integers such as "1, -1, 1, 0" or "[1 0 2 1]".
func ParseWord(input string) ([]int64, error) {
	input = SanitizeInput(input)
	if input == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	if !wordPattern.MatchString(input) {
		return nil, fmt.Errorf("invalid word %q: expected comma or space separated integers", input)
	}

	input = strings.Trim(input, "[]() \n")
	fields := separatorPattern.Split(input, -1)

	word := make([]int64, 0, len(fields))
	for i, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		word = append(word, v)
	}

	if len(word) == 0 {
		return nil, fmt.Errorf("word cannot be empty")
	}

	return word, nil
}

func ValidatePrime(p uint64) error {
	if p < 2 {
		return fmt.Errorf("%w: prime must be at least 2 (got %d)", field.ErrNotPrime, p)
	}
	if !field.IsPrime(p) {
		return fmt.Errorf("%w: %d is composite", field.ErrNotPrime, p)
	}
	return nil
}

func ValidateCodeParams(params rs.Params) error {
	if err := ValidatePrime(params.Prime); err != nil {
		return err
	}

	if params.Length < 2 {
		return fmt.Errorf("%w: length must be at least 2 (got %d)", rs.ErrInvalidDistanceRange, params.Length)
	}

	if params.Distance < 2 || params.Distance > params.Length {
		return fmt.Errorf("%w: distance must be between 2 and %d (got %d)",
			rs.ErrInvalidDistanceRange, params.Length, params.Distance)
	}

	if field.New(params.Base, params.Prime).IsZero() {
		return fmt.Errorf("%w: base %d is a multiple of %d", rs.ErrInvalidBase, params.Base, params.Prime)
	}

	if params.Prime <= uint64(params.Length) {
		return fmt.Errorf("length %d exceeds the %d non-zero elements of GF(%d)",
			params.Length, params.Prime-1, params.Prime)
	}

	return nil
}

// ValidateWordLength rejects received words that cannot belong to a code of
// the given length.
func ValidateWordLength(word []int64, length int) error {
	if len(word) == 0 {
		return fmt.Errorf("word cannot be empty")
	}
	if len(word) > length+1 {
		return fmt.Errorf("word has %d coefficients, code length is %d", len(word), length)
	}
	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, " ")
}
