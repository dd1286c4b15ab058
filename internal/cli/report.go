package cli

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/rs"
	"github.com/xlab/treeprint"
	"golang.org/x/crypto/blake2b"
)

type ErrorReport struct {
	Position int    `json:"position"`
	Value    uint64 `json:"value"`
}

type StepReport struct {
	Quotient  string `json:"quotient"`
	Remainder string `json:"remainder"`
	Auxiliary string `json:"auxiliary"`
}

type DecodeReport struct {
	Params      rs.Params     `json:"params"`
	Received    []uint64      `json:"received"`
	Corrected   []uint64      `json:"corrected"`
	Syndrome    []uint64      `json:"syndrome"`
	Locator     string        `json:"locator"`
	Evaluator   string        `json:"evaluator"`
	Errors      []ErrorReport `json:"errors"`
	Steps       []StepReport  `json:"steps,omitempty"`
	Verified    bool          `json:"verified"`
	Exceeded    bool          `json:"exceeded"`
	Fingerprint string        `json:"fingerprint"`
}

func newDecodeReport(params rs.Params, res *rs.Result, withSteps bool) DecodeReport {
	report := DecodeReport{
		Params:      params,
		Received:    field.Values(res.Received.Coefficients()),
		Corrected:   field.Values(res.Corrected.Coefficients()),
		Syndrome:    field.Values(res.Syndrome.Coefficients()),
		Locator:     res.Locator.Trim().String(),
		Evaluator:   res.Evaluator.Trim().String(),
		Errors:      make([]ErrorReport, len(res.Errors)),
		Verified:    res.Verified,
		Exceeded:    res.Exceeded,
		Fingerprint: fingerprint(res.Corrected),
	}

	for i, e := range res.Errors {
		report.Errors[i] = ErrorReport{Position: e.Position, Value: e.Value.Value()}
	}

	if withSteps {
		for _, s := range res.Steps {
			report.Steps = append(report.Steps, StepReport{
				Quotient:  s.Quotient.Trim().String(),
				Remainder: s.Remainder.Trim().String(),
				Auxiliary: s.Auxiliary.Trim().String(),
			})
		}
	}

	return report
}

// fingerprint is the BLAKE2b-256 digest of the modulus followed by every
// coefficient, each as 8 big-endian bytes.
func fingerprint(w rs.Word) string {
	coeffs := w.Coefficients()
	if len(coeffs) == 0 {
		return ""
	}
	buf := make([]byte, 8*(len(coeffs)+1))
	binary.BigEndian.PutUint64(buf, coeffs[0].Modulus())
	for i, c := range coeffs {
		binary.BigEndian.PutUint64(buf[8*(i+1):], c.Value())
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// renderSteps draws the Euclidean remainder sequence as a tree
func renderSteps(params rs.Params, res *rs.Result) string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("r(-1) = x^%d, r(0) = %s", params.Distance-1, res.Syndrome.Trim()))
	for i, s := range res.Steps {
		branch := tree.AddBranch(fmt.Sprintf("step %d", i+1))
		branch.AddNode("q = " + s.Quotient.Trim().String())
		branch.AddNode("r = " + s.Remainder.Trim().String())
		branch.AddNode("t = " + s.Auxiliary.Trim().String())
	}
	return tree.String()
}
