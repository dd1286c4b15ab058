package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Davincible/euclid/pkg/rs"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree against an isolated config directory
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if os.Getenv("EUCLID_CONFIG") == "" {
		t.Setenv("EUCLID_CONFIG", filepath.Join(t.TempDir(), "config.json"))
	}
	color.NoColor = true

	var out bytes.Buffer
	root := NewRootCommand("test", nil)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), err
}

func TestDecodeCommand_Text(t *testing.T) {
	out, err := run(t, "", "decode", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "1,0,2,1")
	require.NoError(t, err)

	assert.Contains(t, out, "=== EUCLIDEAN DECODING ===")
	assert.Contains(t, out, "Received:  1, 0, 2, 1")
	assert.Contains(t, out, "Syndrome:  2, 2")
	assert.Contains(t, out, "position 0: value 2")
	assert.Contains(t, out, "Corrected: 4, 0, 2, 1")
	assert.Contains(t, out, "✓ Corrected word is a codeword")
}

func TestDecodeCommand_JSON(t *testing.T) {
	out, err := run(t, "", "decode", "--json", "-p", "11", "-n", "7", "-d", "5", "-a", "2", "1, -1, 1, 0, 3, 2, 0, 1")
	require.NoError(t, err)

	var report DecodeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, rs.Params{Prime: 11, Length: 7, Distance: 5, Base: 2}, report.Params)
	assert.Equal(t, []uint64{1, 10, 1, 8, 3, 2, 5, 1}, report.Corrected)
	assert.Equal(t, []ErrorReport{{Position: 3, Value: 3}, {Position: 6, Value: 6}}, report.Errors)
	assert.True(t, report.Verified)
	assert.False(t, report.Exceeded)
	assert.Len(t, report.Fingerprint, 64)
	assert.Empty(t, report.Steps)
}

func TestDecodeCommand_Stdin(t *testing.T) {
	out, err := run(t, "4 0 2 1\n", "decode", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "--stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Zero syndrome")
}

func TestDecodeCommand_Steps(t *testing.T) {
	out, err := run(t, "", "decode", "-p", "11", "-n", "7", "-d", "5", "-a", "2", "--steps", "1,-1,1,0,3,2,0,1")
	require.NoError(t, err)

	assert.Contains(t, out, "Euclidean algorithm:")
	assert.Contains(t, out, "step 1")
	assert.Contains(t, out, "step 2")
	assert.NotContains(t, out, "step 3")
}

func TestDecodeCommand_InvalidDistance(t *testing.T) {
	for _, d := range []string{"1", "5"} {
		_, err := run(t, "", "decode", "-p", "5", "-n", "4", "-d", d, "-a", "2", "1,0,2,1")
		assert.ErrorIs(t, err, rs.ErrInvalidDistanceRange, "d=%s", d)
	}
}

func TestDecodeCommand_BadWord(t *testing.T) {
	_, err := run(t, "", "decode", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "1,x,2")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "1,0,2,1,0,0,0")
	assert.Error(t, err)
}

func TestDecodeCommand_OutputFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "report.json")

	out, err := run(t, "", "decode", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "--steps", "-o", file, "1,0,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to")

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var report DecodeReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []uint64{4, 0, 2, 1}, report.Corrected)
	assert.Len(t, report.Steps, 1)
}

func TestDecodeCommand_UsesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults":{"prime":5,"length":4,"distance":3,"base":2}}`), 0600))
	t.Setenv("EUCLID_CONFIG", path)

	out, err := run(t, "", "decode", "1,0,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Corrected: 4, 0, 2, 1")
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "", "encode", "-j", "-p", "11", "-n", "8", "-d", "5", "-a", "2", "3,1,4,1")
	require.NoError(t, err)

	var result EncodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []uint64{1, 8, 5, 3, 1}, result.Generator)
	assert.Equal(t, []uint64{3, 3, 5, 3, 1, 7, 7, 1}, result.Codeword)

	_, err = run(t, "", "encode", "-p", "11", "-n", "8", "-d", "5", "-a", "2", "1,2,3,4,5")
	assert.ErrorIs(t, err, rs.ErrMessageTooLong)
}

func TestSyndromeCommand(t *testing.T) {
	out, err := run(t, "", "syndrome", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "1,0,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Syndrome: 2, 2")
	assert.Contains(t, out, "not a codeword")

	out, err = run(t, "", "syndrome", "--json", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "4,0,2,1")
	require.NoError(t, err)

	var result SyndromeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.IsCodeword)
}

func TestDivideCommand(t *testing.T) {
	out, err := run(t, "", "divide", "--json", "-p", "5", "1,2,1", "1,1")
	require.NoError(t, err)

	var result DivideResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []uint64{1, 1}, result.Quotient)
	assert.Equal(t, []uint64{0, 0, 0}, result.Remainder)

	out, err = run(t, "", "divide", "-p", "5", "0,0,1", "1,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Quotient:  1 + 2x")
	assert.Contains(t, out, "Remainder: 4")

	_, err = run(t, "", "divide", "-p", "5", "1,2,1", "0,0")
	assert.Error(t, err)

	_, err = run(t, "", "divide", "-p", "6", "1,2,1", "1,1")
	assert.Error(t, err)
}

func TestPresetWorkflow(t *testing.T) {
	t.Setenv("EUCLID_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	out, err := run(t, "", "config", "preset", "add", "small", "-p", "5", "-n", "4", "-d", "3", "-a", "2", "--description", "GF(5), one error")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved preset small")

	out, err = run(t, "", "config", "preset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "small")
	assert.Contains(t, out, "GF(5) n=4 d=3 a=2")

	out, err = run(t, "", "decode", "--preset", "small", "1,0,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Corrected: 4, 0, 2, 1")

	_, err = run(t, "", "decode", "--preset", "missing", "1,0,2,1")
	assert.Error(t, err)

	_, err = run(t, "", "config", "preset", "delete", "small")
	require.NoError(t, err)

	out, err = run(t, "", "config", "preset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No presets saved")
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"prime": 11`)
	assert.Contains(t, out, `"format": "text"`)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults":{"prime":5,"length":4,"distance":3,"base":2}}`), 0600))
	t.Setenv("EUCLID_CONFIG", path)

	out, err := run(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"prime": 11`)
}

func TestFingerprint(t *testing.T) {
	code, err := rs.NewCode(rs.Params{Prime: 5, Length: 4, Distance: 3, Base: 2})
	require.NoError(t, err)

	a, err := code.Lift([]int64{4, 0, 2, 1})
	require.NoError(t, err)
	b, err := code.Lift([]int64{-1, 0, 2, 1})
	require.NoError(t, err)
	c, err := code.Lift([]int64{4, 0, 2, 2})
	require.NoError(t, err)

	assert.Equal(t, fingerprint(a), fingerprint(b))
	assert.NotEqual(t, fingerprint(a), fingerprint(c))
}
