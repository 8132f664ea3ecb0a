package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/govalues/bigdecimal"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func nopLogger(bool) (*zap.Logger, error) {
	return zap.NewNop(), nil
}

// execute runs bigcalc with args and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(nopLogger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"eval", "* 10 + 1.23 4.56"}, "57.9\n"},
			{[]string{"eval", "*", "10", "+", "1.23", "4.56"}, "57.9\n"},
			{[]string{"eval", "/", "1", "3"}, "0.33333333333333333333\n"},
			{[]string{"--dp", "5", "eval", "/ 2 3"}, "0.66667\n"},
			{[]string{"--dp=5", "--rounding=toward-zero", "eval", "/ 2 3"}, "0.66666\n"},
			{[]string{"--pos-exp", "3", "eval", "* 100 10"}, "1e+3\n"},
			{[]string{"eval", "--", "-1.5e-3"}, "-0.0015\n"},
			{[]string{"--dp", "50", "eval", "sqrt 2"}, "1.41421356237309504880168872420969807856967187537695\n"},
		}
		for _, tt := range tests {
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err, "bigcalc %v", tt.args)
			assert.Equal(t, tt.want, got, "bigcalc %v", tt.args)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("BIGCALC_DP", "3")
		got, err := execute(t, "", "eval", "/ 1 3")
		require.NoError(t, err)
		assert.Equal(t, "0.333\n", got)
	})

	t.Run("error", func(t *testing.T) {
		_, err := execute(t, "", "eval", "/ 1 0")
		require.ErrorIs(t, err, bigdecimal.ErrDivisionByZero)

		_, err = execute(t, "", "eval")
		require.Error(t, err)

		_, err = execute(t, "", "--rounding", "ceiling", "eval", "1")
		require.ErrorIs(t, err, bigdecimal.ErrInvalidRoundingMode)
	})
}

func TestBatchCmd(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		stdin := "+ 1 2\n\n# comment\n/ 1 3\n  sqrt 16  \n"
		got, err := execute(t, stdin, "--workers", "2", "batch")
		require.NoError(t, err)
		assert.Equal(t, "3\n0.33333333333333333333\n4\n", got)
	})

	t.Run("file", func(t *testing.T) {
		var b strings.Builder
		var want strings.Builder
		for i := 0; i < 50; i++ {
			b.WriteString("^ 2 " + strconv.Itoa(i) + "\n")
			want.WriteString(bigdecimal.DefaultContext().MustPow(bigdecimal.MustParse("2"), i).String() + "\n")
		}
		path := filepath.Join(t.TempDir(), "exprs.txt")
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

		got, err := execute(t, "", "--workers", "4", "batch", path)
		require.NoError(t, err)
		assert.Equal(t, want.String(), got)
	})

	t.Run("failures", func(t *testing.T) {
		stdin := "+ 1 1\n/ 1 0\n* 2 3\n"
		got, err := execute(t, stdin, "batch")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 3 expressions failed")

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "2", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "error: "), lines[1])
		assert.Contains(t, lines[1], "division by zero")
		assert.Equal(t, "6", lines[2])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})
}

func TestFormatCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"format", "45.6"}, "45.6\n"},
			{[]string{"format", "45.6", "--notation", "fixed", "--digits", "3"}, "45.600\n"},
			{[]string{"format", "45.6", "-n", "fixed", "-d", "0"}, "46\n"},
			{[]string{"format", "45.6", "--notation", "exponential", "--digits", "0"}, "5e+1\n"},
			{[]string{"format", "45.6", "--notation", "exponential"}, "4.56e+1\n"},
			{[]string{"format", "45.6", "--notation", "precision", "--digits", "1"}, "5e+1\n"},
			{[]string{"format", "--notation", "value", "--", "-0"}, "-0\n"},
			{[]string{"format", "--notation", "string", "--", "-0"}, "0\n"},
			{[]string{"--rounding", "toward-zero", "format", "45.6", "-n", "fixed", "-d", "0"}, "45\n"},
		}
		for _, tt := range tests {
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err, "bigcalc %v", tt.args)
			assert.Equal(t, tt.want, got, "bigcalc %v", tt.args)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := execute(t, "", "format", "abc")
		require.ErrorIs(t, err, bigdecimal.ErrInvalidNumber)

		_, err = execute(t, "", "format", "1", "--notation", "roman")
		require.Error(t, err)

		_, err = execute(t, "", "format", "1", "--notation", "precision", "--digits", "0")
		require.ErrorIs(t, err, bigdecimal.ErrInvalidPrecision)

		_, err = execute(t, "", "--strict", "format", "1", "--notation", "value")
		require.ErrorIs(t, err, bigdecimal.ErrStrictViolation)
	})
}

func TestVersionCmd(t *testing.T) {
	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "bigcalc version "+Version+"\n"), got)
	assert.Contains(t, got, "Go version: ")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dp: 2\nrounding: half-even\n"), 0o600))

	got, err := execute(t, "", "--config", path, "eval", "/ 1 8")
	require.NoError(t, err)
	assert.Equal(t, "0.12\n", got)

	got, err = execute(t, "", "--config", path, "--dp", "4", "eval", "/ 1 8")
	require.NoError(t, err)
	assert.Equal(t, "0.125\n", got)
}

