package sexp_test

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/stretchr/testify/require"

	sexp "github.com/ribose-labs/go-sexp"
)

// TestCanonicalGolden checks that canonicalizing a parsed object is
// idempotent: re-parsing the canonical output and re-canonicalizing it
// byte-for-byte reproduces the same bytes (spec.md §8's "idempotence of
// canonicalization" property), against a small fixed corpus of forms.
func TestCanonicalGolden(t *testing.T) {
	f, err := os.Open("testdata/canonical_golden.txt")
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, _, err := sexp.ParseBytes([]byte(line), sexp.ParserConfig{})
		require.NoError(t, err, "parsing %q", line)

		got := string(sexp.EmitCanonical(n))
		if got != line {
			t.Errorf("canonical mismatch for %q:\n%s", line, diff.LineDiff(got, line))
		}

		reparsed, _, err := sexp.ParseBytes([]byte(got), sexp.ParserConfig{})
		require.NoError(t, err)
		require.Equal(t, got, string(sexp.EmitCanonical(reparsed)))
	}
	require.NoError(t, scanner.Err())
}

// TestAdvancedGolden checks fixed input/advanced-output pairs (spec.md
// §4.7's literal-form selection rules), each payload small enough that
// no line wrapping kicks in.
func TestAdvancedGolden(t *testing.T) {
	f, err := os.Open("testdata/advanced_golden.txt")
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " => ", 2)
		require.Len(t, parts, 2, "malformed golden line %q", line)
		input, want := parts[0], parts[1]

		n, _, err := sexp.ParseBytes([]byte(input), sexp.ParserConfig{})
		require.NoError(t, err, "parsing %q", input)

		got := string(sexp.EmitAdvanced(n, sexp.PrintConfig{}))
		if got != want {
			t.Errorf("advanced mismatch for %q:\n%s", input, diff.LineDiff(got, want))
		}
	}
	require.NoError(t, scanner.Err())
}
