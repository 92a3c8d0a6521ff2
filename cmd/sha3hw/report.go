package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Giulio2002/sha3hw"
	"github.com/pmezard/go-difflib/difflib"
)

const rule = "======================================================================"

func printHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
}

func printWords(w io.Writer, words []uint32) {
	_, _ = fmt.Fprintf(w, "\nMessage (%d words):\n", len(words))
	for i, word := range words {
		_, _ = fmt.Fprintf(w, "  Word %d: 0x%08x\n", i, word)
	}
}

// report prints the digest and, when expected is set, the comparison. It
// returns the mismatch error so the command exits non-zero.
func report(w io.Writer, label string, d sha3hw.Digest, expected *sha3hw.Digest) error {
	_, _ = fmt.Fprintf(w, "\n%s (512 bits):\n  %s\n\n", label, d)
	_, _ = fmt.Fprintf(w, "First 64 bits:  %s\n", d.Preview(64))
	_, _ = fmt.Fprintf(w, "First 128 bits: %s\n", d.Preview(128))
	_, _ = fmt.Fprintf(w, "First 256 bits: %s\n", d.Preview(256))
	if expected == nil {
		_, _ = fmt.Fprintf(w, "\n%s\n", rule)
		return nil
	}

	_, _ = fmt.Fprintf(w, "\nExpected (from hardware):\n  %s\n", expected)
	r := sha3hw.Compare(d, *expected)
	_, _ = fmt.Fprintf(w, "\n%s\n", rule)
	printResult(w, r, d, *expected)
	_, _ = fmt.Fprintf(w, "%s\n", rule)
	return r.Err()
}

func printResult(w io.Writer, r sha3hw.Result, computed, expected sha3hw.Digest) {
	if r.Match {
		_, _ = fmt.Fprintln(w, "[PASS] MATCH: software and hardware outputs are identical")
		return
	}
	_, _ = fmt.Fprintln(w, "[FAIL] MISMATCH: outputs differ")
	_, _ = fmt.Fprintln(w, "\nDifferences:")
	for _, diff := range r.Diffs {
		_, _ = fmt.Fprintf(w, "  Byte %2d: Expected 0x%02x, Got 0x%02x\n", diff.Index, diff.Expected, diff.Got)
	}
	_, _ = fmt.Fprintf(w, "\n%s", hexDiff(expected, computed))
}

// hexDiff renders a unified diff of the two digests, 8 bytes per line, so
// the differing 64-bit lanes stand out.
func hexDiff(expected, computed sha3hw.Digest) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        hexLines(expected),
		B:        hexLines(computed),
		FromFile: "expected",
		ToFile:   "computed",
		Context:  1,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v\n", err)
	}
	return diff
}

func hexLines(d sha3hw.Digest) []string {
	lines := make([]string, 0, sha3hw.DigestSize/8)
	for i := 0; i < sha3hw.DigestSize; i += 8 {
		lines = append(lines, fmt.Sprintf("%02d: %x\n", i, d[i:i+8]))
	}
	return lines
}

// summary renders pass/fail counts for a batch run.
func summary(passed, failed, unchecked int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%d passed, %d failed", passed, failed)
	if unchecked > 0 {
		_, _ = fmt.Fprintf(&b, ", %d computed without expected value", unchecked)
	}
	return b.String()
}
