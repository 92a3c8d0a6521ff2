package sha3hw

import "github.com/pkg/errors"

// ByteDiff is one byte that differs between two digests.
type ByteDiff struct {
	Index    int
	Expected byte
	Got      byte
}

// Result is the outcome of comparing a computed digest with a hardware one.
type Result struct {
	Match bool
	// Diffs lists differing bytes in ascending index order. Empty on a match.
	Diffs []ByteDiff
}

// Compare checks computed against expected byte for byte. There is no
// tolerance.
func Compare(computed, expected Digest) Result {
	var diffs []ByteDiff
	for i := range computed {
		if computed[i] != expected[i] {
			diffs = append(diffs, ByteDiff{Index: i, Expected: expected[i], Got: computed[i]})
		}
	}
	return Result{Match: len(diffs) == 0, Diffs: diffs}
}

// Err returns nil on a match and ErrMismatch otherwise.
func (r Result) Err() error {
	if r.Match {
		return nil
	}
	return errors.Wrapf(ErrMismatch, "%d of %d bytes differ", len(r.Diffs), DigestSize)
}
