package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Giulio2002/sha3hw"
	"github.com/Giulio2002/sha3hw/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	key       = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	hmacTag   = "c2a3eb3206e4a47c48e35913d9771011d0b0c12f75c54ab6a698734b15d1ed4178c7b8470889a8164946a29f1e6d576763ac09be7c894311b7b6926f197a94e6"
	pufAATag  = "6c26d0bb1992ff784d7f1131a28a2e5a0a035f3b16a58b70ec804700b79306dd4a186f9a5959e094110a9da547a5b7c8f1fbaaa90b63fc92fc4717919848f547"
	block1Tag = "d908b3f46060dab5618c776e77dd5ecd1b484353fcce3b32cc1f0e55736f2645425c835427ed415f4560b86a6c635a10054eb25e4d4b976e964edc13324428ea"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHMAC(t *testing.T) {
	out, err := run(t, "hmac", key, "deadbeef", "0xCAFE_BABE")
	require.NoError(t, err)
	assert.Contains(t, out, "Word 0: 0xdeadbeef")
	assert.Contains(t, out, "Word 1: 0xcafebabe")
	assert.Contains(t, out, "  "+hmacTag+"\n")
	assert.Contains(t, out, "First 64 bits:  0xc2a3eb3206e4a47c")
}

func TestHMACShowIPad(t *testing.T) {
	const ipad = "37157351bf9dfbd937157351bf9dfbd937157351bf9dfbd937157351bf9dfbd9" +
		"37157351bf9dfbd937157351bf9dfbd937157351bf9dfbd937157351bf9dfbd9" +
		"3636363636363636"

	out, err := run(t, "hmac", key, "deadbeef", "cafebabe", "--show-ipad")
	require.NoError(t, err)
	assert.Contains(t, out, "(K_padded ^ ipad) block (576 bits):\n  "+ipad+"\n")
	assert.Contains(t, out, hmacTag)

	out, err = run(t, "hmac", key, "deadbeef")
	require.NoError(t, err)
	assert.NotContains(t, out, "K_padded")
}

func TestHMACMessageHex(t *testing.T) {
	out, err := run(t, "hmac", key, "--message-hex", "efbeaddebebafeca", "--expected", hmacTag)
	require.NoError(t, err)
	assert.Contains(t, out, "Message (8 bytes)")
	assert.Contains(t, out, "[PASS]")

	_, err = run(t, "hmac", key, "deadbeef", "--message-hex", "00")
	assert.ErrorIs(t, err, errConflictingMessage)
	assert.Equal(t, exitCodeInputError, exitCode(err))
}

func TestHMACMismatch(t *testing.T) {
	wrong := hmacTag[:126] + "e7"
	out, err := run(t, "hmac", key, "deadbeef", "cafebabe", "-e", "512'h"+wrong)
	require.ErrorIs(t, err, sha3hw.ErrMismatch)
	assert.Equal(t, exitCodeMismatch, exitCode(err))
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "Byte 63: Expected 0xe7, Got 0xe6")
	assert.Contains(t, out, "--- expected")
	assert.Contains(t, out, "+++ computed")
	assert.Contains(t, out, "-56: b7b6926f197a94e7\n+56: b7b6926f197a94e6\n")
}

func TestHMACInputErrorsPrintNothing(t *testing.T) {
	for name, args := range map[string][]string{
		"short key":     {"hmac", key[:126], "deadbeef"},
		"bad key":       {"hmac", key[:127] + "g", "deadbeef"},
		"wide word":     {"hmac", key, "100000000"},
		"bad word":      {"hmac", key, "cafe", "beefy"},
		"bad expected":  {"hmac", key, "-e", "nothex"},
		"wide puf":      {"puf", "1" + strings.Repeat("0", 176)},
		"bad block":     {"block", "0x"},
		"odd sum bytes": {"sum", "abc"},
	} {
		out, err := run(t, args...)
		require.Error(t, err, name)
		assert.Equal(t, exitCodeInputError, exitCode(err), name)
		assert.Empty(t, out, name)
	}
}

func TestPUFAndBlock(t *testing.T) {
	out, err := run(t, "puf", strings.Repeat("aa", 88), "--expected", pufAATag)
	require.NoError(t, err)
	assert.Contains(t, out, "Input (704 bits):\n  "+strings.Repeat("aa", 88))
	assert.Contains(t, out, "[PASS]")

	out, err = run(t, "block", "12345678")
	require.NoError(t, err)
	assert.Contains(t, out, block1Tag)

	out, err = run(t, "sum", "78563412")
	require.NoError(t, err)
	assert.Contains(t, out, block1Tag)
}

func TestVectorsYAMLVerifies(t *testing.T) {
	out, err := run(t, "vectors", "--yaml")
	require.NoError(t, err)

	cases, err := vectors.Load(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cases, len(vectors.Testbench()))
	assert.Equal(t, hmacTag, cases[0].Expected)

	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	out, err = run(t, "verify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[PASS] hmac-testbench")
	assert.Contains(t, out, "6 passed, 0 failed")
}

func TestVectorsListing(t *testing.T) {
	out, err := run(t, "vectors")
	require.NoError(t, err)
	assert.Contains(t, out, "[hmac] hmac-testbench\n  "+hmacTag)
	assert.Contains(t, out, "[block] block-1\n  "+block1Tag)
}

func TestVerifyMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - name: good
    mode: puf
    input: `+strings.Repeat("aa", 88)+`
    expected: `+pufAATag+`
  - name: bad
    mode: block
    words: [12345678]
    expected: `+pufAATag+`
  - name: open
    mode: bytes
    message: "00"
`), 0o600))

	out, err := run(t, "verify", path)
	require.ErrorIs(t, err, sha3hw.ErrMismatch)
	assert.Equal(t, exitCodeMismatch, exitCode(err))
	assert.Contains(t, out, "[PASS] good")
	assert.Contains(t, out, "[FAIL] bad\n  computed "+block1Tag)
	assert.Contains(t, out, "[----] open")
	assert.Contains(t, out, "1 passed, 1 failed, 1 computed without expected value")
}

func TestVerifyInvalidCaseHaltsBeforeOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - name: good
    mode: block
    words: [12345678]
    expected: `+block1Tag+`
  - name: wide
    mode: block
    words: [100000000]
`), 0o600))

	out, err := run(t, "verify", path)
	require.ErrorIs(t, err, sha3hw.ErrRange)
	assert.Equal(t, exitCodeInputError, exitCode(err))
	assert.Empty(t, out)
}

func TestVerifyMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases: {"), 0o600))

	out, err := run(t, "verify", path)
	require.ErrorIs(t, err, vectors.ErrDecode)
	assert.Equal(t, exitCodeInputError, exitCode(err))
	assert.Empty(t, out)
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := run(t, "verify", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, exitCodeInputError, exitCode(err))
}

func TestUsageErrors(t *testing.T) {
	_, err := run(t, "puf")
	require.Error(t, err)
	assert.Equal(t, exitCodeUsageError, exitCode(err))

	_, err = run(t, "--log-level", "loud", "block")
	require.Error(t, err)
	assert.Equal(t, exitCodeUsageError, exitCode(err))

	assert.Equal(t, exitCodeSuccess, exitCode(nil))
}
