package sha3hw

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// WordSize is the width, in bytes, of a hardware word.
const WordSize = 4

// EncodeWordsLE serializes words the way the core feeds them to the
// permutation: each word least-significant byte first, words in order.
func EncodeWordsLE(words []uint32) []byte {
	return AppendWordsLE(make([]byte, 0, len(words)*WordSize), words...)
}

// AppendWordsLE appends the little-endian encoding of words to dst.
func AppendWordsLE(dst []byte, words ...uint32) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// Words narrows wide integers to hardware words. A value above 0xFFFFFFFF
// is an ErrRange, never truncated.
func Words(values []uint64) ([]uint32, error) {
	words := make([]uint32, len(values))
	for i, v := range values {
		if v > 0xFFFFFFFF {
			return nil, errors.Wrapf(ErrRange, "word %d is %#x, exceeds 32 bits", i+1, v)
		}
		words[i] = uint32(v)
	}
	return words, nil
}

// EncodeIntBE returns v as exactly n bytes, most-significant first. A nil
// or negative v is an ErrRange.
func EncodeIntBE(v *big.Int, n int) ([]byte, error) {
	if v == nil {
		return nil, errors.Wrap(ErrRange, "nil value")
	}
	if v.Sign() < 0 {
		return nil, errors.Wrapf(ErrRange, "negative value %v", v)
	}
	if v.BitLen() > n*8 {
		return nil, errors.Wrapf(ErrRange, "%d-bit value does not fit in %d bytes", v.BitLen(), n)
	}
	return v.FillBytes(make([]byte, n)), nil
}

// EncodeIntLE returns v as exactly n bytes, least-significant first. The
// whole buffer is reversed, not each word.
func EncodeIntLE(v *big.Int, n int) ([]byte, error) {
	b, err := EncodeIntBE(v, n)
	if err != nil {
		return nil, err
	}
	slices.Reverse(b)
	return b, nil
}

// DecodeBytesBE is the inverse of EncodeIntBE.
func DecodeBytesBE(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// DecodeBytesLE is the inverse of EncodeIntLE.
func DecodeBytesLE(b []byte) *big.Int {
	r := slices.Clone(b)
	slices.Reverse(r)
	return new(big.Int).SetBytes(r)
}

// ParseHex parses hexadecimal text as printed by simulators and scripts.
// Surrounding space, a 0x prefix, a Verilog literal prefix such as 512'h,
// and _ separators are accepted. The value must fit in bits.
func ParseHex(s string, bits int) (*big.Int, error) {
	digits, err := cleanHex(s)
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, errors.Wrapf(ErrFormat, "%q", s)
	}
	if v.BitLen() > bits {
		return nil, errors.Wrapf(ErrRange, "%q exceeds %d bits", s, bits)
	}
	return v, nil
}

// ParseWord parses one 32-bit hex word token.
func ParseWord(s string) (uint32, error) {
	v, err := ParseHex(s, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v.Uint64()), nil
}

// ParseWords parses word tokens in order. Errors name the 1-based position
// of the bad token.
func ParseWords(tokens []string) ([]uint32, error) {
	words := make([]uint32, len(tokens))
	for i, tok := range tokens {
		w, err := ParseWord(tok)
		if err != nil {
			return nil, errors.WithMessagef(err, "message word %d", i+1)
		}
		words[i] = w
	}
	return words, nil
}

// ParseBytes parses hex text as a byte string, keeping leading zero bytes.
// The formatting accepted by ParseHex is accepted here too; empty text is an
// empty message.
func ParseBytes(s string) ([]byte, error) {
	if strings.TrimSpace(s) == "" {
		return []byte{}, nil
	}
	digits, err := cleanHex(s)
	if err != nil {
		return nil, err
	}
	if len(digits)%2 != 0 {
		return nil, errors.Wrapf(ErrFormat, "%q has an odd number of hex digits", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "%q: %v", s, err)
	}
	return b, nil
}

// cleanHex strips display formatting and returns the bare hex digits.
func cleanHex(s string) (string, error) {
	t := strings.TrimSpace(s)
	if i := strings.IndexByte(t, '\''); i >= 0 {
		// Verilog literal: [width]'h or [width]'H.
		if i+1 >= len(t) || (t[i+1] != 'h' && t[i+1] != 'H') {
			return "", errors.Wrapf(ErrFormat, "%q is not a hex literal", s)
		}
		t = t[i+2:]
	} else if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		t = t[2:]
	}
	t = strings.ReplaceAll(t, "_", "")
	if t == "" {
		return "", errors.Wrapf(ErrFormat, "%q has no hex digits", s)
	}
	for i := 0; i < len(t); i++ {
		if !isHexDigit(t[i]) {
			return "", errors.Wrapf(ErrFormat, "%q: invalid character %q", s, t[i])
		}
	}
	return t, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
