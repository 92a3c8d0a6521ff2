// Package sha3hw is a software reference for a hardware SHA3-512 core and
// the simplified HMAC controller built on it.
//
// The HMAC is a single pass with no outer round:
//
//	TAG = SHA3-512((K || 0^64) XOR ipad || message)
//
// where K is a 512-bit key, the zero padding extends it to the 576-bit rate
// and ipad is 0x36 repeated 72 times. Message words are fed to the core
// least-significant byte first, while keys and digests are displayed as
// big-endian integers. Both conventions are reproduced exactly so results
// can be diffed against simulation transcripts.
//
// The Keccak-f[1600] permutation comes from golang.org/x/crypto/sha3.
package sha3hw

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Compute returns the HMAC of message under key. key must be 64 bytes; the
// message is absorbed verbatim.
func Compute(key, message []byte) (Digest, error) {
	k, err := NewKey(key)
	if err != nil {
		return Digest{}, err
	}
	return k.Sum(message), nil
}

// ComputeWords returns the HMAC of a message given as hardware words. It is
// equal to Compute(key, EncodeWordsLE(words)).
func ComputeWords(key []byte, words []uint32) (Digest, error) {
	k, err := NewKey(key)
	if err != nil {
		return Digest{}, err
	}
	return k.SumWords(words), nil
}

// Sum returns the HMAC of message under k.
func (k Key) Sum(message []byte) Digest {
	block := k.IPadBlock()
	data := make([]byte, 0, BlockSize+len(message))
	data = append(data, block[:]...)
	data = append(data, message...)
	return sha3.Sum512(data)
}

// SumWords returns the HMAC of words under k.
func (k Key) SumWords(words []uint32) Digest {
	block := k.IPadBlock()
	data := make([]byte, 0, BlockSize+len(words)*WordSize)
	data = append(data, block[:]...)
	data = AppendWordsLE(data, words...)
	return sha3.Sum512(data)
}

// MAC is a streaming HMAC. The key block is absorbed on construction and on
// every Reset.
type MAC struct {
	key Key
	h   hash.Hash
}

// NewMAC returns a streaming HMAC keyed with k.
func NewMAC(k Key) *MAC {
	m := &MAC{key: k, h: sha3.New512()}
	m.Reset()
	return m
}

// Reset discards the absorbed message, keeping the key.
func (m *MAC) Reset() {
	m.h.Reset()
	block := m.key.IPadBlock()
	m.h.Write(block[:])
}

// Write absorbs message bytes. It never returns an error.
func (m *MAC) Write(p []byte) (int, error) {
	return m.h.Write(p)
}

// WriteWords absorbs message words, each least-significant byte first.
func (m *MAC) WriteWords(words ...uint32) {
	var buf [WordSize]byte
	for _, w := range words {
		m.h.Write(AppendWordsLE(buf[:0], w))
	}
}

// Sum appends the current tag to b. Does not modify the MAC state.
func (m *MAC) Sum(b []byte) []byte {
	return m.h.Sum(b)
}

// Sum512 returns the current tag as a Digest.
func (m *MAC) Sum512() Digest {
	var d Digest
	m.h.Sum(d[:0])
	return d
}

// Size returns DigestSize.
func (m *MAC) Size() int { return DigestSize }

// BlockSize returns the SHA3-512 rate.
func (m *MAC) BlockSize() int { return BlockSize }

var _ hash.Hash = (*MAC)(nil)
