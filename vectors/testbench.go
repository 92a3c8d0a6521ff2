package vectors

import "strings"

const (
	testbenchKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" +
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

// Testbench returns the stimulus the RTL testbenches drive: the HMAC
// controller run with the fixed key and two message words, and the Keccak
// core run in both PUF and block mode. Expected values are left empty to be
// filled from simulation.
func Testbench() []Case {
	return []Case{
		{
			Name:  "hmac-testbench",
			Mode:  ModeHMAC,
			Key:   testbenchKey,
			Words: []string{"deadbeef", "cafebabe"},
		},
		{
			Name:  "puf-aa",
			Mode:  ModePUF,
			Input: strings.Repeat("aa", 88),
		},
		{
			Name:  "puf-0123",
			Mode:  ModePUF,
			Input: strings.Repeat("0123456789abcdef", 11),
		},
		{
			Name:  "block-2",
			Mode:  ModeBlock,
			Words: []string{"deadbeef", "cafebabe"},
		},
		{
			Name:  "block-4",
			Mode:  ModeBlock,
			Words: []string{"01234567", "89abcdef", "fedcba98", "76543210"},
		},
		{
			Name:  "block-1",
			Mode:  ModeBlock,
			Words: []string{"12345678"},
		},
	}
}
