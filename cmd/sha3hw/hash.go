package main

import (
	"fmt"

	"github.com/Giulio2002/sha3hw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newHMACCommand() *cobra.Command {
	var (
		messageHex, expected string
		showIPad             bool
	)
	cmd := &cobra.Command{
		Use:   "hmac <key_hex> [word...]",
		Short: "Compute the HMAC controller tag SHA3-512((K || 0^64) ^ ipad || message)",
		Long: `
Computes the simplified single-pass HMAC of the hardware controller. The
key is 512 bits (128 hex characters). The message is a list of 32-bit hex
words, or raw bytes given with --message-hex. An empty message is valid.

    $ sha3hw hmac 0123456789abcdef...0123456789abcdef deadbeef cafebabe
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if messageHex != "" && len(args) > 1 {
				return errConflictingMessage
			}
			key, err := sha3hw.ParseKey(args[0])
			if err != nil {
				return err
			}
			var (
				msg   []byte
				words []uint32
			)
			if messageHex != "" {
				msg, err = sha3hw.ParseBytes(messageHex)
			} else {
				words, err = sha3hw.ParseWords(args[1:])
			}
			if err != nil {
				return err
			}
			exp, err := parseExpected(expected)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "HMAC-SHA3-512 Computation")
			_, _ = fmt.Fprintf(w, "\nKey (512 bits):\n  %s\n", key)
			if showIPad {
				block := key.IPadBlock()
				_, _ = fmt.Fprintf(w, "\n(K_padded ^ ipad) block (576 bits):\n  %x\n", block[:])
			}

			var d sha3hw.Digest
			if msg != nil {
				logrus.WithFields(logrus.Fields{"mode": "hmac", "bytes": len(msg)}).Debug("computing")
				_, _ = fmt.Fprintf(w, "\nMessage (%d bytes):\n  %x\n", len(msg), msg)
				d = key.Sum(msg)
			} else {
				logrus.WithFields(logrus.Fields{"mode": "hmac", "words": len(words)}).Debug("computing")
				printWords(w, words)
				d = key.SumWords(words)
			}
			return report(w, "HMAC-SHA3-512", d, exp)
		},
	}
	cmd.Flags().StringVarP(&messageHex, "message-hex", "m", "", "Message as raw hex bytes instead of words")
	cmd.Flags().BoolVar(&showIPad, "show-ipad", false, "Also print the (K_padded ^ ipad) block absorbed ahead of the message")
	addExpectedFlag(cmd.Flags(), &expected)
	return cmd
}

func newPUFCommand() *cobra.Command {
	var expected string
	cmd := &cobra.Command{
		Use:   "puf <input_hex>",
		Short: "Hash a 704-bit input the way the core's PUF mode does",
		Long: `
Serializes the 704-bit input as one little-endian integer (88 bytes) and
hashes it with SHA3-512. No HMAC is applied.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := sha3hw.ParseHex(args[0], sha3hw.PUFInputBits)
			if err != nil {
				return err
			}
			exp, err := parseExpected(expected)
			if err != nil {
				return err
			}
			logrus.WithField("mode", "puf").Debug("computing")
			d, err := sha3hw.HashPUF(input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "PUF Mode")
			_, _ = fmt.Fprintf(w, "\nInput (704 bits):\n  %0176x\n", input)
			return report(w, "SHA3-512", d, exp)
		},
	}
	addExpectedFlag(cmd.Flags(), &expected)
	return cmd
}

func newBlockCommand() *cobra.Command {
	var expected string
	cmd := &cobra.Command{
		Use:   "block [word...]",
		Short: "Hash a word stream the way the core's block mode does",
		Long: `
Feeds each 32-bit word least significant byte first, in order, and hashes
the result with SHA3-512. No HMAC is applied.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := sha3hw.ParseWords(args)
			if err != nil {
				return err
			}
			exp, err := parseExpected(expected)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"mode": "block", "words": len(words)}).Debug("computing")

			w := cmd.OutOrStdout()
			printHeader(w, "Block Mode")
			printWords(w, words)
			return report(w, "SHA3-512", sha3hw.HashBlock(words), exp)
		},
	}
	addExpectedFlag(cmd.Flags(), &expected)
	return cmd
}

func newSumCommand() *cobra.Command {
	var expected string
	cmd := &cobra.Command{
		Use:   "sum <hex_bytes>",
		Short: "Plain SHA3-512 of raw bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sha3hw.ParseBytes(args[0])
			if err != nil {
				return err
			}
			exp, err := parseExpected(expected)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "SHA3-512")
			_, _ = fmt.Fprintf(w, "\nInput (%d bytes):\n  %x\n", len(data), data)
			return report(w, "SHA3-512", sha3hw.HashBytes(data), exp)
		},
	}
	addExpectedFlag(cmd.Flags(), &expected)
	return cmd
}

// parseExpected parses the --expected flag; nil means nothing to check.
func parseExpected(s string) (*sha3hw.Digest, error) {
	if s == "" {
		return nil, nil
	}
	d, err := sha3hw.ParseDigest(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
