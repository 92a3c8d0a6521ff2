package main

import (
	"os"

	"github.com/Giulio2002/sha3hw"
	"github.com/Giulio2002/sha3hw/vectors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitCodeSuccess = iota
	exitCodeUsageError
	exitCodeInputError
	exitCodeMismatch
)

var errConflictingMessage = errors.New("give message words or --message-hex, not both")

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "sha3hw",
		Short: "Reference SHA3-512 and HMAC digests for the hardware core",
		Long: `
Computes the digests the Keccak core and the HMAC controller should
produce, so that simulation transcripts can be checked without rerunning
the simulator.

Message words are 32-bit hex tokens and are fed to the core least
significant byte first. Keys, inputs and digests are big-endian hex; 0x
prefixes, Verilog literal prefixes such as 512'h and _ separators are
accepted.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level: debug, info, warning or error")

	root.AddCommand(
		newHMACCommand(),
		newPUFCommand(),
		newBlockCommand(),
		newSumCommand(),
		newVerifyCommand(),
		newVectorsCommand(),
	)
	return root
}

func addExpectedFlag(flags *pflag.FlagSet, p *string) {
	flags.StringVarP(p, "expected", "e", "", "Expected 512-bit digest from hardware, checked byte for byte")
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeSuccess
	case errors.Is(err, sha3hw.ErrMismatch):
		return exitCodeMismatch
	case errors.Is(err, sha3hw.ErrInvalidKey),
		errors.Is(err, sha3hw.ErrRange),
		errors.Is(err, sha3hw.ErrFormat),
		errors.Is(err, errConflictingMessage),
		errors.Is(err, vectors.ErrUnknownMode),
		errors.Is(err, vectors.ErrAmbiguousMessage),
		errors.Is(err, vectors.ErrNoCases),
		errors.Is(err, vectors.ErrDecode),
		errors.Is(err, os.ErrNotExist):
		return exitCodeInputError
	default:
		return exitCodeUsageError
	}
}
