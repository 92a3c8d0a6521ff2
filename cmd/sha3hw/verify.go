package main

import (
	"fmt"

	"github.com/Giulio2002/sha3hw"
	"github.com/Giulio2002/sha3hw/vectors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <vectors.yaml>",
		Short: "Check a file of test vectors against the software reference",
		Long: `
Reads a YAML vector file and checks every case. Each case has a mode
(hmac, puf, block or bytes), its inputs and optionally the expected
digest copied from a simulation transcript:

    cases:
      - name: hmac-testbench
        mode: hmac
        key: 0123456789abcdef...
        words: [deadbeef, cafebabe]
        expected: 512'hc2a3eb32...

Run "sha3hw vectors --yaml" for a starting file. The command exits with
status 3 if any case does not match.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := vectors.LoadFile(args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"file": args[0], "cases": len(cases)}).Info("loaded vectors")

			outcomes := make([]vectors.Outcome, len(cases))
			for i, c := range cases {
				if outcomes[i], err = c.Check(); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			var passed, failed, unchecked int
			for _, o := range outcomes {
				c := o.Case
				switch {
				case !o.Checked:
					unchecked++
					_, _ = fmt.Fprintf(w, "[----] %s: %s\n", c.Name, o.Digest)
				case o.Result.Match:
					passed++
					_, _ = fmt.Fprintf(w, "[PASS] %s\n", c.Name)
				default:
					failed++
					logrus.WithFields(logrus.Fields{"case": c.Name, "bytes": len(o.Result.Diffs)}).Warn("mismatch")
					_, _ = fmt.Fprintf(w, "[FAIL] %s\n  computed %s\n", c.Name, o.Digest)
					for _, d := range o.Result.Diffs {
						_, _ = fmt.Fprintf(w, "  Byte %2d: Expected 0x%02x, Got 0x%02x\n", d.Index, d.Expected, d.Got)
					}
				}
			}
			_, _ = fmt.Fprintln(w, summary(passed, failed, unchecked))
			if failed > 0 {
				return errors.Wrapf(sha3hw.ErrMismatch, "%d of %d cases", failed, len(cases))
			}
			return nil
		},
	}
}

func newVectorsCommand() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Print digests for the built-in testbench stimulus",
		Long: `
Computes the digests for the stimulus the RTL testbenches drive. With
--yaml the cases are written as a vector file with the software digests
filled in as expected values, ready to be edited with hardware results and
passed to "sha3hw verify".
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := vectors.Testbench()
			w := cmd.OutOrStdout()
			for i := range cases {
				d, err := cases[i].Compute()
				if err != nil {
					return err
				}
				if asYAML {
					cases[i].Expected = d.Hex()
					continue
				}
				_, _ = fmt.Fprintf(w, "[%s] %s\n  %s\n  First 64 bits: %s\n", cases[i].Mode, cases[i].Name, d, d.Preview(64))
			}
			if asYAML {
				return vectors.Dump(w, cases)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write a vector file instead of a listing")
	return cmd
}
