// Package vectors runs SHA3-512 and HMAC test vectors, typically pasted
// from hardware simulation transcripts, against the software reference.
//
// A vector file is YAML:
//
//	cases:
//	  - name: hmac-testbench
//	    mode: hmac
//	    key: 0123456789abcdef...
//	    words: [deadbeef, cafebabe]
//	    expected: 512'hc2a3eb32...
//	  - name: puf-aa
//	    mode: puf
//	    input: aaaa...aa
//
// A case without expected is only computed.
package vectors

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Giulio2002/sha3hw"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Mode selects how a case's input is framed before hashing.
type Mode string

// Supported modes.
const (
	// ModeHMAC is the keyed construction over words or message bytes.
	ModeHMAC Mode = "hmac"
	// ModePUF hashes a 704-bit integer serialized whole, little-endian.
	ModePUF Mode = "puf"
	// ModeBlock hashes a word stream, each word little-endian.
	ModeBlock Mode = "block"
	// ModeBytes is plain SHA3-512 over message bytes.
	ModeBytes Mode = "bytes"
)

var (
	// ErrUnknownMode is returned for a case whose mode is not supported.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrAmbiguousMessage is returned for an HMAC case giving both words and
	// message bytes.
	ErrAmbiguousMessage = errors.New("both words and message given")
	// ErrNoCases is returned for a vector file without cases.
	ErrNoCases = errors.New("no cases")
	// ErrDecode is returned for a vector file that is not valid YAML.
	ErrDecode = errors.New("malformed vector file")
)

// Case is a single test vector. All values are hex text.
type Case struct {
	Name     string   `yaml:"name"`
	Mode     Mode     `yaml:"mode"`
	Key      string   `yaml:"key,omitempty"`
	Words    []string `yaml:"words,omitempty,flow"`
	Message  string   `yaml:"message,omitempty"`
	Input    string   `yaml:"input,omitempty"`
	Expected string   `yaml:"expected,omitempty"`
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Outcome is the result of running one case.
type Outcome struct {
	Case   Case
	Digest sha3hw.Digest
	// Checked is set when the case carried an expected digest.
	Checked bool
	Result  sha3hw.Result
}

// Passed reports whether the case was checked and matched, or had nothing
// to check against.
func (o Outcome) Passed() bool {
	return !o.Checked || o.Result.Match
}

// Load decodes a vector file. Modes are validated eagerly; unnamed cases are
// named after their position.
func Load(r io.Reader) ([]Case, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	if len(f.Cases) == 0 {
		return nil, ErrNoCases
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = "case " + strconv.Itoa(i+1)
		}
		c.Mode = Mode(strings.ToLower(string(c.Mode)))
		if !c.Mode.valid() {
			return nil, errors.Wrapf(ErrUnknownMode, "case %q: %q", c.Name, c.Mode)
		}
	}
	return f.Cases, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) ([]Case, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	cases, err := Load(fh)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return cases, nil
}

// Dump encodes cases as a vector file.
func Dump(w io.Writer, cases []Case) error {
	out, err := yaml.Marshal(file{Cases: cases})
	if err != nil {
		return errors.Wrap(err, "encoding vectors")
	}
	_, err = w.Write(out)
	return err
}

// Compute hashes the case input according to its mode. Every field is
// parsed before anything is hashed.
func (c Case) Compute() (sha3hw.Digest, error) {
	var (
		d   sha3hw.Digest
		err error
	)
	switch c.Mode {
	case ModeHMAC:
		d, err = c.computeHMAC()
	case ModePUF:
		d, err = c.computePUF()
	case ModeBlock:
		d, err = c.computeBlock()
	case ModeBytes:
		d, err = c.computeBytes()
	default:
		err = errors.Wrapf(ErrUnknownMode, "%q", c.Mode)
	}
	if err != nil {
		return sha3hw.Digest{}, errors.WithMessagef(err, "case %q", c.Name)
	}
	return d, nil
}

func (c Case) computePUF() (sha3hw.Digest, error) {
	v, err := sha3hw.ParseHex(c.Input, sha3hw.PUFInputBits)
	if err != nil {
		return sha3hw.Digest{}, errors.WithMessage(err, "input")
	}
	return sha3hw.HashPUF(v)
}

func (c Case) computeBlock() (sha3hw.Digest, error) {
	words, err := sha3hw.ParseWords(c.Words)
	if err != nil {
		return sha3hw.Digest{}, err
	}
	return sha3hw.HashBlock(words), nil
}

func (c Case) computeBytes() (sha3hw.Digest, error) {
	msg, err := sha3hw.ParseBytes(c.Message)
	if err != nil {
		return sha3hw.Digest{}, errors.WithMessage(err, "message")
	}
	return sha3hw.HashBytes(msg), nil
}

func (c Case) computeHMAC() (sha3hw.Digest, error) {
	key, err := sha3hw.ParseKey(c.Key)
	if err != nil {
		return sha3hw.Digest{}, err
	}
	if c.Message != "" {
		if len(c.Words) > 0 {
			return sha3hw.Digest{}, ErrAmbiguousMessage
		}
		msg, err := sha3hw.ParseBytes(c.Message)
		if err != nil {
			return sha3hw.Digest{}, errors.WithMessage(err, "message")
		}
		return key.Sum(msg), nil
	}
	words, err := sha3hw.ParseWords(c.Words)
	if err != nil {
		return sha3hw.Digest{}, err
	}
	return key.SumWords(words), nil
}

// Check computes the case and compares it with the expected digest, if any.
func (c Case) Check() (Outcome, error) {
	o := Outcome{Case: c}
	var expected sha3hw.Digest
	if c.Expected != "" {
		var err error
		if expected, err = sha3hw.ParseDigest(c.Expected); err != nil {
			return o, errors.WithMessagef(err, "case %q: expected", c.Name)
		}
	}
	d, err := c.Compute()
	if err != nil {
		return o, err
	}
	o.Digest = d
	if c.Expected != "" {
		o.Checked = true
		o.Result = sha3hw.Compare(d, expected)
	}
	return o, nil
}

func (m Mode) valid() bool {
	switch m {
	case ModeHMAC, ModePUF, ModeBlock, ModeBytes:
		return true
	}
	return false
}
