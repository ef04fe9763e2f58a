package tilegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"
)

// ErrInvalidVocab is wrapped by every validation failure.
var ErrInvalidVocab = errors.New("tilegen: invalid vocabulary")

// Vocab is a decoded vocabulary file.
type Vocab struct {
	Package  string    `yaml:"package"`
	Type     string    `yaml:"type"`
	Variants []Variant `yaml:"variants"`
	Digit    string    `yaml:"digit,omitempty"`

	// Source names the file the vocabulary came from.
	Source string `yaml:"-"`
}

// Variant is one plain (non-digit) variant.
type Variant struct {
	Name string `yaml:"name"`
	Char string `yaml:"char"`
}

// Rune returns the variant's single character. Valid after Validate.
func (v Variant) Rune() rune {
	r, _ := utf8.DecodeRuneInString(v.Char)
	return r
}

// Load reads and validates the vocabulary file at path.
func Load(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilegen: %w", err)
	}
	defer f.Close()

	return Decode(f, filepath.Base(path))
}

// Decode reads one YAML vocabulary from r and validates it. Unknown keys are
// rejected.
func Decode(r io.Reader, source string) (*Vocab, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var v Vocab
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("tilegen: decode %s: %w", source, err)
	}
	v.Source = source
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks identifiers, characters and uniqueness.
func (v *Vocab) Validate() error {
	if !token.IsIdentifier(v.Package) {
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidVocab, v.Package)
	}
	if !exported(v.Type) {
		return fmt.Errorf("%w: type %q must be an exported identifier", ErrInvalidVocab, v.Type)
	}
	if len(v.Variants) == 0 && v.Digit == "" {
		return fmt.Errorf("%w: no variants", ErrInvalidVocab)
	}
	if _, err := v.Count(); err != nil {
		return err
	}

	names := map[string]bool{
		"ParseGrid":  true,
		"FormatGrid": true,
		"Vocabulary": true,
	}
	if names[v.Type] {
		return fmt.Errorf("%w: type name %s is taken", ErrInvalidVocab, v.Type)
	}
	names[v.Type] = true
	names[v.Type+"Kind"] = true
	names["Parse"+v.Type] = true
	chars := make(map[rune]string, len(v.Variants))
	for i, vr := range v.Variants {
		if !exported(vr.Name) {
			return fmt.Errorf("%w: variant %d: name %q must be an exported identifier", ErrInvalidVocab, i, vr.Name)
		}
		if names[vr.Name] {
			return fmt.Errorf("%w: variant name %s is taken", ErrInvalidVocab, vr.Name)
		}
		names[vr.Name] = true

		if utf8.RuneCountInString(vr.Char) != 1 {
			return fmt.Errorf("%w: variant %s: char %q must be exactly one character", ErrInvalidVocab, vr.Name, vr.Char)
		}
		r := vr.Rune()
		if prev, dup := chars[r]; dup {
			return fmt.Errorf("%w: %s and %s share %q", ErrInvalidVocab, prev, vr.Name, r)
		}
		chars[r] = vr.Name
		if v.Digit != "" && r >= '0' && r <= '9' {
			return fmt.Errorf("%w: %s uses %q, which %s claims", ErrInvalidVocab, vr.Name, r, v.Digit)
		}
	}
	if v.Digit != "" {
		if !exported(v.Digit) {
			return fmt.Errorf("%w: digit %q must be an exported identifier", ErrInvalidVocab, v.Digit)
		}
		if names[v.Digit] {
			return fmt.Errorf("%w: digit name %s is taken", ErrInvalidVocab, v.Digit)
		}
		names[v.Digit] = true

		// Every variant also gets a Kind<Name> constant.
		kinds := make([]string, 0, len(v.Variants)+1)
		for _, vr := range v.Variants {
			kinds = append(kinds, vr.Name)
		}
		for _, name := range append(kinds, v.Digit) {
			k := "Kind" + name
			if names[k] {
				return fmt.Errorf("%w: %s needs the constant %s, which is taken", ErrInvalidVocab, name, k)
			}
			names[k] = true
		}
	}
	return nil
}

// Count is the number of variants, the digit variant included. Generated
// kinds are uint8, so at most 255 fit.
func (v *Vocab) Count() (uint8, error) {
	n := len(v.Variants)
	if v.Digit != "" {
		n++
	}
	c, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %d variants do not fit in uint8", ErrInvalidVocab, n)
	}
	return c, nil
}

func exported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
