package records

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a book from TOML:
//
//	[[person]]
//	id = 1
//	role = "Staff"
//	name = "Eleni"
//
//	[[ticket]]
//	id = 1
//	person = 1
//	state = "Active"
func Load(r io.Reader) (*Book, error) {
	var b Book
	if _, err := toml.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("records: decode: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadFile reads a book from a TOML file.
func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
