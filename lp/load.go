package lp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a single YAML problem document from r and validates it.
// Unknown fields are rejected.
//
// Example document:
//
//	name: wyndor
//	sense: max
//	objective: [3, 5]
//	constraints:
//	  - {coeffs: [1, 0], rel: "<=", rhs: 4}
//	  - {coeffs: [0, 2], rel: "<=", rhs: 12}
//	  - {coeffs: [3, 2], rel: "<=", rhs: 18}
//	integer: [0, 1]
func Load(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads and decodes the problem stored at path.
func LoadFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem file: %w", err)
	}
	p, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Marshal renders p as YAML in the format Load accepts.
func Marshal(p *Problem) ([]byte, error) {
	return yaml.Marshal(p)
}
