package guid

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Source mints the 16 raw bytes of a fresh GUID. Implementations that keep
// shared state must synchronize it themselves.
type Source interface {
	Generate() ([16]byte, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() ([16]byte, error)

// Generate calls f()
func (f SourceFunc) Generate() ([16]byte, error) {
	return f()
}

// RandomSource returns a Source backed by the random (version 4) generator
// of github.com/google/uuid, which reads from crypto/rand.
func RandomSource() Source {
	return SourceFunc(func() ([16]byte, error) {
		u, err := uuid.NewRandom()
		if err != nil {
			return [16]byte{}, err
		}
		return u, nil
	})
}

// ReaderSource returns a Source that reads 16 raw bytes from r per call.
// This is primarily useful for testing with deterministic random sources.
func ReaderSource(r io.Reader) Source {
	return SourceFunc(func() ([16]byte, error) {
		var b [16]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return b, err
		}
		return b, nil
	})
}

// Generator creates GUIDs from a Source. It holds no mutable state of its
// own and is safe for concurrent use whenever its Source is.
type Generator struct {
	src Source
}

// NewGenerator creates a generator backed by RandomSource
func NewGenerator() *Generator {
	return &Generator{src: RandomSource()}
}

// NewGeneratorWithSource creates a generator backed by src
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// NewGeneratorWithReader creates a generator that reads raw bytes from r.
// Concurrent callers must supply a reader that is itself safe for concurrent use.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{src: ReaderSource(r)}
}

// New returns a GUID wrapping the next 16 bytes of the source. The result
// is not checked against Nil.
func (g *Generator) New() (GUID, error) {
	b, err := g.src.Generate()
	if err != nil {
		return Nil, fmt.Errorf("guid: generate: %w", err)
	}
	return GUID(b), nil
}

// NewString is New followed by String.
func (g *Generator) NewString() (string, error) {
	id, err := g.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Must is a helper that wraps a call to a function returning (GUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(generator.New())
func Must(g GUID, err error) GUID {
	if err != nil {
		panic(err)
	}
	return g
}

// defaultGenerator is the package-level generator used by New and NewString
var defaultGenerator = NewGenerator()

// New generates a new random GUID using the default generator.
func New() (GUID, error) {
	return defaultGenerator.New()
}

// NewString generates a new random GUID and returns its canonical form.
func NewString() (string, error) {
	return defaultGenerator.NewString()
}
