/*
PURPOSE:
  Generates a large file of random printable text in bounded-size chunks,
  so peak memory stays at one chunk regardless of the target size.

REQUIREMENTS:
  User-specified:
  - Alphabet: upper/lower-case letters, digits, space, newline.
  - Emit min(chunk, remaining) characters per step until the target is reached.
  - Create or overwrite the output file.

  Implementation-discovered:
  - The default alphabet has 64 symbols, so one Uint64 yields ten
    characters without modulo bias.
  - A caller-supplied rand.Source makes output reproducible (tests, --seed).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Generate

ERROR HANDLING:
  - ErrInvalidSize for non-positive sizes.
  - Write/sync/close failures are wrapped and returned; no retry.

USAGE:
  g := textgen.New()
  n, err := g.WriteFile("large_random_text.txt", 100<<20, 10<<10)
*/

package textgen

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Alphabet is the default character set: ASCII letters, digits, space and newline.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \n"

// ErrInvalidSize is returned when the total or chunk size is not positive.
var ErrInvalidSize = errors.New("size must be positive")

// Generator writes random text drawn from a fixed alphabet.
type Generator struct {
	rng      *rand.Rand
	alphabet string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource uses src instead of a randomly seeded source.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithSeed is shorthand for a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithAlphabet replaces the default alphabet. Empty alphabets are ignored.
func WithAlphabet(alphabet string) Option {
	return func(g *Generator) {
		if alphabet != "" {
			g.alphabet = alphabet
		}
	}
}

// New returns a Generator. Without options the output is not reproducible.
func New(opts ...Option) *Generator {
	g := &Generator{alphabet: Alphabet}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Write emits total random characters to w, chunk bytes at a time.
// It returns the number of bytes written.
func (g *Generator) Write(w io.Writer, total, chunk int64) (int64, error) {
	if total <= 0 || chunk <= 0 {
		return 0, fmt.Errorf("%w: total=%d chunk=%d", ErrInvalidSize, total, chunk)
	}

	buf := make([]byte, min(chunk, total))
	var written int64
	for remaining := total; remaining > 0; {
		part := buf[:min(int64(len(buf)), remaining)]
		g.fill(part)

		n, err := w.Write(part)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("failed to write chunk at offset %d: %w", written, err)
		}
		if n != len(part) {
			return written, fmt.Errorf("failed to write chunk at offset %d: %w", written, io.ErrShortWrite)
		}
		remaining -= int64(n)
	}
	return written, nil
}

// WriteFile creates (or truncates) path and fills it with total random characters.
func (g *Generator) WriteFile(path string, total, chunk int64) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := g.Write(f, total, chunk)
	if err != nil {
		f.Close()
		return n, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return n, fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return n, nil
}

func (g *Generator) fill(p []byte) {
	if len(g.alphabet) != 64 {
		for i := range p {
			p[i] = g.alphabet[g.rng.IntN(len(g.alphabet))]
		}
		return
	}

	// 64 symbols: six bits per character, ten characters per Uint64.
	for i := 0; i < len(p); {
		v := g.rng.Uint64()
		for j := 0; j < 10 && i < len(p); j++ {
			p[i] = g.alphabet[v&63]
			v >>= 6
			i++
		}
	}
}
