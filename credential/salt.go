package credential

import (
	"crypto/rand"
	"fmt"
	"io"
	mathrand "math/rand"
	"sync"
	"time"
)

// SaltProvider supplies per-credential salts from some entropy source.
//
// The contract: Salt returns exactly n printable symbols, free of the ":"
// delimiter, and never returns the same value across calls. Providers must
// be safe for concurrent use; [Hasher] performs no locking around them.
type SaltProvider interface {
	Salt(n uint) (string, error)
}

// saltAlphabet has 64 symbols, so reducing a random byte modulo its length
// introduces no bias. The set is printable and excludes the ":" delimiter.
const saltAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// RandomSalt is the default [SaltProvider], backed by the operating system
// CSPRNG (crypto/rand). The zero value is ready to use.
type RandomSalt struct{}

// Salt returns n uniformly random symbols from [saltAlphabet].
func (RandomSalt) Salt(n uint) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("credential: salt generation: %w", err)
	}
	for i, v := range b {
		b[i] = saltAlphabet[int(v)%len(saltAlphabet)]
	}
	return string(b), nil
}

// ClockSalt reproduces the legacy salt strategy: each symbol is chosen by
// XOR-mixing the wall clock with a non-cryptographic random source.
//
// This is NOT a cryptographically strong entropy source — the clock is
// observable and math/rand is predictable from its seed. It exists only for
// faithful compatibility with systems that used it. New code must use
// [RandomSalt].
type ClockSalt struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewClockSalt creates a ClockSalt seeded from the current time.
func NewClockSalt() *ClockSalt {
	return &ClockSalt{rng: mathrand.New(mathrand.NewSource(time.Now().UnixNano()))}
}

// Salt returns n symbols mixed from the clock and the seeded generator.
func (c *ClockSalt) Salt(n uint) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		mix := uint64(time.Now().UnixNano()) ^ c.rng.Uint64()
		out[i] = saltAlphabet[mix%uint64(len(saltAlphabet))]
	}
	return string(out), nil
}
