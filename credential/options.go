package credential

import "fmt"

// Policy bounds and defaults. Salt and key bounds apply to every algorithm.
// The iteration default is the legacy-compatible single pass; hardened
// profiles raise it (see [ProfileOptions]).
const (
	// DefaultSaltLength is the salt length requested from the provider.
	DefaultSaltLength uint = 32

	// DefaultIterations is the legacy-compatible single digest pass.
	DefaultIterations uint = 1

	// HardenedIterations is the iteration count used by the hardened
	// digest-based profiles.
	HardenedIterations uint = 100_000

	// DefaultKeyLength is the recorded target output length.
	// For [AlgorithmDigest256] it is informational only: the digest is
	// always 32 bytes (64 hex characters). KDF algorithms honour it.
	DefaultKeyLength uint = 64

	// MinSaltLength and MaxSaltLength bound the salt field in symbols.
	MinSaltLength uint = 8
	MaxSaltLength uint = 128

	// MinKeyLength and MaxKeyLength bound the recorded key length.
	MinKeyLength uint = 8
	MaxKeyLength uint = 512

	// MaxIterations caps the cost read from stored metadata as well as the
	// configured policy. Verification re-derives with whatever the
	// credential recorded, so an unbounded count would let a crafted
	// credential drive Verify into an effectively endless loop.
	MaxIterations uint = 10_000_000

	// MaxArgon2Memory caps the argon2id memory cost at 4 GiB (in KiB).
	// Like MaxIterations it applies to stored metadata too: argon2
	// allocates its whole memory cost up front, and a crafted credential
	// must not be able to request an allocation that kills the process.
	MaxArgon2Memory uint32 = 4 * 1024 * 1024

	// MaxPasswordLength is the maximum accepted password length in symbols.
	MaxPasswordLength = 1024

	// DefaultArgon2Memory is the argon2id memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Threads is the argon2id degree of parallelism.
	DefaultArgon2Threads uint8 = 2
)

// Options configures a [Hasher].
//
// Options are read at construction time and treated as immutable afterwards.
// Changing policy means constructing a new Hasher; credentials produced under
// an older policy remain verifiable because verification always uses the
// parameters stored in the credential itself.
type Options struct {
	// Algorithm selects the digest routine. Default: [AlgorithmDigest256].
	Algorithm Algorithm

	// SaltLength is the number of symbols requested from the salt provider.
	// Bounds: [MinSaltLength, MaxSaltLength]. Default: [DefaultSaltLength].
	SaltLength uint

	// Iterations is the repeated-digest count (digest256) or KDF cost
	// (pbkdf2 rounds, argon2id time). Minimum 1. Default: [DefaultIterations].
	Iterations uint

	// KeyLength is the target output length in bytes, recorded in metadata.
	// Bounds: [MinKeyLength, MaxKeyLength]. Default: [DefaultKeyLength].
	KeyLength uint

	// Pepper is an optional application-held secret appended to the password
	// before hashing. It is never stored in the credential, so a leaked
	// credential alone is not enough for an offline attack.
	//
	// Verification does not re-apply the pepper: to verify a peppered
	// credential, pass password+pepper as the password.
	Pepper string

	// Memory is the argon2id memory cost in KiB. Ignored by other
	// algorithms. Default: [DefaultArgon2Memory].
	Memory uint32

	// Threads is the argon2id degree of parallelism. Ignored by other
	// algorithms. Default: [DefaultArgon2Threads].
	Threads uint8
}

// DefaultOptions returns the legacy-compatible baseline: a single digest256
// pass with a 32-symbol salt. Use [ProfileOptions] for hardened presets.
func DefaultOptions() Options {
	return Options{
		Algorithm:  AlgorithmDigest256,
		SaltLength: DefaultSaltLength,
		Iterations: DefaultIterations,
		KeyLength:  DefaultKeyLength,
	}
}

// withDefaults fills zero-valued fields so callers can set only what they
// care about.
func withDefaults(opts Options) Options {
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmDigest256
	}
	if opts.SaltLength == 0 {
		opts.SaltLength = DefaultSaltLength
	}
	if opts.Iterations == 0 {
		opts.Iterations = DefaultIterations
	}
	if opts.KeyLength == 0 {
		opts.KeyLength = DefaultKeyLength
	}
	if opts.Algorithm == AlgorithmArgon2id {
		if opts.Memory == 0 {
			opts.Memory = DefaultArgon2Memory
		}
		if opts.Threads == 0 {
			opts.Threads = DefaultArgon2Threads
		}
	}
	return opts
}

func validateOptions(opts Options) error {
	if !opts.Algorithm.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}
	if opts.SaltLength < MinSaltLength || opts.SaltLength > MaxSaltLength {
		return fmt.Errorf("%w: salt length %d must be in [%d, %d]",
			ErrInvalidOption, opts.SaltLength, MinSaltLength, MaxSaltLength)
	}
	if opts.Iterations < 1 || opts.Iterations > MaxIterations {
		return fmt.Errorf("%w: iterations %d must be in [1, %d]",
			ErrInvalidOption, opts.Iterations, MaxIterations)
	}
	if opts.KeyLength < MinKeyLength || opts.KeyLength > MaxKeyLength {
		return fmt.Errorf("%w: key length %d must be in [%d, %d]",
			ErrInvalidOption, opts.KeyLength, MinKeyLength, MaxKeyLength)
	}
	if opts.Algorithm == AlgorithmArgon2id {
		if opts.Threads < 1 {
			return fmt.Errorf("%w: argon2id threads must be ≥ 1", ErrInvalidOption)
		}
		if opts.Memory < 8*uint32(opts.Threads) {
			return fmt.Errorf("%w: argon2id memory (%d KiB) must be ≥ 8×threads (%d KiB)",
				ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
		}
		if opts.Memory > MaxArgon2Memory {
			return fmt.Errorf("%w: argon2id memory (%d KiB) must be ≤ %d KiB",
				ErrInvalidOption, opts.Memory, MaxArgon2Memory)
		}
	}
	return nil
}
