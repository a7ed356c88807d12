package credential

import "unicode/utf8"

// Metadata is the auxiliary parameter block stored alongside a credential.
// Field names match the on-disk JSON exactly.
type Metadata struct {
	// Algorithm is the digest routine that produced the credential.
	Algorithm Algorithm `json:"algorithm"`

	// Iterations is the repeated-digest count or KDF cost. Always ≥ 1.
	Iterations uint `json:"iterations"`

	// KeyLength is the recorded target output length in bytes.
	KeyLength uint `json:"keyLength,omitempty"`

	// CreatedAt is the hash-time timestamp in epoch milliseconds. Zero means
	// the credential predates timestamping; [Hasher.NeedsRehash] treats that
	// as stale.
	CreatedAt int64 `json:"createdAt,omitempty"`

	// Memory and Threads carry the argon2id cost parameters. Zero for other
	// algorithms.
	Memory  uint32 `json:"memory,omitempty"`
	Threads uint8  `json:"threads,omitempty"`
}

// Record is one hashed credential: salt, digest, and parameter metadata.
//
// A Record is produced by [Hasher.Hash], is immutable once produced, and is
// superseded (never mutated) when [Hasher.Upgrade] issues a replacement.
// The package holds no state between calls; the caller owns persistence of
// the encoded text form.
type Record struct {
	// Salt is the per-credential salt, 8–128 printable symbols.
	Salt string

	// Digest is the hex-encoded digest or derived key.
	Digest string

	// Metadata holds the parameters the digest was produced with.
	Metadata Metadata

	// Legacy marks a two-field credential that carried no metadata block.
	// [Encode] renders a Legacy record without metadata; decoding fills
	// Metadata with the implied defaults (digest256, one iteration).
	Legacy bool
}

// legacyMetadata is what a metadata-less credential implies.
func legacyMetadata() Metadata {
	return Metadata{Algorithm: AlgorithmDigest256, Iterations: 1}
}

func validateSalt(salt string) error {
	n := uint(utf8.RuneCountInString(salt))
	if n < MinSaltLength || n > MaxSaltLength {
		return &ValidationError{Field: "salt", Constraint: "length must be between 8 and 128 symbols"}
	}
	return nil
}

func validateDigestHex(s string) error {
	if s == "" {
		return &ValidationError{Field: "digest", Constraint: "must not be empty"}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return &ValidationError{Field: "digest", Constraint: "must be hexadecimal"}
		}
	}
	return nil
}
