package credential

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/hasbyte1/go-password-utils/digest"
)

// Algorithm identifies a digest routine recorded in credential metadata.
// The set is closed: [Decode] accepts any identifier, but derivation fails
// with [ErrUnknownAlgorithm] for anything outside the constants below.
type Algorithm string

const (
	// AlgorithmDigest256 is the iterated 256-bit digest: digest(password ‖
	// pepper ‖ salt), then the digest re-applied to its own hex output
	// iterations−1 more times.
	//
	// This construction is sequential but not memory-hard; it is kept for
	// compatibility with existing credentials. New deployments should prefer
	// [AlgorithmArgon2id] or [AlgorithmPBKDF2SHA256].
	AlgorithmDigest256 Algorithm = "digest256"

	// AlgorithmPBKDF2SHA256 derives the stored key with PBKDF2 over the
	// 256-bit digest engine (RFC 8018).
	AlgorithmPBKDF2SHA256 Algorithm = "pbkdf2-sha256"

	// AlgorithmArgon2id derives the stored key with Argon2id (RFC 9106),
	// the memory-hard KDF recommended for new systems. Iterations maps to
	// the Argon2 time cost; memory and threads ride along in metadata.
	AlgorithmArgon2id Algorithm = "argon2id"
)

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmDigest256, AlgorithmPBKDF2SHA256, AlgorithmArgon2id:
		return true
	}
	return false
}

// deriveParams carries the per-credential cost parameters for [deriveHex].
// At hash time they come from [Options]; at verify time from the stored
// [Metadata], so old credentials verify under the policy they were made with.
type deriveParams struct {
	iterations uint
	keyLength  uint   // output key bytes (KDF algorithms only)
	memory     uint32 // argon2id memory cost in KiB
	threads    uint8  // argon2id parallelism
}

// deriveHex computes the lowercase hex digest for one credential.
//
// The pepper, when present, is appended to the password before the salt is
// applied, so a credential hashed with a pepper verifies when the caller
// supplies password+pepper as the password.
//
// At verify time the parameters in p come from stored metadata, which an
// attacker able to plant credentials controls. Every branch therefore
// bounds its cost inputs before spending memory or CPU on them; a crafted
// credential fails derivation (and so verifies false) instead of driving
// the process into an unbounded loop or allocation.
func deriveHex(alg Algorithm, password, pepper, salt string, p deriveParams) (string, error) {
	if p.iterations < 1 || p.iterations > MaxIterations {
		return "", &ValidationError{Field: "iterations",
			Constraint: fmt.Sprintf("must be in [1, %d]", MaxIterations)}
	}

	secret := password + pepper

	switch alg {
	case AlgorithmDigest256:
		sum := digest.SumHex([]byte(secret + salt))
		for i := uint(1); i < p.iterations; i++ {
			sum = digest.SumHex([]byte(sum))
		}
		return sum, nil

	case AlgorithmPBKDF2SHA256:
		if p.keyLength < MinKeyLength || p.keyLength > MaxKeyLength {
			return "", &ValidationError{Field: "keyLength",
				Constraint: fmt.Sprintf("must be in [%d, %d]", MinKeyLength, MaxKeyLength)}
		}
		key := pbkdf2.Key([]byte(secret), []byte(salt), int(p.iterations), int(p.keyLength), digest.New)
		return hex.EncodeToString(key), nil

	case AlgorithmArgon2id:
		if p.keyLength < MinKeyLength || p.keyLength > MaxKeyLength {
			return "", &ValidationError{Field: "keyLength",
				Constraint: fmt.Sprintf("must be in [%d, %d]", MinKeyLength, MaxKeyLength)}
		}
		if p.threads < 1 || p.memory < 8*uint32(p.threads) {
			return "", &ValidationError{Field: "memory",
				Constraint: "argon2id requires threads ≥ 1 and memory ≥ 8×threads KiB"}
		}
		if p.memory > MaxArgon2Memory {
			return "", &ValidationError{Field: "memory",
				Constraint: fmt.Sprintf("must be ≤ %d KiB", MaxArgon2Memory)}
		}
		key := argon2.IDKey([]byte(secret), []byte(salt),
			uint32(p.iterations), p.memory, p.threads, uint32(p.keyLength))
		return hex.EncodeToString(key), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
