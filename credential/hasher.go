package credential

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCredentialAge is how long a credential stays current before
// [Hasher.NeedsRehash] reports it stale regardless of parameters.
const MaxCredentialAge = 365 * 24 * time.Hour

// Hasher produces and verifies encoded credentials under one policy.
//
// A Hasher is immutable after construction and safe for concurrent use,
// provided its [SaltProvider] is. It holds no state between calls: every
// operation is a pure function of its inputs, the salt provider, and the
// clock.
type Hasher struct {
	opts  Options
	salts SaltProvider
}

// NewHasher constructs a Hasher backed by the [RandomSalt] provider.
// Zero-valued fields of opts are filled with their documented defaults;
// out-of-range values fail with [ErrInvalidOption] or [ErrUnknownAlgorithm].
func NewHasher(opts Options) (*Hasher, error) {
	return NewHasherWithProvider(opts, RandomSalt{})
}

// NewHasherWithProvider constructs a Hasher with an injected salt provider,
// for callers that need a specific entropy source (or a deterministic one in
// tests).
func NewHasherWithProvider(opts Options, salts SaltProvider) (*Hasher, error) {
	if salts == nil {
		return nil, ErrNilSaltProvider
	}
	opts = withDefaults(opts)
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return &Hasher{opts: opts, salts: salts}, nil
}

// Options returns the policy the Hasher was constructed with.
func (h *Hasher) Options() Options { return h.opts }

// Hash validates password, obtains a fresh salt, derives the digest under
// the configured algorithm, and returns the encoded credential text.
//
// Side effects are limited to one salt-provider call and one clock read.
func (h *Hasher) Hash(password string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}

	salt, err := h.salts.Salt(h.opts.SaltLength)
	if err != nil {
		return "", err
	}
	if err := validateSalt(salt); err != nil {
		return "", fmt.Errorf("credential: salt provider broke its contract: %w", err)
	}

	sum, err := deriveHex(h.opts.Algorithm, password, h.opts.Pepper, salt, deriveParams{
		iterations: h.opts.Iterations,
		keyLength:  h.opts.KeyLength,
		memory:     h.opts.Memory,
		threads:    h.opts.Threads,
	})
	if err != nil {
		return "", err
	}

	return Encode(Record{
		Salt:   salt,
		Digest: sum,
		Metadata: Metadata{
			Algorithm:  h.opts.Algorithm,
			Iterations: h.opts.Iterations,
			KeyLength:  h.opts.KeyLength,
			CreatedAt:  time.Now().UnixMilli(),
			Memory:     h.opts.Memory,
			Threads:    h.opts.Threads,
		},
	})
}

// Verify reports whether password matches the encoded credential.
//
// Verify never fails: malformed credentials, unknown algorithms, and
// validation problems all report false. An authentication boundary must not
// leak distinguishable error types to its caller.
//
// The digest is recomputed with the parameters stored in the credential, not
// the Hasher's current policy, so credentials produced under an older policy
// keep verifying. The pepper is never re-applied; to verify a peppered
// credential, pass password+pepper as the password.
func (h *Hasher) Verify(password, encoded string) bool {
	ok, _ := h.verify(password, encoded)
	return ok
}

// VerificationResult is the outcome of [Hasher.VerifyDetailed].
type VerificationResult struct {
	// IsValid reports whether the password matched.
	IsValid bool

	// Algorithm is the algorithm recorded in the credential, when it could
	// be decoded.
	Algorithm Algorithm

	// Elapsed is the wall-clock duration of the verification.
	Elapsed time.Duration

	// Metadata is the decoded parameter block, when available.
	Metadata Metadata

	// Note carries the internal failure, if any, in place of an error value.
	// Empty on success and on a plain mismatch.
	Note string
}

// VerifyDetailed is [Hasher.Verify] with observability: it reports the
// recorded algorithm, the decoded metadata, and the elapsed wall-clock time.
// Like Verify it never fails; internal errors are captured in Note.
func (h *Hasher) VerifyDetailed(password, encoded string) VerificationResult {
	start := time.Now()
	res := VerificationResult{}

	rec, err := Decode(encoded)
	if err != nil {
		res.Note = err.Error()
		res.Elapsed = time.Since(start)
		return res
	}
	res.Algorithm = rec.Metadata.Algorithm
	res.Metadata = rec.Metadata

	ok, err := verifyRecord(password, rec)
	if err != nil {
		res.Note = err.Error()
	}
	res.IsValid = ok
	res.Elapsed = time.Since(start)
	return res
}

// VerifyPadded runs [Hasher.Verify] and then sleeps until at least minDur
// has elapsed since the call began. The padding is best-effort latency
// smoothing for callers that want uniform response times; the timing-safety
// guarantee itself comes from [ConstantTimeEqual], not from this helper.
func (h *Hasher) VerifyPadded(password, encoded string, minDur time.Duration) bool {
	start := time.Now()
	ok := h.Verify(password, encoded)
	if rest := minDur - time.Since(start); rest > 0 {
		time.Sleep(rest)
	}
	return ok
}

// NeedsRehash reports whether the credential should be re-hashed under the
// Hasher's current policy. It is true when:
//   - the credential cannot be decoded at all (fail safe),
//   - the metadata block or its timestamp is missing,
//   - the stored algorithm differs from the current policy,
//   - the stored iteration count is below the current policy,
//   - the credential is older than [MaxCredentialAge].
//
// NeedsRehash does not verify the password; pair it with [Hasher.Upgrade] on
// a successful login.
func (h *Hasher) NeedsRehash(encoded string) bool {
	rec, err := Decode(encoded)
	if err != nil {
		return true
	}
	m := rec.Metadata
	switch {
	case rec.Legacy, m.CreatedAt == 0:
		return true
	case m.Algorithm != h.opts.Algorithm:
		return true
	case m.Iterations < h.opts.Iterations:
		return true
	case time.Since(time.UnixMilli(m.CreatedAt)) > MaxCredentialAge:
		return true
	}
	return false
}

// Upgrade re-hashes password under the current policy, but only after the
// password verifies against the existing credential — an unauthenticated
// caller must not be able to replace a credential with a hash of a guess.
// On mismatch it returns [ErrPasswordMismatch] and no new credential.
//
// The caller persists the replacement; the old credential is superseded, not
// mutated.
func (h *Hasher) Upgrade(password, encoded string) (string, error) {
	if !h.Verify(password, encoded) {
		return "", ErrPasswordMismatch
	}
	return h.Hash(password)
}

// verify is the fallible core shared by Verify and VerifyDetailed.
func (h *Hasher) verify(password, encoded string) (bool, error) {
	rec, err := Decode(encoded)
	if err != nil {
		return false, err
	}
	return verifyRecord(password, rec)
}

// verifyRecord recomputes the digest with the record's stored parameters and
// compares in constant time.
func verifyRecord(password string, rec Record) (bool, error) {
	m := rec.Metadata
	sum, err := deriveHex(m.Algorithm, password, "", rec.Salt, deriveParams{
		iterations: m.Iterations,
		keyLength:  m.KeyLength,
		memory:     m.Memory,
		threads:    m.Threads,
	})
	if err != nil {
		return false, err
	}
	// Stored digests may use uppercase hex; recomputation is lowercase.
	return ConstantTimeEqualString(sum, strings.ToLower(rec.Digest)), nil
}

func validatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Constraint: "must not be empty"}
	}
	if !utf8.ValidString(password) {
		return ErrInvalidEncoding
	}
	if utf8.RuneCountInString(password) > MaxPasswordLength {
		return &ValidationError{Field: "password",
			Constraint: fmt.Sprintf("must not exceed %d symbols", MaxPasswordLength)}
	}
	if strings.ContainsRune(password, 0) {
		return &ValidationError{Field: "password", Constraint: "must not contain NUL"}
	}
	return nil
}
