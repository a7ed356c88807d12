package credential

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by credential operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := credential.Decode(stored)
//	if errors.Is(err, credential.ErrMalformedCredential) {
//	    // stored text is not a credential at all
//	}
var (
	// ErrMalformedCredential is returned by [Decode] when the stored text
	// does not have the minimum salt:digest shape. [Hasher.Verify] never
	// surfaces this error; it reports false instead.
	ErrMalformedCredential = errors.New("credential: malformed credential string")

	// ErrValidation is the class error wrapped by every [ValidationError].
	// Validation failures are always recoverable: the caller must fix the
	// offending input and retry.
	ErrValidation = errors.New("credential: validation failed")

	// ErrInvalidEncoding is returned when a password is not valid UTF-8 and
	// therefore has no well-defined byte encoding to hash.
	ErrInvalidEncoding = errors.New("credential: input is not valid UTF-8")

	// ErrUnknownAlgorithm is returned when a credential names an algorithm
	// outside the supported set. Unknown algorithms fail closed; they are
	// never silently treated as the default.
	ErrUnknownAlgorithm = errors.New("credential: unknown algorithm")

	// ErrInvalidOption is returned by [NewHasher] when an option value falls
	// outside its allowed range (e.g., a salt length below 8).
	ErrInvalidOption = errors.New("credential: invalid option value")

	// ErrUnknownProfile is returned by [ProfileOptions] for an unrecognised
	// profile name.
	ErrUnknownProfile = errors.New("credential: unknown policy profile")

	// ErrPasswordMismatch is returned by [Hasher.Upgrade] when the supplied
	// password does not verify against the existing credential. No new
	// credential is ever produced for an unverified password.
	ErrPasswordMismatch = errors.New("credential: password does not match stored credential")

	// ErrNilSaltProvider is returned by [NewHasherWithProvider] when the
	// supplied provider is nil.
	ErrNilSaltProvider = errors.New("credential: salt provider must not be nil")
)

// ValidationError identifies which field violated which constraint.
//
// It unwraps to [ErrValidation], so both forms work:
//
//	errors.Is(err, credential.ErrValidation)
//
//	var verr *credential.ValidationError
//	if errors.As(err, &verr) { log.Println(verr.Field) }
type ValidationError struct {
	// Field is the offending input: "password", "salt", "digest",
	// "iterations", or "keyLength".
	Field string

	// Constraint describes the violated rule in plain language.
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("credential: invalid %s: %s", e.Field, e.Constraint)
}

// Unwrap reports [ErrValidation] as the class of every ValidationError.
func (e *ValidationError) Unwrap() error { return ErrValidation }
