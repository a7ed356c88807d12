// Package credential provides salted, iterative password hashing with a
// stable textual storage format, timing-safe verification, and a
// rehash/upgrade policy.
//
// # Architecture
//
// The [Hasher] is the single entry point. It combines:
//
//   - the digest engine ([github.com/hasbyte1/go-password-utils/digest]) and
//     two standards-based KDFs (PBKDF2, Argon2id) selected by [Algorithm];
//   - an injected [SaltProvider] ([RandomSalt] by default);
//   - the [Encode]/[Decode] codec for the credential text format;
//   - [ConstantTimeEqual] for the comparison step.
//
// Everything is stateless: the caller owns and persists the encoded text,
// and hash/verify calls may run concurrently with no coordination.
//
// # Credential text format
//
// One line, colon-delimited:
//
//	<salt>:<digestHex>:<metadataJSON>
//
// A two-field form without metadata is accepted for backward compatibility
// and implies digest256 with a single iteration. Corrupt metadata on a
// three-field credential degrades to the same legacy defaults rather than
// failing — metadata is auxiliary, not load-bearing for verification.
//
// # Quick start
//
//	h, err := credential.NewHasher(credential.DefaultOptions())
//	if err != nil { log.Fatal(err) }
//
//	stored, _ := h.Hash("my-secret-password")
//	ok := h.Verify("my-secret-password", stored) // true
//
// On every successful login, check the stored credential against the current
// policy and upgrade in place:
//
//	if h.NeedsRehash(stored) {
//	    if fresh, err := h.Upgrade(password, stored); err == nil {
//	        persist(userID, fresh)
//	    }
//	}
//
// # Security
//
// The digest256 algorithm re-applies a raw digest to its own output. That is
// iterative hashing, not memory-hard key derivation: it is retained for
// compatibility and documented as weak. Production deployments should select
// [AlgorithmArgon2id] (or [AlgorithmPBKDF2SHA256]) via [ProfileOptions] —
// the on-disk format is identical, so migration is a rehash-on-login away.
//
// [Hasher.Verify] and [Hasher.VerifyDetailed] never return errors: every
// failure mode maps to a false result, because an authentication boundary
// must not leak distinguishable failure types.
package credential
