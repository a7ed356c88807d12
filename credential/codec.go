package credential

import (
	"encoding/json"
	"strings"
)

// fieldSep delimits the salt, digest, and metadata fields of an encoded
// credential. Salts must never contain it; [Encode] enforces that.
const fieldSep = ":"

// Encode renders a [Record] as its single-line text form:
//
//	<salt>:<digestHex>:<metadataJSON>
//
// or, for a legacy record, just <salt>:<digestHex>. Encode validates the salt
// and digest fields and fails with a [ValidationError] when either is out of
// contract, so a malformed record can never be persisted.
func Encode(r Record) (string, error) {
	if err := validateSalt(r.Salt); err != nil {
		return "", err
	}
	if strings.Contains(r.Salt, fieldSep) {
		return "", &ValidationError{Field: "salt", Constraint: "must not contain the ':' delimiter"}
	}
	if err := validateDigestHex(r.Digest); err != nil {
		return "", err
	}

	if r.Legacy {
		return r.Salt + fieldSep + r.Digest, nil
	}

	meta, err := json.Marshal(r.Metadata)
	if err != nil {
		// Metadata is a plain struct of scalars; Marshal cannot fail on it.
		return "", err
	}
	return r.Salt + fieldSep + r.Digest + fieldSep + string(meta), nil
}

// Decode parses an encoded credential back into a [Record].
//
// Rules, most tolerant last:
//   - fewer than two fields ⇒ [ErrMalformedCredential];
//   - salt or digest out of contract ⇒ [ValidationError];
//   - exactly two fields ⇒ legacy record with implied metadata
//     (digest256, one iteration);
//   - three or more fields ⇒ the remainder is rejoined on ":" and parsed as
//     JSON metadata. A metadata parse failure is not fatal: metadata is
//     auxiliary, so the record falls back to the legacy defaults.
func Decode(encoded string) (Record, error) {
	parts := strings.Split(encoded, fieldSep)
	if len(parts) < 2 {
		return Record{}, ErrMalformedCredential
	}

	salt, digestHex := parts[0], parts[1]
	if err := validateSalt(salt); err != nil {
		return Record{}, err
	}
	if err := validateDigestHex(digestHex); err != nil {
		return Record{}, err
	}

	r := Record{Salt: salt, Digest: digestHex}

	if len(parts) == 2 {
		r.Metadata = legacyMetadata()
		r.Legacy = true
		return r, nil
	}

	// Metadata JSON may itself contain ":" (it always does), so everything
	// after the second field belongs to it.
	raw := strings.Join(parts[2:], fieldSep)
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		r.Metadata = legacyMetadata()
		r.Legacy = true
		return r, nil
	}
	if m.Algorithm == "" {
		m.Algorithm = AlgorithmDigest256
	}
	if m.Iterations == 0 {
		m.Iterations = 1
	}
	r.Metadata = m
	return r, nil
}
