// Package digest implements the 256-bit secure-hash block compression
// algorithm used by the credential subsystem.
//
// # Architecture
//
// The engine is a self-contained, dependency-free implementation of the
// standard 256-bit secure-hash algorithm (FIPS 180-4 family). [New] returns a
// streaming [hash.Hash]; [Sum256] and [SumHex] are one-shot conveniences for
// callers that have the whole message in memory.
//
// The round-constant table and the initial hash state are immutable
// package-level data. All word arithmetic is unsigned 32-bit with natural
// wraparound.
//
// # Quick start
//
//	fmt.Println(digest.SumHex([]byte("abc")))
//	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
//
// # Determinism
//
// The engine is a pure function of its input: output never depends on process
// state, wall-clock time, or platform byte order. Every digest is exactly 32
// bytes (64 lowercase hex characters), never truncated or padded.
package digest
