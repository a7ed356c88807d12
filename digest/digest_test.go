package digest_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/hasbyte1/go-password-utils/digest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Published reference vectors
// ──────────────────────────────────────────────────────────────────────────────

// Reference vectors from the FIPS 180-4 example values and the NESSIE test
// suite. These pin the engine bit-for-bit to the standard algorithm.
var referenceVectors = []struct {
	in   string
	want string
}{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"The quick brown fox jumps over the lazy dog",
		"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	{strings.Repeat("a", 1_000_000),
		"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
}

func TestSumHex_ReferenceVectors(t *testing.T) {
	for _, tc := range referenceVectors {
		name := tc.in
		if len(name) > 16 {
			name = name[:16] + "…"
		}
		got := digest.SumHex([]byte(tc.in))
		if got != tc.want {
			t.Errorf("SumHex(%q) = %s, want %s", name, got, tc.want)
		}
	}
}

func TestSum256_RawMatchesHex(t *testing.T) {
	sum := digest.Sum256([]byte("abc"))
	if hex.EncodeToString(sum[:]) != digest.SumHex([]byte("abc")) {
		t.Error("raw and hex forms disagree")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contract properties
// ──────────────────────────────────────────────────────────────────────────────

func TestSumHex_Deterministic(t *testing.T) {
	for _, in := range []string{"", "a", "hello", "päss≠wörd", "\x00\xff"} {
		if digest.SumHex([]byte(in)) != digest.SumHex([]byte(in)) {
			t.Errorf("SumHex(%q) is not deterministic", in)
		}
	}
}

func TestSumHex_AlwaysSixtyFourLowercaseHex(t *testing.T) {
	for _, in := range []string{"", "x", strings.Repeat("block-boundary..", 4)} {
		got := digest.SumHex([]byte(in))
		if len(got) != digest.HexSize {
			t.Fatalf("SumHex(%q) length = %d, want %d", in, len(got), digest.HexSize)
		}
		if got != strings.ToLower(got) {
			t.Errorf("SumHex(%q) is not lowercase: %s", in, got)
		}
	}
}

func TestSumHex_DistinctInputsDiffer(t *testing.T) {
	if digest.SumHex([]byte("hello")) == digest.SumHex([]byte("world")) {
		t.Error("distinct inputs produced identical digests")
	}
}

func TestSumHex_MultiByteUTF8(t *testing.T) {
	// "𝕳𝖊𝖑𝖑𝖔" uses code points above U+FFFF (4-byte UTF-8 sequences); the
	// engine must hash the raw UTF-8 bytes, same as any other byte stream.
	in := "𝕳𝖊𝖑𝖑𝖔"
	want := sha256.Sum256([]byte(in))
	if got := digest.SumHex([]byte(in)); got != hex.EncodeToString(want[:]) {
		t.Errorf("SumHex(%q) = %s, want %s", in, got, hex.EncodeToString(want[:]))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Streaming interface
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_SizeAndBlockSize(t *testing.T) {
	h := digest.New()
	if h.Size() != digest.Size {
		t.Errorf("Size() = %d, want %d", h.Size(), digest.Size)
	}
	if h.BlockSize() != digest.BlockSize {
		t.Errorf("BlockSize() = %d, want %d", h.BlockSize(), digest.BlockSize)
	}
}

func TestNew_StreamingMatchesOneShot(t *testing.T) {
	msg := []byte(strings.Repeat("streaming and one-shot must agree. ", 23))
	// Write in awkward chunk sizes to cross block boundaries.
	for _, chunk := range []int{1, 7, 63, 64, 65, 200} {
		h := digest.New()
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			h.Write(msg[i:end])
		}
		want := digest.Sum256(msg)
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Errorf("chunk size %d: streaming digest diverges from one-shot", chunk)
		}
	}
}

func TestNew_SumDoesNotDisturbState(t *testing.T) {
	h := digest.New()
	h.Write([]byte("part one"))
	mid := h.Sum(nil)
	h.Write([]byte(" part two"))
	final := h.Sum(nil)

	want := digest.Sum256([]byte("part one part two"))
	if !bytes.Equal(final, want[:]) {
		t.Error("Sum mid-stream corrupted the running state")
	}
	midWant := digest.Sum256([]byte("part one"))
	if !bytes.Equal(mid, midWant[:]) {
		t.Error("mid-stream Sum is wrong")
	}
}

func TestNew_ResetRestoresInitialState(t *testing.T) {
	h := digest.New()
	h.Write([]byte("garbage"))
	h.Reset()
	h.Write([]byte("abc"))
	want := digest.Sum256([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Error("Reset did not restore the initial state")
	}
}

func TestNew_SumAppends(t *testing.T) {
	h := digest.New()
	h.Write([]byte("abc"))
	prefix := []byte("prefix-")
	out := h.Sum(prefix)
	if !bytes.HasPrefix(out, prefix) {
		t.Fatal("Sum must append to its argument")
	}
	if len(out) != len(prefix)+digest.Size {
		t.Errorf("Sum output length = %d, want %d", len(out), len(prefix)+digest.Size)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Differential check against the standard library
// ──────────────────────────────────────────────────────────────────────────────

func TestSum256_AgreesWithStdlibAcrossLengths(t *testing.T) {
	// Every length from 0 to 3 blocks, to exercise all padding branches
	// (including the 56..63 mod 64 overflow block).
	buf := make([]byte, 3*digest.BlockSize)
	for i := range buf {
		buf[i] = byte(i * 131)
	}
	for n := 0; n <= len(buf); n++ {
		got := digest.Sum256(buf[:n])
		want := sha256.Sum256(buf[:n])
		if got != want {
			t.Fatalf("length %d: engine disagrees with crypto/sha256", n)
		}
	}
}
