// Package keypair handles Solana keypair byte arrays and their
// base58 and JSON encodings.
package keypair

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

// CanonicalLen is the length of a full Solana keypair: a 32-byte
// ed25519 seed followed by the 32-byte public key.
const CanonicalLen = 64

// FingerprintLen is the number of hash bytes kept in a fingerprint.
const FingerprintLen = 8

// Keypair holds raw secret-key bytes as stored in a keypair JSON
// file. Length is not restricted; CanonicalLen is the usual case.
type Keypair []byte

// FromJSON parses a JSON array of integers into a Keypair. Every
// element must be an integer in [0, 255]; anything else (non-array
// value, float, negative, overflow, nested structure) is rejected.
func FromJSON(data []byte) (Keypair, error) {
	var vals []int64
	if err := json.Unmarshal(data, &vals); err != nil {
		return nil, fmt.Errorf("keypair must be a JSON array of integers: %w", err)
	}
	// Unmarshal leaves the slice nil for JSON null; only a real
	// array (possibly empty) is acceptable.
	if vals == nil {
		return nil, fmt.Errorf("keypair must be a JSON array of integers, got null")
	}
	kp := make(Keypair, len(vals))
	for i, v := range vals {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("element %d out of byte range: %d", i, v)
		}
		kp[i] = byte(v)
	}
	return kp, nil
}

// ToJSON renders the keypair as a JSON array of integers, the
// format solana-keygen writes.
func (kp Keypair) ToJSON() ([]byte, error) {
	vals := make([]int, len(kp))
	for i, b := range kp {
		vals[i] = int(b)
	}
	return json.Marshal(vals)
}

// Base58 returns the base58 form of the keypair bytes (Bitcoin
// alphabet, no checksum, leading zero bytes become leading '1's).
func (kp Keypair) Base58() string {
	return base58.Encode(kp)
}

// FromBase58 decodes a base58 string into a Keypair. The empty
// string decodes to an empty keypair, keeping encode/decode a full
// round trip.
func FromBase58(s string) (Keypair, error) {
	if s == "" {
		return Keypair{}, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base58: %w", err)
	}
	return Keypair(b), nil
}

// PublicKey returns the public-key half of a canonical keypair.
// Solana keypair files store seed followed by pubkey, so this is a
// byte slice, not a curve operation.
func (kp Keypair) PublicKey() ([]byte, error) {
	if len(kp) != CanonicalLen {
		return nil, fmt.Errorf("keypair must be %d bytes, got %d", CanonicalLen, len(kp))
	}
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, kp[32:])
	return pub, nil
}

// Fingerprint returns a short hex identifier for the keypair,
// derived from a BLAKE3-256 hash of its public-key half. It is safe
// to log: the secret bytes never enter the hash. Non-canonical
// keypairs hash all of their bytes instead.
func (kp Keypair) Fingerprint() string {
	material := []byte(kp)
	if pub, err := kp.PublicKey(); err == nil {
		material = pub
	}
	h := blake3.Sum256(material)
	return hex.EncodeToString(h[:FingerprintLen])
}

// Generate creates a new keypair in the canonical 64-byte layout.
// rand may be nil, in which case crypto/rand is used.
func Generate(rand io.Reader) (Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	// ed25519.PrivateKey is already seed||pubkey.
	return Keypair(priv), nil
}

// ReadFile loads a keypair from a JSON byte-array file.
func ReadFile(path string) (Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kp, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kp, nil
}

// WriteFile writes the keypair as a JSON byte array, readable only
// by the owner.
func (kp Keypair) WriteFile(path string) error {
	data, err := kp.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write keypair file: %w", err)
	}
	return nil
}

// String implements fmt.Stringer without exposing key material.
func (kp Keypair) String() string {
	return "keypair(" + strconv.Itoa(len(kp)) + " bytes, " + kp.Fingerprint() + ")"
}
