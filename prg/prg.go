//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom generator. It
// is used for reproducible random operands in property checks; it is
// not a source of cryptographic secrets.
package prg

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// PRG implements io.Reader returning the ChaCha20 keystream of its
// key.
type PRG struct {
	cipher *chacha20.Cipher
}

// New creates a new PRG for the key.
func New(key [32]byte) *PRG {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// FromSeed creates a new PRG with a key derived from seed.
func FromSeed(seed uint64) *PRG {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	return New(sha256.Sum256(buf[:]))
}

// Read fills p with keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	// Stream XOR of zeros gives the keystream directly.
	prg.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 returns the next 64 keystream bits as an unsigned integer.
func (prg *PRG) Uint64() uint64 {
	var buf [8]byte
	prg.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Intn returns a pseudorandom integer in [0, n). It panics if n <= 0.
func (prg *PRG) Intn(n int) int {
	if n <= 0 {
		panic("prg.Intn: invalid argument")
	}
	return int(prg.Uint64() % uint64(n))
}
