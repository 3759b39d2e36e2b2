package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32 // AES-256
	pbkdf2Iter = 100_000
)

// ErrWrongPassword is returned when decryption fails to authenticate, which
// in practice means the password is wrong or the stream is corrupt.
var ErrWrongPassword = errors.New("wrong password or corrupt stream")

// Encrypt seals data with AES-256-GCM using a key derived from the password
// with PBKDF2-SHA256. The random salt and nonce are prefixed to the
// ciphertext so the stream is self-contained.
func Encrypt(data []byte, password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(data)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, nil), nil
}

// Decrypt opens a stream produced by Encrypt.
func Decrypt(data []byte, password string) ([]byte, error) {
	if len(data) < saltSize {
		return nil, ErrWrongPassword
	}
	salt, rest := data[:saltSize], data[saltSize:]

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < aead.NonceSize() {
		return nil, ErrWrongPassword
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}

	return plaintext, nil
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iter, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return aead, nil
}
