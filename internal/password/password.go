// Package password derives the stored digest of a plaintext password.
package password

import "crypto/sha256"

// Size is the length of a digest in bytes.
const Size = sha256.Size

// Hash returns the SHA-256 digest of the plaintext.
// No salt is applied, so equal passwords always produce equal digests.
func Hash(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return sum[:]
}
