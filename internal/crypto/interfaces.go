// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into self-describing Argon2id hashes
// and checks passwords against them.
//
// Encoded hashes use the PHC string format:
//
//	$argon2id$v=19$m=<memory KiB>,t=<time>,p=<threads>$<salt>$<key>
//
// with salt and key in unpadded standard base64. The parameters travel with
// the hash, so raising the cost later does not invalidate stored accounts.
type PasswordHasher interface {
	// Hash derives a new hash of password under a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields ErrMalformedHash.
	Verify(password, encoded string) (bool, error)
}
