package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns raw passwords into one-way hashes and checks raw
// passwords against stored hashes.
//
// A hash produced by Hash is never equal to its input and embeds its own
// salt, so hashing the same password twice yields different values.
type PasswordHasher interface {
	// Hash returns the one-way hash of rawPassword.
	Hash(rawPassword string) (string, error)

	// Verify reports whether rawPassword matches hashedPassword.
	// A mismatch is reported as ErrPasswordMismatch.
	Verify(hashedPassword, rawPassword string) error
}
