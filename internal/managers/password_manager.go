package managers

import (
	"golang.org/x/crypto/bcrypt"
)

type PasswordMgr interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, digest string) bool
}

// PasswordManager hashes and verifies passwords with bcrypt.
type PasswordManager struct {
	cost int
}

// NewPasswordManager returns a PasswordManager using cost, clamped to bcrypt's valid range.
func NewPasswordManager(cost int) PasswordMgr {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordManager{cost: cost}
}

// HashPassword returns a salted digest; hashing the same password twice gives different digests.
func (pm *PasswordManager) HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), pm.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches digest. A malformed digest never matches.
func (pm *PasswordManager) VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
