package auth

import (
	"errors"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks the static admin identity. The password is
// only ever held as a bcrypt hash.
type CredentialVerifier struct {
	AdminUsername     string
	AdminPasswordHash string
}

// VerifyAdmin returns true only for an exact username match and a
// successful hash compare. A malformed hash is an error, not a grant
// and not a plain rejection.
func (v *CredentialVerifier) VerifyAdmin(username, password string) (bool, error) {
	if username != v.AdminUsername {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(v.AdminPasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		logging.Log.Errorf("AUTH: password hash compare failed: %v", err)
		return false, err
	}
	return true, nil
}
