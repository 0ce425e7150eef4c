package auth

import (
	"golang.org/x/crypto/bcrypt"
)

type Port interface {
	Hash(pswd string) (string, error)
	Compare(hashed, pswd []byte) error
}

// DummyHash is a valid bcrypt digest compared against on login paths where
// no stored hash exists, so those paths cost the same as a wrong password.
// The compare result is always discarded.
var DummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type Core struct {
	cost int
}

func New() *Core {
	return &Core{cost: bcrypt.DefaultCost}
}

func (a *Core) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), a.cost)
	return string(bytes), err
}

func (a *Core) Compare(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
