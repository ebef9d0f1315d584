package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AdminUser struct {
	ID        int
	Name      string
	Email     string
	Password  password
	Active    bool
	CreatedAt time.Time
	Version   int
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetById(ctx context.Context, id int) (*AdminUser, error)
	Create(ctx context.Context, user *AdminUser) error
}
