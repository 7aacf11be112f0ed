package principal

import (
	"errors"

	"github.com/google/uuid"
)

var ErrMissingSubject = errors.New("principal has no subject")

// Principal is the operator identity extracted from a validated bearer token.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func New(userID uuid.UUID, role string) (Principal, error) {
	if userID == uuid.Nil {
		return Principal{}, ErrMissingSubject
	}
	r, err := NewRole(role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: r}, nil
}
