package domain

import "errors"

var (
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists indicates that the user with the given uid already exists.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// User holds user data together with the set of currencies the user accepts
// as payment. The UID is assigned by the external identity provider.
type User struct {
	UID                string     `json:"uid"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	AcceptedCurrencies []Currency `json:"accepted_currencies"`
}

// AcceptsCurrency reports whether the user already accepts the currency with
// the given symbol.
func (u User) AcceptsCurrency(symbol string) bool {
	for _, c := range u.AcceptedCurrencies {
		if c.Symbol == symbol {
			return true
		}
	}

	return false
}

// CreateUserParams holds the data needed for user creation.
type CreateUserParams struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
