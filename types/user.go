package types

import "time"

// User represents a registered customer account.
// Accounts live only in process memory and are never updated or
// deleted after registration.
type User struct {
	// Username is the unique login name chosen by the customer. It is
	// the directory key and the identity attached to reviews.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the customer's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}
