package model

// AccountEntity represents the account table entity
type AccountEntity struct {
	ID           uint64 `db:"id" json:"id"`
	FullName     string `db:"full_name" json:"full_name"`
	BirthDate    string `db:"birth_date" json:"birth_date"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	ID       uint64
	FullName string
	Email    string
}

// RegisterRequest for account registration
type RegisterRequest struct {
	FullName  string `json:"name" validate:"required"`
	BirthDate string `json:"dob" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest for account authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DeleteAccountRequest re-submits full credentials, same contract as login
type DeleteAccountRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
}
