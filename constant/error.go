package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrValidation
	ErrTypeMismatch
	ErrEmailExists
	ErrInvalidCredentials
	ErrAccountNotFound
	ErrProductNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrValidation:         "all fields are required",
	ErrTypeMismatch:       "product id and quantity must be numeric",
	ErrEmailExists:        "email already registered",
	ErrInvalidCredentials: "invalid email or password",
	ErrAccountNotFound:    "account not found",
	ErrProductNotFound:    "product not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrValidation:         http.StatusBadRequest,
	ErrTypeMismatch:       http.StatusBadRequest,
	ErrEmailExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrAccountNotFound:    http.StatusBadRequest,
	ErrProductNotFound:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrValidation:         "0002",
	ErrTypeMismatch:       "0003",
	ErrEmailExists:        "0004",
	ErrInvalidCredentials: "0005",
	ErrAccountNotFound:    "0006",
	ErrProductNotFound:    "0007",
}
