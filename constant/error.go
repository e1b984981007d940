package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrEmptyClaim
	ErrUnknownLineItem
	ErrInsufficientQuantity
	ErrNotPending
	ErrAlreadyApproved
	ErrNotApproved
	ErrAlreadyComplete
	ErrBranchMismatch
	ErrTokenNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "email already exists",
	ErrInvalidPassword:      "password invalid",
	ErrEmptyClaim:           "claim has no items",
	ErrUnknownLineItem:      "listing line item not found",
	ErrInsufficientQuantity: "not enough quantity remaining",
	ErrNotPending:           "claim is not pending",
	ErrAlreadyApproved:      "claim has already been approved",
	ErrNotApproved:          "claim not approved yet",
	ErrAlreadyComplete:      "this pickup has already been completed",
	ErrBranchMismatch:       "this pickup is for a different branch",
	ErrTokenNotFound:        "invalid QR code",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrEmptyClaim:           http.StatusBadRequest,
	ErrUnknownLineItem:      http.StatusNotFound,
	ErrInsufficientQuantity: http.StatusBadRequest,
	ErrNotPending:           http.StatusBadRequest,
	ErrAlreadyApproved:      http.StatusBadRequest,
	ErrNotApproved:          http.StatusBadRequest,
	ErrAlreadyComplete:      http.StatusBadRequest,
	ErrBranchMismatch:       http.StatusForbidden,
	ErrTokenNotFound:        http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrEmptyClaim:           "0007",
	ErrUnknownLineItem:      "0008",
	ErrInsufficientQuantity: "0009",
	ErrNotPending:           "0010",
	ErrAlreadyApproved:      "0011",
	ErrNotApproved:          "0012",
	ErrAlreadyComplete:      "0013",
	ErrBranchMismatch:       "0014",
	ErrTokenNotFound:        "0015",
}
