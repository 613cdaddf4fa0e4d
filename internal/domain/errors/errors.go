package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrBelowMinimumPayout = errors.New("below minimum payout amount")
	ErrAlreadyResolved    = errors.New("payout request already resolved")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrForbidden          = errors.New("forbidden")
	ErrUnknownAwardReason = errors.New("unknown award reason")
	ErrMissingEventRef    = errors.New("missing event reference")
	ErrInvalidWallet      = errors.New("invalid wallet address")
	ErrEmptyContent       = errors.New("empty content")
	ErrInvalidUpload      = errors.New("invalid upload")
)
