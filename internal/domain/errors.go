package domain

import "errors"

var ErrRecordNotFound = errors.New("record not found")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrTransactionNotAllowed = errors.New("transaction not allowed")
var ErrInvalidArgument = errors.New("invalid argument")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

func IsInsufficientFunds(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

func IsTransactionNotAllowed(err error) bool {
	return errors.Is(err, ErrTransactionNotAllowed)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
