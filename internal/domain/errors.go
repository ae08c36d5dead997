package domain

import "errors"

var (
	// Ledger errors
	ErrLedgerNotFound      = errors.New("ledger not found")
	ErrInvalidLedgerAmount = errors.New("ledger balance out of allowed range")

	// Detail errors
	ErrDetailNotFound  = errors.New("ledger detail not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrUnknownFundType = errors.New("unknown fund type")

	// Evidence errors
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrDocumentNotFound = errors.New("document not found")

	// Agency errors
	ErrAgencyNotFound     = errors.New("agency not found")
	ErrAgencyUserNotFound = errors.New("user does not belong to agency")
	ErrInvalidAccess      = errors.New("user role does not permit this ledger operation")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)
