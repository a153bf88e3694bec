package types

import "errors"

// Module and access errors.
var (
	ErrUnknownModule   = errors.New("unknown module")
	ErrModuleForbidden = errors.New("module not accessible to this user")
	ErrLoginFailed     = errors.New("invalid username or password")
)

// Save path errors.
var (
	ErrStaleBase    = errors.New("base changed since load")
	ErrRefNotLoaded = errors.New("row handle not present in loaded set")
)

// Input validation errors, raised before any store interaction.
var (
	ErrFieldRequired = errors.New("required field is blank")
	ErrNegativeQty   = errors.New("quantity must not be negative")
	ErrUnknownColumn = errors.New("unknown column")
)

// Reporting errors.
var (
	ErrUnknownPeriod = errors.New("unknown period token")
	ErrUnknownBucket = errors.New("unknown date bucket token")
)
