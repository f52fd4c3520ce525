package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Lookup errors. Compare with errors.Is.
var (
	// ErrUnitNotFound indicates a unit name missing from its kind's table.
	ErrUnitNotFound = constError("unit not found")

	// ErrUnknownKind indicates a quantity kind with no table.
	ErrUnknownKind = constError("unknown unit kind")

	// ErrCurrencyNotFound indicates a currency code missing from the rate table.
	ErrCurrencyNotFound = constError("currency not found")

	// ErrInvalidRate indicates a non-positive or non-finite currency rate.
	ErrInvalidRate = constError("invalid currency rate")

	// ErrStateNotFound indicates an unknown US state code.
	ErrStateNotFound = constError("state not found")
)
