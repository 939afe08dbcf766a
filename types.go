package guidex

import "github.com/cockroachdb/errors"

// ErrorCode represents specific error codes for guideline operations.
type ErrorCode int

const (
	// ErrCodeInvalidOption is returned when an invalid option is provided.
	ErrCodeInvalidOption ErrorCode = iota + 1000

	// ErrCodeInvalidExpression is returned when an invalid expression is provided.
	ErrCodeInvalidExpression

	// ErrCodeCanceled is returned when a search operation is canceled.
	ErrCodeCanceled

	// ErrCodeInvalidGuideline is returned when a record misses a required field.
	ErrCodeInvalidGuideline

	// ErrCodeDuplicateID is returned when two records share an ID.
	ErrCodeDuplicateID

	// ErrCodeInvalidCatalogue is returned when a catalogue source cannot be decoded.
	ErrCodeInvalidCatalogue

	// ErrCodeBackendUnavailable is returned when the catalogue backend is unavailable.
	ErrCodeBackendUnavailable
)

// String returns the human-readable string representation of the error code.
// This implements the fmt.Stringer interface.
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeInvalidOption:
		return "invalid option"
	case ErrCodeInvalidExpression:
		return "invalid expression"
	case ErrCodeCanceled:
		return "operation canceled"
	case ErrCodeInvalidGuideline:
		return "invalid guideline"
	case ErrCodeDuplicateID:
		return "duplicate guideline id"
	case ErrCodeInvalidCatalogue:
		return "invalid catalogue"
	case ErrCodeBackendUnavailable:
		return "backend unavailable"
	default:
		return "unknown error"
	}
}

// newErrorWithCode creates a new error with a code and message.
func newErrorWithCode(code ErrorCode, msg string) error {
	err := errors.New(msg)
	return errors.WithSecondaryError(err, errors.Newf("code: %d", int(code)))
}

// Common errors that can be returned by guideline operations.
var (
	// ErrInvalidOption is returned when an invalid option is provided.
	ErrInvalidOption = newErrorWithCode(ErrCodeInvalidOption, "guidex: invalid option")

	// ErrInvalidExpression is returned when an invalid expression is provided.
	ErrInvalidExpression = newErrorWithCode(ErrCodeInvalidExpression, "guidex: invalid expression")

	// ErrCanceled is returned when a search operation is canceled.
	ErrCanceled = newErrorWithCode(ErrCodeCanceled, "guidex: operation canceled")

	// ErrInvalidGuideline is returned when a record misses a required field.
	ErrInvalidGuideline = newErrorWithCode(ErrCodeInvalidGuideline, "guidex: invalid guideline")

	// ErrDuplicateID is returned when two records of one catalogue share an ID.
	ErrDuplicateID = newErrorWithCode(ErrCodeDuplicateID, "guidex: duplicate guideline id")

	// ErrInvalidCatalogue is returned when a catalogue source cannot be decoded.
	ErrInvalidCatalogue = newErrorWithCode(ErrCodeInvalidCatalogue, "guidex: invalid catalogue")

	// ErrBackendUnavailable is returned when the catalogue backend is unavailable.
	ErrBackendUnavailable = newErrorWithCode(ErrCodeBackendUnavailable, "guidex: backend unavailable")
)
