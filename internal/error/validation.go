package error

import "fmt"

const (
	ReasonInvalidLength uint8 = iota
	ReasonNotSeparated
	ReasonMissingLength
)

// ValidationErr is a local, recoverable placement rejection. It matches
// ErrValidation under errors.Is.
type ValidationErr struct {
	reason uint8
	length int
}

func (v ValidationErr) Reason() uint8 {
	return v.reason
}

// Length is the offending ship length. Zero for ReasonNotSeparated.
func (v ValidationErr) Length() int {
	return v.length
}

func (v ValidationErr) Error() string {
	switch v.reason {
	case ReasonInvalidLength:
		return fmt.Sprintf("invalid ship length: %d", v.length)
	case ReasonNotSeparated:
		return "ships not separated"
	case ReasonMissingLength:
		return fmt.Sprintf("missing length: %d", v.length)
	default:
		return "invalid placement"
	}
}

func (v ValidationErr) Is(target error) bool {
	t, ok := target.(DuelErr)
	return ok && t.code == CodeValidation
}

func ErrInvalidShipLength(length int) error {
	return ValidationErr{reason: ReasonInvalidLength, length: length}
}

func ErrShipsNotSeparated() error {
	return ValidationErr{reason: ReasonNotSeparated}
}

func ErrMissingShipLength(length int) error {
	return ValidationErr{reason: ReasonMissingLength, length: length}
}
