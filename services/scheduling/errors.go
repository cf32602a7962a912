package scheduling

import "fmt"

// SlotError is a typed failure from the scheduling engine. Codes distinguish
// caller mistakes (validation, unknown slot) from infrastructure faults so the
// HTTP layer can map them to statuses.
type SlotError struct {
	Code    string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &SlotError{
		Code:    "validationError",
		Message: msg,
	}
}

func NewSlotNotFoundError(slotNumber string) error {
	return &SlotError{
		Code:    "slotNotFound",
		Message: fmt.Sprintf("no slot or covering schedule for %s", slotNumber),
	}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	se, ok := err.(*SlotError)
	return ok && se.Code == "validationError"
}

// IsSlotNotFound reports whether err marks an unresolvable slot number.
func IsSlotNotFound(err error) bool {
	se, ok := err.(*SlotError)
	return ok && se.Code == "slotNotFound"
}
