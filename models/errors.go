package models

// ValidationError reports a caller-correctable precondition failure
// (bad amount, participant count below minimum). The order is left untouched.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StateConflictError reports an event requested against an order whose
// current state forbids it. The order is left untouched.
type StateConflictError struct {
	Code    string
	Message string
}

func (e *StateConflictError) Error() string {
	return e.Message
}
