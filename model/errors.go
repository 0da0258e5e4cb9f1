package model

import "fmt"

// RetrievalError reports that a read against the store failed.
type RetrievalError struct {
	Op  string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// IntegrityError reports a joined reference that could not be resolved,
// e.g. a visit whose patient row is missing.
type IntegrityError struct {
	MRN    string
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity failure for mrn %q: %s", e.MRN, e.Reason)
}

// ValidationError reports caller input that was rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
