package scoring

import "fmt"

// ValidationError marks one malformed entity. Batch scoring reports it in
// the failure list and keeps going; a bad row never aborts the run.
type ValidationError struct {
	Entity string
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, e.Reason)
}
