package slotting

import "fmt"

// ValidationError reports malformed or inconsistent input parameters.
// It is raised before any solver interaction and names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// ModelBuildError reports an internal inconsistency detected while
// assembling the model. It is a contract violation, not a data problem.
type ModelBuildError struct {
	Reason string
}

func (e *ModelBuildError) Error() string {
	return fmt.Sprintf("model build failed: %s", e.Reason)
}
