package dialects

import "errors"

// Predefined errors returned by dialect operations.
var (
	// ErrNoExecutor is returned when an operation needs metadata introspection
	// but the session has no executor bound.
	ErrNoExecutor = errors.New("no executor bound to session")
	// ErrNoConflictTarget is returned when an upsert has neither caller-supplied
	// conflict columns nor a table primary key to key on.
	ErrNoConflictTarget = errors.New("no conflict target: table has no primary key and no conflict columns were supplied")
	// ErrEmptyRowSet is returned when statement generation is requested with no rows.
	ErrEmptyRowSet = errors.New("no rows to generate statement for")
	// ErrRowShape is returned when a row's value count does not match the field count.
	ErrRowShape = errors.New("row value count does not match field count")
	// ErrNoTargetFields is returned by upsert generation that cannot name its
	// columns, such as a MERGE statement requested without target fields.
	ErrNoTargetFields = errors.New("statement requires explicit target fields")
)

// ParseError reports a malformed table identifier passed to ExtractSchema.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "parse table identifier " + quoteForError(e.Input) + ": " + e.Reason
}

// UnsupportedOperationError reports that a dialect has no correct
// implementation for the requested operation. It is never silently degraded:
// emitting a plain INSERT for a requested upsert would corrupt semantics.
type UnsupportedOperationError struct {
	Dialect   string
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return "dialect " + quoteForError(e.Dialect) + " does not support " + e.Operation
}

// ContractViolationError reports that the bound connection or executor is
// unusable. It wraps the underlying failure unmodified; this layer never
// retries.
type ContractViolationError struct {
	Dialect   string
	Operation string
	Err       error
}

func (e *ContractViolationError) Error() string {
	return "dialect " + quoteForError(e.Dialect) + ": " + e.Operation + ": " + e.Err.Error()
}

func (e *ContractViolationError) Unwrap() error {
	return e.Err
}

func quoteForError(s string) string {
	return `"` + s + `"`
}

// contractViolation wraps an executor failure, passing ErrNoExecutor and
// nested violations through without double wrapping.
func contractViolation(dialect, op string, err error) error {
	var cv *ContractViolationError
	if errors.As(err, &cv) {
		return err
	}
	return &ContractViolationError{Dialect: dialect, Operation: op, Err: err}
}
