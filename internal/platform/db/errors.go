package db

import "fmt"

// PersistenceError wraps any transport or store failure from a repository
// operation. Callers that absorb one must treat the outcome of the attempted
// write as unknown, not as a clean failure: the store may or may not have
// applied it.
type PersistenceError struct {
	Op    string // "insert", "select", "update"
	Table string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError, passing nil through unchanged.
func Persistence(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Table: table, Err: err}
}
