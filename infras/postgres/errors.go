package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// ErrorCode returns the SQLSTATE of a pq error anywhere in the chain, or "".
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// ConstraintName returns the violated constraint of a pq error, or "".
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}
