package store

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is the persistence layer. Every method enforces the entity
// invariants and reports violations as typed errors instead of leaking
// driver errors upward.
type Store struct {
	db *gorm.DB
}

// New wraps an initialized gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ErrNotFound is returned when a referenced entity id does not exist.
var ErrNotFound = errors.New("record not found")

var decimalOne = decimal.NewFromInt(1)

// ConstraintError reports a broken uniqueness or referential-integrity
// rule. Rule names the violated constraint in human-readable form.
type ConstraintError struct {
	Rule string
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + e.Rule
}

// IsConstraint reports whether err is a constraint violation.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// translate maps driver errors onto the store taxonomy. rule is the
// constraint description used when the driver reports a violation.
func translate(err error, rule string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503": // unique_violation, foreign_key_violation
			return &ConstraintError{Rule: rule}
		}
	}

	// SQLite (used by the test harness) reports constraints as plain text.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &ConstraintError{Rule: rule}
	}

	return err
}

// validQuantity enforces positive decimals with at most two decimal places,
// the precision shelf quantities and sizes are stored with.
func validQuantity(name string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return &ConstraintError{Rule: name + " must be a positive decimal"}
	}
	if d.Exponent() < -2 {
		return &ConstraintError{Rule: name + " must have at most two decimal places"}
	}
	return nil
}
