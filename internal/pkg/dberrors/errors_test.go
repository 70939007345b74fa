package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("unrelated")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolationOn(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"}

	assert.True(t, IsUniqueViolationOn(uniqueErr, "uq_users_username"))
	assert.False(t, IsUniqueViolationOn(uniqueErr, "uq_application_scholarship_student"))
	assert.False(t, IsUniqueViolationOn(errors.New("unrelated"), "uq_users_username"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}
