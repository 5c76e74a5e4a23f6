package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))

	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create like: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "idx_likes_user_post"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
}

func TestIsInvalidInput(t *testing.T) {
	assert.False(t, IsInvalidInput(nil))
	assert.False(t, IsInvalidInput(gorm.ErrRecordNotFound))
	assert.False(t, IsInvalidInput(&pgconn.PgError{Code: "23505"}))

	assert.True(t, IsInvalidInput(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}))
	assert.True(t, IsInvalidInput(fmt.Errorf("get post: %w", &pgconn.PgError{Code: "22P02"})))
}
