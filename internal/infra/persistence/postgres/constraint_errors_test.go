package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	t.Run("unique", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
		assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_phone_key" (SQLSTATE 23505)`)))
		assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	})

	t.Run("foreign key", func(t *testing.T) {
		assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
		assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert or update on table "addresses" violates foreign key constraint (SQLSTATE 23503)`)))
		assert.False(t, isForeignKeyConstraintViolation(gorm.ErrRecordNotFound))
	})

	t.Run("not null", func(t *testing.T) {
		assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "phone" violates not-null constraint (SQLSTATE 23502)`)))
		assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
	})
}
