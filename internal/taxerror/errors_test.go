package taxerror

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInput("month", "13", "month must be between 1 and 12")

	assert.Equal(t, "invalid input month='13': month must be between 1 and 12", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "month", invalid.Field)
}

func TestInvalidInputError_Wrapped(t *testing.T) {
	_, parseErr := strconv.ParseFloat("abc", 64)
	err := WrapInvalidInput("amount", "abc", "not a number", parseErr)

	assert.Contains(t, err.Error(), "not a number")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	// Still matchable after further wrapping
	outer := fmt.Errorf("loading row 3: %w", err)
	assert.True(t, errors.Is(outer, ErrInvalidInput))
}

func TestSnapshotError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &SnapshotError{FilePath: "/tmp/tx.csv", Kind: "transactions", Err: cause}

	assert.Equal(t, "failed to process transactions snapshot '/tmp/tx.csv': permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestCategorizationError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &CategorizationError{Transaction: "tx-1", Strategy: "AI", Err: cause}

	assert.Equal(t, "categorization failed for tx-1 using AI: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
}
