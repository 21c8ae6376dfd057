// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindSentinels(t *testing.T) {
	err := invalidArgument("bad %s", "thing")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrPreconditionViolation))
	assert.False(t, errors.Is(err, ErrInvariantViolation))

	var petErr *Error
	assert.True(t, errors.As(err, &petErr))
	assert.Equal(t, KindInvalidArgument, petErr.Kind)
}

func TestErrorMessageNotEmpty(t *testing.T) {
	err := preconditionViolation("only valid on %s", "macros")
	assert.Contains(t, err.Error(), "macros")
}
