package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidParameterError_Error(t *testing.T) {
	err := &InvalidParameterError{Param: "read_ratio", Value: "1.5", Message: "must be within [0,1]"}
	assert.Equal(t, "invalid parameter read_ratio '1.5': must be within [0,1]", err.Error())

	// Errors without a value omit the quoted section.
	err = &InvalidParameterError{Param: "disks", Message: "must not be empty"}
	assert.Equal(t, "invalid parameter disks: must not be empty", err.Error())
}

func TestIsInvalidParameter(t *testing.T) {
	direct := InvalidParamf("server_cost", -1, "must not be negative")
	assert.True(t, IsInvalidParameter(direct))

	// Wrapped errors are still recognized through the chain.
	wrapped := fmt.Errorf("loading parameters: %w", direct)
	assert.True(t, IsInvalidParameter(wrapped))

	assert.False(t, IsInvalidParameter(errors.New("some other error")))
	assert.False(t, IsInvalidParameter(nil))
}

func TestInvalidParamf_FormatsValue(t *testing.T) {
	err := InvalidParamf("read_ratio", 1.5, "must be within [0,1]")
	var ipe *InvalidParameterError
	assert.True(t, errors.As(err, &ipe))
	assert.Equal(t, "1.5", ipe.Value)
	assert.Equal(t, "read_ratio", ipe.Param)
}
