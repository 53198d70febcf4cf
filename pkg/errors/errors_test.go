// Package errors_test exercises the AppError type, factory functions, and
// error-chain helpers.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/MacBench/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"machine not found", errors.ErrCodeMachineNotFound, "machine mbp-m4max-2024 not found"},
		{"invalid param", errors.CodeInvalidParam, "price must be >= 0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestNewf_FormatsMessage(t *testing.T) {
	ae := errors.Newf(errors.ErrCodeMachineNotFound, "machine %q not found", "x")
	assert.Equal(t, `machine "x" not found`, ae.Message)
}

func TestError_Format(t *testing.T) {
	ae := errors.New(errors.ErrCodeCompareIncomplete, "need two")
	assert.Equal(t, "[CMP_001] need two", ae.Error())

	withDetail := ae.WithDetail("got 1")
	assert.Equal(t, "[CMP_001] need two: got 1", withDetail.Error())
	assert.Empty(t, ae.Detail, "WithDetail must not mutate the receiver")
}

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "should not matter"))
}

func TestWrap_CauseChainIsPreserved(t *testing.T) {
	t.Parallel()

	root := stderrors.New("disk on fire")
	wrapped := errors.Wrap(root, errors.ErrCodeDatasetUnreadable, "read dataset")

	require.NotNil(t, wrapped)
	assert.True(t, stderrors.Is(wrapped, root))
	assert.Equal(t, errors.ErrCodeDatasetUnreadable, wrapped.Code)
}

func TestWrap_UnknownCodePreservesOriginal(t *testing.T) {
	inner := errors.New(errors.ErrCodeMachineNotFound, "missing")
	outer := errors.Wrap(inner, errors.CodeUnknown, "lookup failed")
	assert.Equal(t, errors.ErrCodeMachineNotFound, outer.Code)
}

func TestIsCode_TraversesStdlibWrapping(t *testing.T) {
	inner := errors.New(errors.ErrCodeAdvisorUnavailable, "offline")
	outer := fmt.Errorf("advise: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrCodeAdvisorUnavailable))
	assert.False(t, errors.IsCode(outer, errors.CodeInternal))
	assert.False(t, errors.IsCode(nil, errors.CodeInternal))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("x")))
	assert.True(t, errors.IsNotFound(errors.New(errors.ErrCodeMachineNotFound, "x")))
	assert.False(t, errors.IsNotFound(errors.InvalidParam("x")))
	assert.False(t, errors.IsNotFound(stderrors.New("plain")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errors.IsValidation(errors.InvalidParam("bad")))
	assert.True(t, errors.IsValidation(errors.New(errors.ErrCodeCompareIncomplete, "one")))
	assert.False(t, errors.IsValidation(errors.NotFound("x")))
	assert.False(t, errors.IsValidation(errors.Internal("x")))
	assert.False(t, errors.IsValidation(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrCodePreferenceInvalid, errors.GetCode(errors.New(errors.ErrCodePreferenceInvalid, "theme")))
}

func TestSentinelMatchesAfterWithDetail(t *testing.T) {
	detailed := errors.ErrInvalidConfig.WithDetail("baseURL empty")
	assert.True(t, errors.Is(detailed, errors.ErrInvalidConfig))
	assert.True(t, errors.Is(fmt.Errorf("ctx: %w", detailed), errors.ErrInvalidConfig))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.New(errors.ErrCodeMachineNotFound, "x").HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, errors.Unavailable("x").HTTPStatus())
}

func TestStack_ContainsCaller(t *testing.T) {
	ae := errors.Internal("boom")
	assert.True(t, strings.Contains(ae.Stack, "errors_test.go"))
}

func TestNilReceiverBuilders(t *testing.T) {
	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(stderrors.New("x")))
}
