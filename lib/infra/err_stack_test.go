package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("boom")
	require.EqualError(t, err, "boom")

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "boom"))
	require.Contains(t, verbose, "err_stack_test.go")
	require.Equal(t, "boom", fmt.Sprintf("%v", err))
	require.Equal(t, "boom", fmt.Sprintf("%s", err))
}

func TestWrapErrorStack(t *testing.T) {
	require.NoError(t, WrapErrorStack(nil))

	sentinel := errors.New("[infra] sentinel")
	wrapped := WrapErrorStack(fmt.Errorf("%w: detail", sentinel))
	require.ErrorIs(t, wrapped, sentinel)
	require.Contains(t, fmt.Sprintf("%+v", wrapped), "err_stack_test.go")

	// Re-wrapping keeps the innermost capture point.
	require.Same(t, wrapped, WrapErrorStack(wrapped))
	outer := fmt.Errorf("outer: %w", wrapped)
	require.Same(t, outer, WrapErrorStack(outer))
}
