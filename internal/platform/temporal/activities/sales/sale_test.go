package sales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

func TestAsActivityError_TypedErrorsAreNonRetryable(t *testing.T) {
	err := asActivityError(apierr.UnprocessableEntity(`"quantity" must be greater than or equal to 1`))

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, string(apierr.CodeUnprocessableEntity), appErr.Type())
	require.True(t, appErr.NonRetryable())
	require.Equal(t, `"quantity" must be greater than or equal to 1`, appErr.Message())
}

func TestAsActivityError_StorageErrorsStayRetryable(t *testing.T) {
	cause := errors.New("connection reset")

	err := asActivityError(cause)

	require.ErrorIs(t, err, cause)
	var appErr *temporal.ApplicationError
	require.False(t, errors.As(err, &appErr))
}
