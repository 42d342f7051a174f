package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	cause := stderrors.New("open data/scores.csv: no such file")

	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewStorageError("failed to open dataset", cause),
			want: "[STORAGE] failed to open dataset: open data/scores.csv: no such file",
		},
		{
			name: "without cause",
			err:  NewValidationError("thresholds must be strictly descending"),
			want: "[VALIDATION] thresholds must be strictly descending",
		},
		{
			name: "not found",
			err:  NewNotFoundError("dataset"),
			want: "[NOT_FOUND] dataset not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewParsingError("bad header", cause)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrTypeParsing, appErr.Type)
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewParsingError("short row", nil).
		WithContext("row", 17).
		WithContext("path", "scores.csv")

	assert.Equal(t, 17, err.Context["row"])
	assert.Equal(t, "scores.csv", err.Context["path"])
}

func TestAPIError(t *testing.T) {
	err := DatasetNotFoundError(stderrors.New("no such file"))

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "DATASET_NOT_FOUND", err.ErrorCode)
	assert.Equal(t, "Score dataset not found", err.Error())
	assert.Equal(t, "no such file", err.Details)
}
