package errors_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/novelstat/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := pkgerrors.NewNotFoundError("progress file", "planning/plot-progress.json")
	assert.Equal(t, "progress file planning/plot-progress.json not found", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))

	wrapped := fmt.Errorf("load: %w", err)
	assert.True(t, pkgerrors.IsNotFound(wrapped))
	assert.False(t, pkgerrors.IsValidationError(wrapped))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ValidationError
		want string
	}{
		{
			name: "with field",
			err:  &pkgerrors.ValidationError{Field: "interval", Value: "0s", Message: "must be at least 1s"},
			want: "validation failed for field interval: must be at least 1s",
		},
		{
			name: "without field",
			err:  &pkgerrors.ValidationError{Message: "flags conflict"},
			want: "validation failed: flags conflict",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsValidationError(tt.err))
		})
	}
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad value")
	err := pkgerrors.NewConfigError("viper", "cannot read interval", base)
	assert.Equal(t, "configuration error in viper: cannot read interval", err.Error())
	assert.ErrorIs(t, err, base)

	err = pkgerrors.NewConfigError("", "missing", nil)
	assert.Equal(t, "configuration error: missing", err.Error())
}

func TestWrapJSONPosition(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		target     any
		wantLine   int
		wantColumn int // 0 means any column
	}{
		{
			name:       "syntax error on second line",
			data:       "{\n  \"novel_title\": ,\n}",
			target:     &map[string]any{},
			wantLine:   2,
			wantColumn: 18,
		},
		{
			name:     "type error",
			data:     `{"words": "many"}`,
			target:   &struct{ Words int }{},
			wantLine: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decodeErr := json.Unmarshal([]byte(tt.data), tt.target)
			require.Error(t, decodeErr)

			err := pkgerrors.WrapJSON("chapter-status.json", []byte(tt.data), decodeErr)
			var parseErr *pkgerrors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "json", parseErr.Format)
			assert.Equal(t, tt.wantLine, parseErr.Line)
			if tt.wantColumn > 0 {
				assert.Equal(t, tt.wantColumn, parseErr.Column)
			} else {
				assert.Positive(t, parseErr.Column)
			}
			assert.Contains(t, err.Error(), fmt.Sprintf("chapter-status.json:%d:", tt.wantLine))
		})
	}

	t.Run("no offset", func(t *testing.T) {
		err := pkgerrors.WrapJSON("a.json", []byte(`{}`), errors.New("trailing data"))
		var parseErr *pkgerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Zero(t, parseErr.Line)
		assert.Equal(t, "parse error in json file a.json: trailing data", err.Error())
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapJSON("a.json", nil, nil))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("read", "chapter-01.md", base)
	assert.Equal(t, "IO error during read of chapter-01.md: permission denied", err.Error())

	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Operation)
	assert.ErrorIs(t, err, base)
	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(context.Canceled))
	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("render: %w", context.Canceled)))
	assert.False(t, pkgerrors.IsCanceled(context.DeadlineExceeded))
	assert.False(t, pkgerrors.IsCanceled(nil))
}
