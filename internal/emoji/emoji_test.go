package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"complete", Success},
		{"in_progress", InProgress},
		{"not_started", NotStarted},
		{"minimal", Minimal},
		{"error", Error},
		{"unknown", Unknown},
		{"drafted", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ForStatus(tt.status))
		})
	}
}

func TestCheck(t *testing.T) {
	assert.Equal(t, Success, Check(true))
	assert.Equal(t, Error, Check(false))
}
