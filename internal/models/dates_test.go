package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", input: "2024-01-31", want: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp keeps its calendar day", input: "2024-02-01T23:30:00+02:00", want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "next week", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, tt.want.Format(DateLayout), FormatDate(got))
		})
	}
}
