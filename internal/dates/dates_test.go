package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-05", wantErr: false},
		{name: "leap day", input: "2024-02-29", wantErr: false},
		{name: "unpadded month", input: "2024-1-05", wantErr: true},
		{name: "unpadded day", input: "2024-01-5", wantErr: true},
		{name: "time suffix", input: "2024-01-05T10:00:00Z", wantErr: true},
		{name: "slashes", input: "2024/01/05", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "nonsense", input: "next tuesday", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, Format(parsed))
		})
	}
}

func TestFormatDropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-01-05", Format(ts))
}

func TestOrdering(t *testing.T) {
	assert.True(t, Before("2024-01-04", "2024-01-05"))
	assert.False(t, Before("2024-01-05", "2024-01-05"))
	assert.True(t, After("2024-02-01", "2024-01-31"))
	assert.False(t, After("2024-01-05", "2024-01-05"))

	// Cross-year boundary stays in calendar order lexicographically.
	assert.True(t, Before("2023-12-31", "2024-01-01"))
}
