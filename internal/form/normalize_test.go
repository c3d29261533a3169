package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeInput(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"14:30:00", "14:30"},
		{"14:30", "14:30"},
		{"2024-05-01 14:30:00", "14:30"},
		{"2024-05-01T07:05:00.000000Z", "07:05"},
		{"", ""},
		{"soon", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, TimeInput(tc.in), tc.in)
	}
}

func TestDateInput(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2024-05-01 14:30:00", "2024-05-01"},
		{"2024-05-01T00:00:00.000000Z", "2024-05-01"},
		{"2024-05-01", "2024-05-01"},
		{"14:30:00", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, DateInput(tc.in), tc.in)
	}
}
