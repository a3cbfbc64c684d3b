package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset string
		wantLimit     int
		wantOffset    int
		ok            bool
	}{
		{"defaults", "", "", DefaultLimit, 0, true},
		{"explicit", "20", "40", 20, 40, true},
		{"capped", "10000", "", MaxLimit, 0, true},
		{"zero limit", "0", "", 0, 0, false},
		{"negative offset", "", "-1", 0, 0, false},
		{"not a number", "ten", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, ok := Page(tt.limit, tt.offset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
