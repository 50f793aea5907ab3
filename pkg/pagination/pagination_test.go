package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rawLimit  string
		rawOffset string
		want      Window
	}{
		{"both missing", "", "", Window{Limit: DefaultLimit, Offset: 0}},
		{"both valid", "10", "30", Window{Limit: 10, Offset: 30}},
		{"negative values", "-5", "-10", Window{Limit: DefaultLimit, Offset: 0}},
		{"zero limit", "0", "0", Window{Limit: DefaultLimit, Offset: 0}},
		{"non-numeric", "abc", "xyz", Window{Limit: DefaultLimit, Offset: 0}},
		{"float rejected", "2.5", "1.5", Window{Limit: DefaultLimit, Offset: 0}},
		{"limit above cap", "5000", "50", Window{Limit: MaxLimit, Offset: 50}},
		{"limit at cap", "100", "0", Window{Limit: 100, Offset: 0}},
		{"valid limit bad offset", "40", "first", Window{Limit: 40, Offset: 0}},
		{"bad limit valid offset", "", "75", Window{Limit: DefaultLimit, Offset: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Compute(tt.rawLimit, tt.rawOffset))
		})
	}
}
