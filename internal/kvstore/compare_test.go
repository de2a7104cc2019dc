package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "a", "a", 0},
		{"equal ignoring case", "Key", "KEY", 0},
		{"alphabetical", "a", "b", -1},
		{"numeric by value", "2", "10", -1},
		{"numeric before string", "10", "a", -1},
		{"string after numeric", "a", "10", 1},
		{"shared prefix shorter first", "a", "a:b", -1},
		{"numeric segments nested", "items:2", "items:10", -1},
		{"equal value literal order", "01", "1", -1},
		{"case-insensitive segments", "A:b", "a:B", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			switch tt.want {
			case 0:
				assert.Zero(t, got)
			case -1:
				assert.Negative(t, got)
			default:
				assert.Positive(t, got)
			}
		})
	}
}
