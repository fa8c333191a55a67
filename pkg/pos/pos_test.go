package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanContainment(t *testing.T) {
	span := NewSpan(
		Location{Line: 1, Column: 1, Absolute: 0},
		Location{Line: 1, Column: 5, Absolute: 4},
	)

	cases := []struct {
		name string
		loc  Location
		want Containment
	}{
		{"at start", Location{Line: 1, Column: 1, Absolute: 0}, Equal},
		{"mid span", Location{Line: 1, Column: 3, Absolute: 2}, Equal},
		{"one before end is still inside", Location{Line: 1, Column: 4, Absolute: 3}, Equal},
		{"at end is greater", Location{Line: 1, Column: 5, Absolute: 4}, Greater},
		{"past end", Location{Line: 1, Column: 9, Absolute: 8}, Greater},
		{"strictly less", Location{Line: 0, Column: 0, Absolute: -1}, Less},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, span.Containment(c.loc))
		})
	}
}

func TestEofSentinel(t *testing.T) {
	assert.True(t, Eof.IsEof())
	assert.False(t, Location{Line: 1, Column: 1, Absolute: 0}.IsEof())
	assert.Equal(t, "EOF", Eof.String())
}
