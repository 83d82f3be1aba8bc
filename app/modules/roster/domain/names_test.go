package rosterdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Jovan Reyes (TR-AS)", "Jovan Reyes"},
		{"Mariel Santos (Guest)", "Mariel Santos"},
		{`  "Anthony   Cruz"  `, "Anthony Cruz"},
		{"Yeh, Jenn", "Jenn Yeh"},
		{"Dela Cruz, Maria Celine (TS-AS)", "Maria Celine Dela Cruz"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.in))
		})
	}
}

func TestNormalizeForMatching(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"José Peña", "jose pena"},
		{"Zoë O’Brien (Guest)", "zoe o'brien"},
		{"CHRISTOPHER  Lim.", "christopher lim"},
		{"Ñino Müller-Díaz", "nino muller-diaz"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeForMatching(tt.in))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Maria Cruz", DisplayName("Maria Celine Dela Cruz"))
	assert.Equal(t, "Cher", DisplayName("Cher"))
	assert.Equal(t, "Jovan Reyes", DisplayName("Jovan Reyes (TR-AS)"))
	assert.Equal(t, "", DisplayName("   "))
}

func TestSharedTokens(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "reordered", a: "Reyes, Jovan", b: "Jovan Reyes", want: 2},
		{name: "middle name extra", a: "Maria Celine Dela Cruz", b: "Celine Cruz", want: 2},
		{name: "accents ignored", a: "José Peña", b: "Jose Pena", want: 2},
		{name: "initial ignored", a: "A. Cruz", b: "Anthony A Cruz", want: 1},
		{name: "no overlap", a: "Mariel Santos", b: "Christopher Lim", want: 0},
		{name: "duplicates counted once", a: "Lim Lim", b: "Lim", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SharedTokens(tt.a, tt.b))
		})
	}
}
