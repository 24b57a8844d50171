package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCPU(t *testing.T) {
	tests := []struct {
		tag  string
		want Family
	}{
		{"6502", Family6502},
		{"6507", Family6502},
		{"Z80", FamilyZ80},
		{"z80", FamilyZ80},
		{"68000", Family68000},
		{"ARM2", FamilyGeneric},
		{"6809", FamilyGeneric},
		{"", FamilyGeneric},
		{" z80", FamilyGeneric},
		{"65C02", FamilyGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCPU(tt.tag))
		})
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "6502", Family6502.String())
	assert.Equal(t, "z80", FamilyZ80.String())
	assert.Equal(t, "68000", Family68000.String())
	assert.Equal(t, "generic", FamilyGeneric.String())
}
