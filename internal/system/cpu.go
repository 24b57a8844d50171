package system

import "strings"

// Family is the CPU family a system's templates are generated for.
type Family int

const (
	// FamilyGeneric covers every CPU without a dedicated template.
	FamilyGeneric Family = iota
	// Family6502 covers the 6502 and its 6507 derivative.
	Family6502
	// FamilyZ80 covers the Zilog Z80.
	FamilyZ80
	// Family68000 covers the Motorola 68000.
	Family68000
)

// ClassifyCPU resolves a free-text CPU tag to its family.
// Matching is case-insensitive and exact; surrounding spaces are not trimmed.
func ClassifyCPU(tag string) Family {
	switch strings.ToLower(tag) {
	case "6502", "6507":
		return Family6502
	case "z80":
		return FamilyZ80
	case "68000":
		return Family68000
	default:
		return FamilyGeneric
	}
}

func (f Family) String() string {
	switch f {
	case Family6502:
		return "6502"
	case FamilyZ80:
		return "z80"
	case Family68000:
		return "68000"
	default:
		return "generic"
	}
}
