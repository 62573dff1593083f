package render

// Band periods per channel; 8 and 16 divide 32 so one table covers all three
const (
	periodR = 8
	periodG = 16
	periodB = 32

	stepR = 256 / periodR
	stepG = 256 / periodG
	stepB = 256 / periodB
)

// Lookup table indexed by v mod 32, filled at init to keep the colour loop branch-free
var bandTable [periodB]RGB

func init() {
	for v := range bandTable {
		bandTable[v] = RGB{
			R: uint8(v % periodR * stepR),
			G: uint8(v % periodG * stepG),
			B: uint8(v % periodB * stepB),
		}
	}
}

// Band maps an escape value to its colour: R=(v mod 8)·32, G=(v mod 16)·16, B=(v mod 32)·8
// Bounded samples get whatever band their sentinel value lands on
func Band(v int) RGB {
	return bandTable[v&(periodB-1)]
}
