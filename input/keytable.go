package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns arrows and h/j/k/l for panning, q/Esc/Ctrl+C/Ctrl+Q for quitting
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentPan, Direction: DirUp},
			tcell.KeyDown:   {Intent: IntentPan, Direction: DirDown},
			tcell.KeyLeft:   {Intent: IntentPan, Direction: DirLeft},
			tcell.KeyRight:  {Intent: IntentPan, Direction: DirRight},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'k': {Intent: IntentPan, Direction: DirUp},
			'j': {Intent: IntentPan, Direction: DirDown},
			'h': {Intent: IntentPan, Direction: DirLeft},
			'l': {Intent: IntentPan, Direction: DirRight},
		},
	}
}

// Lookup resolves a key and its rune (for tcell.KeyRune) to a binding
func (kt *KeyTable) Lookup(key tcell.Key, r rune) KeyEntry {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
