package input

// IntentType discriminates what a key press asks for
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPan
)

// KeyEntry describes one binding
type KeyEntry struct {
	Intent    IntentType
	Direction Direction
}
