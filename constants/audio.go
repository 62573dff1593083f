package constants

import "time"

// Tick cue, played when the quality level rises
const (
	TickBaseFrequency = 440.0
	TickSoundDuration = 40 * time.Millisecond
	TickSoundAttack   = 3 * time.Millisecond
	TickSoundRelease  = 25 * time.Millisecond
)

// Chime cue, played when refinement settles
const (
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeNote1Duration = 120 * time.Millisecond
	ChimeNote1Release  = 90 * time.Millisecond
	ChimeNote2Duration = 450 * time.Millisecond
	ChimeNote2Release  = 400 * time.Millisecond
)

// SpeakerBuffer is the speaker buffer length
const SpeakerBuffer = 100 * time.Millisecond
