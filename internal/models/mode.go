package models

// Mode selects which pair of decks a game is played with
type Mode string

const (
	// ModeSFW is the family-friendly deck pair
	ModeSFW Mode = "sfw"

	// ModeNSFW is the adults-only deck pair
	ModeNSFW Mode = "nsfw"
)

// Modes lists every playable mode
func Modes() []Mode {
	return []Mode{ModeSFW, ModeNSFW}
}

// Valid reports whether m names a known mode
func (m Mode) Valid() bool {
	return m == ModeSFW || m == ModeNSFW
}
