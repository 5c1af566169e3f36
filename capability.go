package stego

// OutputMode selects which text Hide reports as its primary result.
type OutputMode string

const (
	// OutputStego returns the text carrying the hidden payload.
	OutputStego OutputMode = "stego"

	// OutputPlain returns the untouched cover text. The steganographic
	// variant is still available on the Result.
	OutputPlain OutputMode = "plain"
)

// validOutputModes contains all valid output modes for option validation.
var validOutputModes = map[OutputMode]bool{
	OutputStego: true,
	OutputPlain: true,
}

// IsValidOutputMode returns true if the mode is a known output mode.
func IsValidOutputMode(mode OutputMode) bool {
	return validOutputModes[mode]
}
