package urgency

// Palette is a background/foreground color pair. Values are CSS-style hex
// strings so both the TUI and the CLI can render them.
type Palette struct {
	Background string
	Foreground string
}

const (
	gray      = "#808080"
	red       = "#FF0000"
	orange    = "#FFA500"
	green     = "#008000"
	lightBlue = "#ADD8E6"
	white     = "#FFFFFF"
	black     = "#000000"
)

var palettes = map[Bucket]Palette{
	Completed:        {Background: gray, Foreground: white},
	OverdueOrDueSoon: {Background: red, Foreground: white},
	DueThisWeek:      {Background: orange, Foreground: black},
	DueInTwoWeeks:    {Background: green, Foreground: black},
	DueLater:         {Background: lightBlue, Foreground: black},
}

// Colors returns the fixed palette for b. ok is false for Unclassified and
// unknown buckets.
func Colors(b Bucket) (Palette, bool) {
	p, ok := palettes[b]
	return p, ok
}
