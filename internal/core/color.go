package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightMagenta
	ColorOrange
	ColorGray
)

// brickPalette walks the hue wheel in 60 degree steps, one color per row.
var brickPalette = []Color{
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// RowColor returns the brick color for a row index.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return brickPalette[row%len(brickPalette)]
}
