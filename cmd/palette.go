package cmd

// Palette is the color picker: a fixed set of swatches plus the current pick.
// The pick may be any valid color, not only a swatch.
type Palette struct {
	Swatches []string
	selected string
}

var DefaultSwatches = []string{
	"#ff0000", "#ff8000", "#ffff00", "#00ff00",
	"#00ffff", "#0000ff", "#ff00ff", "#ffffff",
}

func NewPalette(initial string) *Palette {
	return &Palette{Swatches: DefaultSwatches, selected: initial}
}

func (p *Palette) SelectedColor() string {
	return p.selected
}

func (p *Palette) Select(color string) {
	p.selected = color
}

// Swatch returns the n-th swatch (0-based), or "" if there is none.
func (p *Palette) Swatch(n int) string {
	if n < 0 || n >= len(p.Swatches) {
		return ""
	}
	return p.Swatches[n]
}
