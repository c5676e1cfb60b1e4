package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Renderer draws boards. The zero value is not usable; use New or Plain.
type Renderer struct {
	glyphs [markerCount]string
	styles [markerCount]lipgloss.Style
	cursor lipgloss.Style
	color  bool
}

var plainGlyphs = [markerCount]string{".", "#", "S", "G", "o", "x", "*"}

// New returns a lipgloss renderer with the visualizer's palette: black walls,
// green endpoints, blue path, yellow open and purple closed cells.
func New() *Renderer {
	r := &Renderer{color: true}
	for m := Marker(0); m < markerCount; m++ {
		r.glyphs[m] = "  "
	}
	bg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Background(lipgloss.Color(c)) }
	r.styles = [markerCount]lipgloss.Style{
		Free:   bg("#FFFFFF"),
		Wall:   bg("#000000"),
		Start:  bg("#00FF00"),
		Goal:   bg("#00FF00"),
		Open:   bg("#FFFF00"),
		Closed: bg("#800080"),
		Path:   bg("#0000FF"),
	}
	r.glyphs[Start] = "S "
	r.glyphs[Goal] = "G "
	r.cursor = lipgloss.NewStyle().Reverse(true).Bold(true)

	return r
}

// Plain returns a renderer that writes one ASCII character per cell.
func Plain() *Renderer {
	return &Renderer{glyphs: plainGlyphs}
}

// Render draws b, one line per row.
func (r *Renderer) Render(b *Board) string {
	return r.render(b, nil)
}

// RenderCursor draws b with the cell under cursor highlighted.
func (r *Renderer) RenderCursor(b *Board, cursor gridgraph.Cell) string {
	return r.render(b, &cursor)
}

func (r *Renderer) render(b *Board, cursor *gridgraph.Cell) string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			m := b.At(c)
			if cursor != nil && *cursor == c {
				sb.WriteString(r.renderCursor(m))
				continue
			}
			sb.WriteString(r.cell(m))
		}
	}
	return sb.String()
}

func (r *Renderer) cell(m Marker) string {
	if !r.color {
		return r.glyphs[m]
	}
	return r.styles[m].Render(r.glyphs[m])
}

func (r *Renderer) renderCursor(m Marker) string {
	if !r.color {
		return "@"
	}
	return r.cursor.Inherit(r.styles[m]).Render("[]")
}

// Legend describes the glyphs of a plain renderer, or the colours of a
// styled one.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, markerCount)
	for m := Marker(0); m < markerCount; m++ {
		parts = append(parts, r.cell(m)+" "+m.String())
	}
	return strings.Join(parts, "  ")
}

// WriteCodes writes the board's numeric codes in the grid text format.
func WriteCodes(w io.Writer, b *Board) error {
	return gridgraph.Encode(w, b.Codes())
}
