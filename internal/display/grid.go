package display

import "strings"

// Grid lays out cells in week rows under a fixed header, leaving blank
// cells before the first one.
type Grid struct {
	headers   []string
	offset    int
	cells     [][]string
	highlight int
}

// NewGrid creates a grid with one column per header. offset blank cells
// come before the first cell.
func NewGrid(headers []string, offset int) *Grid {
	return &Grid{headers: headers, offset: offset, highlight: -1}
}

// Add appends a cell. Each line of a cell is printed on its own row.
func (g *Grid) Add(lines ...string) {
	g.cells = append(g.cells, lines)
}

// SetHighlight marks the cell at index idx (0-based, ignoring the offset).
func (g *Grid) SetHighlight(idx int) {
	g.highlight = idx
}

// Render produces the grid with leading indent.
func (g *Grid) Render() string {
	cols := len(g.headers)
	if cols == 0 {
		return ""
	}

	width := 0
	height := 1
	for _, h := range g.headers {
		width = max(width, Width(h))
	}
	for _, c := range g.cells {
		height = max(height, len(c))
		for _, line := range c {
			width = max(width, Width(line))
		}
	}

	var sb strings.Builder
	head := make([]string, cols)
	for i, h := range g.headers {
		head[i] = pad(h, width, false)
	}
	sb.WriteString("  " + Bold(strings.Join(head, " ")) + "\n")
	sb.WriteString(Dim("  "+strings.Repeat("─", cols*(width+1)-1)) + "\n")

	total := g.offset + len(g.cells)
	for start := 0; start < total; start += cols {
		for line := 0; line < height; line++ {
			parts := make([]string, cols)
			for col := 0; col < cols; col++ {
				idx := start + col - g.offset
				text := ""
				if idx >= 0 && idx < len(g.cells) && line < len(g.cells[idx]) {
					text = g.cells[idx][line]
				}
				text = pad(text, width, false)
				if idx == g.highlight && idx >= 0 {
					text = Accent(text)
				} else if line > 0 {
					text = Gray(text)
				}
				parts[col] = text
			}
			sb.WriteString("  " + strings.TrimRight(strings.Join(parts, " "), " ") + "\n")
		}
	}
	return sb.String()
}
