package display

import "strings"

// Sheet is a two-column list of labelled values, grouped into sections.
type Sheet struct {
	rows []sheetRow
}

type sheetRow struct {
	label, value string
	section      bool
}

// Section starts a new titled group.
func (s *Sheet) Section(title string) {
	s.rows = append(s.rows, sheetRow{label: title, section: true})
}

// Add appends a labelled value.
func (s *Sheet) Add(label, value string) {
	s.rows = append(s.rows, sheetRow{label: label, value: value})
}

// Render aligns every value on one column.
func (s *Sheet) Render() string {
	width := 0
	for _, r := range s.rows {
		if !r.section {
			width = max(width, Width(r.label))
		}
	}

	var sb strings.Builder
	for i, r := range s.rows {
		if r.section {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("  " + Bold(r.label) + "\n")
			continue
		}
		sb.WriteString("  " + Gray(pad(r.label, width, false)) + "  " + r.value + "\n")
	}
	return sb.String()
}
