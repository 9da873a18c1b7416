package sheets

import "strings"

// ParseCSV tokenizes raw CSV text into rows of trimmed fields.
//
// The scanner walks the text once, tracking whether it is inside a quoted
// field. A doubled quote ("") inside a field becomes one literal quote.
// Commas and newlines inside quotes are literal, so a quoted cell may span
// multiple physical lines. An unterminated quote at end of input flushes
// whatever was accumulated instead of failing; the whole parse is
// best-effort and never returns an error.
func ParseCSV(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	flushField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if i+1 < len(text) && text[i+1] == '"' {
				// Escaped quote: emit one literal " and skip the second
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			flushField()
		case c == '\n' && !inQuotes:
			flushField()
			rows = append(rows, row)
			row = nil
		default:
			field.WriteByte(c)
		}
	}

	// End of input: flush anything still pending. A trailing newline or a
	// whitespace-only trailing line leaves nothing worth keeping, so no
	// empty row is appended for those.
	if strings.TrimSpace(field.String()) != "" || len(row) > 0 {
		flushField()
		rows = append(rows, row)
	}

	return rows
}
