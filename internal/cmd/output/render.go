package output

import (
	"io"

	"github.com/melodex/melodex/internal/cmd/table"
)

// Render writes a report in the requested format: the table rendering for
// terminals, or the raw rows marshaled for json/yaml.
func Render(w io.Writer, format Format, rows any, tableData table.Data) error {
	formatter := NewFormatter(format)
	if format == FormatJSON || format == FormatYAML {
		return formatter.Format(w, rows)
	}
	return formatter.Format(w, tableData)
}
