package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/tui"
)

const dateLayout = "2006-01-02 15:04"

// table aligns rows of tab separated cells.
type table struct {
	*tabwriter.Writer
}

func newTable(out io.Writer) *table {
	return &table{tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
}

func (t *table) row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t, strings.Join(parts, "\t"))
}

func title(out io.Writer, text string) {
	fmt.Fprintln(out, tui.TitleStyle.Render(text))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return orDash(*s)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
