package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pingdash/internal/models"
	"pingdash/internal/state"
)

// WriteText prints the dashboard as plain text. A nil snapshot prints every
// section with blank values.
func WriteText(out io.Writer, snap *state.Snapshot) error {
	var (
		sys   *models.SystemInfo
		netw  *models.NetworkInfo
		pings *models.PingResultSet
	)
	if snap != nil {
		sys, netw, pings = &snap.System, &snap.Network, &snap.Pings
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	writeFields(w, "System Information", sys.Fields())
	writeFields(w, "Network Information", netw.Fields())

	r := Render(pings)
	writeRows(w, SuccessfulSheet, r.Successful)
	writeRows(w, UnsuccessfulSheet, r.Unsuccessful)

	return w.Flush()
}

func writeFields(w io.Writer, title string, fields []models.Field) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("═", 50))
	for _, f := range fields {
		fmt.Fprintf(w, "%s:\t%s\n", f.Label, f.Value)
	}
	fmt.Fprintln(w)
}

func writeRows(w io.Writer, title string, rows []Row) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(rows))
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintln(w, "IP\tSTATUS\tRESULT")
	for _, row := range rows {
		fmt.Fprintf(w, "%s:\t%s\t%s\n", row.IP, row.Label, row.Text)
	}
	fmt.Fprintln(w)
}
