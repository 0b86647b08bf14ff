package report

import (
	"fmt"
	"io"
	"strconv"

	"lastinstance/process"
	"lastinstance/terminate"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// PrintProcesses writes a PID / Name / Elapsed Time table followed by a blank line.
func PrintProcesses(w io.Writer, records []process.ProcessRecord) error {
	t := NewTable(
		ColumnSpec{Header: "PID", MinWidth: 6},
		ColumnSpec{Header: "Name", MinWidth: 12},
		ColumnSpec{Header: "Elapsed Time (Secs.)"},
	)
	for _, r := range records {
		t.AddRow(strconv.Itoa(int(r.PID)), r.Name, strconv.FormatUint(r.ElapsedSeconds(), 10))
	}

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// PrintReport writes one row per attempted PID and a summary line.
// With color set, outcomes are highlighted.
func PrintReport(w io.Writer, report *terminate.Report, color bool) error {
	outcome := ColumnSpec{Header: "Outcome"}
	if color {
		outcome.FormatFunc = colorOutcome
	}

	t := NewTable(
		ColumnSpec{Header: "PID", MinWidth: 6},
		ColumnSpec{Header: "Name", MinWidth: 12},
		outcome,
		ColumnSpec{Header: "Reason", BlankValue: " "},
	)
	for _, res := range report.Results() {
		reason := ""
		if res.Err != nil {
			reason = res.Err.Error()
		}
		t.AddRow(strconv.Itoa(int(res.Record.PID)), res.Record.Name, res.Outcome.String(), reason)
	}

	if t.Len() > 0 {
		if err := t.Render(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, report.String())
	return err
}

func colorOutcome(s string) string {
	switch s {
	case terminate.Terminated.String():
		return coloransi.Foreground(coloransi.Green, s)
	case terminate.AlreadyGone.String():
		return coloransi.Foreground(coloransi.Yellow, s)
	case terminate.Failed.String():
		return coloransi.Foreground(coloransi.Red, s)
	}
	return s
}
