package jumplist

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary returns the one-line outcome of the batch.
func (b *Batch) Summary() string {
	return fmt.Sprintf("Processed %s out of %s files in %.4f seconds",
		humanize.Comma(int64(b.Processed())), humanize.Comma(int64(b.Total)), b.Elapsed.Seconds())
}

// WriteReport writes the summary line followed by the failed and skipped
// files, if any.
func (b *Batch) WriteReport(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, b.Summary())

	if len(b.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed files: %d\n", len(b.Failures))
		writeFailures(w, b.Failures)
	}
	if len(b.Skipped) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skipped files: %d\n", len(b.Skipped))
		writeFailures(w, b.Skipped)
	}
}

func writeFailures(w io.Writer, failures []Failure) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"File", "Kind", "Message"})
	for _, f := range failures {
		tw.AppendRow(table.Row{f.File, string(f.Kind), f.Err.Error()})
	}
	tw.Render()
}
