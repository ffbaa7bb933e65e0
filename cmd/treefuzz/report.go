package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderRun(w io.Writer, results []*result) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Tree", "Ops", "Size", "Height", "Time", "Digest", "Status"})
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = r.err.Error()
		}
		t.AppendRow(table.Row{
			r.String(),
			humanize.Comma(int64(r.ops)),
			humanize.Comma(int64(r.size)),
			r.height,
			r.elapsed.Round(time.Microsecond),
			fmt.Sprintf("%016x", r.digest),
			status,
		})
	}
	t.Render()
}

func renderBench(w io.Writer, n int, ts []timing) {
	t := newTable(w)
	t.SetTitle("%s keys, ns/op", humanize.Comma(int64(n)))
	t.AppendHeader(table.Row{"Container", "Insert", "Search", "Remove"})
	for _, x := range ts {
		t.AppendRow(table.Row{x.name, x.insert.Nanoseconds(), x.search.Nanoseconds(), x.remove.Nanoseconds()})
	}
	t.Render()
}
