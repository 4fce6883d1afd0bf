// Package report prints a dashboard as plain text tables for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"chat-stats/analytics"
	"chat-stats/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Renderer struct {
	w       io.Writer
	colours bool
}

func NewRenderer(w io.Writer, colours bool) Renderer {
	return Renderer{w: w, colours: colours}
}

// Scopes prints the participant selector, Overall first.
func (r Renderer) Scopes(scopes []string) {
	r.header("Participants")
	for i, scope := range scopes {
		fmt.Fprintf(r.w, "%2d. %s\n", i, scope)
	}
}

func (r Renderer) Dashboard(d analytics.Dashboard) {
	r.header("Summary: " + d.Scope)
	r.table([]string{"Messages", "Words", "Media", "Links"}, [][]string{{
		strconv.Itoa(d.Summary.Messages),
		strconv.Itoa(d.Summary.Words),
		strconv.Itoa(d.Summary.Media),
		strconv.Itoa(d.Summary.Links),
	}})

	r.header("Media shared")
	r.table([]string{"Kind", "Messages"}, termRows(d.MediaKinds))

	r.header("Links shared")
	rows := make([][]string, 0, len(d.Links))
	for _, l := range d.Links {
		rows = append(rows, []string{l.RecordID.String()[:8], l.At.Format(time.DateTime), l.Author, l.URL})
	}
	r.table([]string{"Ref", "Sent", "Author", "URL"}, rows)

	r.header("Monthly timeline")
	rows = make([][]string, 0, len(d.Monthly))
	for _, p := range d.Monthly {
		rows = append(rows, []string{p.Label, strconv.Itoa(p.Count)})
	}
	r.table([]string{"Month", "Messages"}, rows)

	r.header("Daily timeline")
	rows = make([][]string, 0, len(d.Daily))
	for _, p := range d.Daily {
		rows = append(rows, []string{p.Date.Format(time.DateOnly), strconv.Itoa(p.Count)})
	}
	r.table([]string{"Date", "Messages"}, rows)

	r.header("Most active day")
	r.table([]string{"Day", "Messages"}, bucketRows(d.Weekdays))

	r.header("Most active month")
	r.table([]string{"Month", "Messages"}, bucketRows(d.Months))

	r.header("Weekly activity heatmap")
	r.heatmap(d.Heatmap)

	r.header("Most active users")
	if d.Scope != domain.Overall {
		fmt.Fprintln(r.w, "Switch to Overall to rank participants.")
	} else {
		rows = make([][]string, 0, len(d.Participants))
		for _, p := range d.Participants {
			rows = append(rows, []string{p.Author, strconv.Itoa(p.Count), strconv.FormatFloat(p.Percent, 'f', 2, 64)})
		}
		r.table([]string{"Name", "Messages", "Percent"}, rows)
	}

	r.header("Most common words")
	r.table([]string{"Word", "Count"}, termRows(d.Words))

	r.header("Emojis")
	r.table([]string{"Emoji", "Count"}, termRows(d.Emojis))

	r.header("Languages")
	r.table([]string{"Language", "Messages"}, termRows(d.Languages))

	fmt.Fprintf(r.w, "\nWord cloud input: %d words\n", len(strings.Fields(d.WordCloud)))
}

func (r Renderer) heatmap(h analytics.Heatmap) {
	rows := make([][]string, 0, len(h.Days))
	for i, day := range h.Days {
		row := make([]string, 0, len(h.Buckets)+1)
		row = append(row, lo.Substring(day, 0, 3))
		for j := range h.Buckets {
			row = append(row, strconv.Itoa(h.Counts[i][j]))
		}
		rows = append(rows, row)
	}
	r.table(append([]string{"Day"}, h.Buckets...), rows)
}

func (r Renderer) header(title string) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if r.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintf(r.w, "\n%s\n", header)
}

func (r Renderer) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "No data available.")
		return
	}
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func bucketRows(buckets []analytics.Bucket) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count)})
	}
	return rows
}

func termRows(terms []analytics.TermCount) [][]string {
	rows := make([][]string, 0, len(terms))
	for _, t := range terms {
		rows = append(rows, []string{t.Term, strconv.Itoa(t.Count)})
	}
	return rows
}
