package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/catapult-sh/catapult/internal/domain"
)

var (
	countBadgeStyle = color.New(color.Bold, color.FgHiWhite)
	addressStyle    = color.New(color.FgCyan)
	timestampStyle  = color.New(color.Faint)
)

// HistoryRenderer renders the deployment history list.
type HistoryRenderer struct {
	out  io.Writer
	json bool
}

// NewHistoryRenderer creates a HistoryRenderer; json switches to raw output.
func NewHistoryRenderer(out io.Writer, json bool) *HistoryRenderer {
	return &HistoryRenderer{out: out, json: json}
}

// Render shows the records in insertion order, newest last. No filtering,
// sorting or pagination.
func (r *HistoryRenderer) Render(history []domain.DeployedRecord) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	}

	if len(history) == 0 {
		fmt.Fprintln(r.out, "No deployments yet")
		return nil
	}

	fmt.Fprintln(r.out, countBadgeStyle.Sprintf("Deployment History (%d)", len(history)))

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Contract", "Address", "Network", "Deployed", "Args"})

	for i, rec := range history {
		t.AppendRow(table.Row{
			i + 1,
			rec.ContractName,
			addressStyle.Sprint(rec.Address),
			rec.Network,
			timestampStyle.Sprint(rec.Timestamp),
			formatArgs(rec.Args),
		})
	}

	t.Render()
	fmt.Fprintln(r.out, infoStyle.Sprint("Copy an address with: catapult history copy <#|address>"))
	return nil
}

func formatArgs(args domain.FormValues) string {
	if len(args) == 0 {
		return ""
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%s", name, args[name]))
	}
	return strings.Join(pairs, ", ")
}
