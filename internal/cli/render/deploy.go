package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/catapult-sh/catapult/internal/domain"
)

// DeployRenderer renders the result of a confirmed deployment.
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a DeployRenderer.
func NewDeployRenderer(out io.Writer, json bool) *DeployRenderer {
	return &DeployRenderer{out: out, json: json}
}

// Render shows the deployed record.
func (r *DeployRenderer) Render(rec *domain.DeployedRecord) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	bold := color.New(color.Bold)
	fmt.Fprintf(r.out, "%s deployed\n", bold.Sprint(rec.ContractName))
	fmt.Fprintf(r.out, "  address:  %s\n", addressStyle.Sprint(rec.Address))
	fmt.Fprintf(r.out, "  network:  %s\n", rec.Network)
	fmt.Fprintf(r.out, "  time:     %s\n", timestampStyle.Sprint(rec.Timestamp))
	if len(rec.Args) > 0 {
		fmt.Fprintf(r.out, "  args:     %s\n", formatArgs(rec.Args))
	}
	return nil
}
