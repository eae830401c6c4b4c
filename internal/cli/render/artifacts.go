package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ArtifactsRenderer renders the loaded artifact set.
type ArtifactsRenderer struct {
	out  io.Writer
	json bool
}

// NewArtifactsRenderer creates an ArtifactsRenderer.
func NewArtifactsRenderer(out io.Writer, json bool) *ArtifactsRenderer {
	return &ArtifactsRenderer{out: out, json: json}
}

// Render lists the artifacts in directory-listing order; the selected
// artifact (the first one) is marked as the deploy default.
func (r *ArtifactsRenderer) Render(set *domain.ArtifactSet) error {
	if r.json {
		names := lo.Map(set.Order, func(key string, _ int) string {
			return set.Contracts[key].Name
		})
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	if set.Len() == 0 {
		fmt.Fprintln(r.out, "No contract artifacts found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Constructor Args", "Bytecode", ""})

	for _, key := range set.Order {
		artifact := set.Contracts[key]
		marker := ""
		if key == set.Selected {
			marker = "(default)"
		}
		t.AppendRow(table.Row{
			artifact.Name,
			len(artifact.ConstructorInputs()),
			fmt.Sprintf("%d bytes", bytecodeSize(artifact.Bytecode)),
			marker,
		})
	}

	t.Render()
	return nil
}

func bytecodeSize(hexStr string) int {
	n := len(hexStr)
	if n >= 2 && hexStr[0] == '0' && (hexStr[1] == 'x' || hexStr[1] == 'X') {
		n -= 2
	}
	return n / 2
}
