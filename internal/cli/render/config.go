package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/catapult-sh/catapult/internal/domain"
)

var warnStyle = color.New(color.FgYellow)

// ConfigRenderer renders the connection settings.
type ConfigRenderer struct {
	out  io.Writer
	json bool
}

// NewConfigRenderer creates a ConfigRenderer.
func NewConfigRenderer(out io.Writer, json bool) *ConfigRenderer {
	return &ConfigRenderer{out: out, json: json}
}

// Render shows the settings. The private key is masked on the table surface
// only; the persisted value and the --json output stay clear text, which is
// the documented storage contract of this tool.
func (r *ConfigRenderer) Render(cfg domain.ConnectionConfig, storePath string) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"url", cfg.RPCURL})
	t.AppendRow(table.Row{"chain-id", formatChainID(cfg.ChainID)})
	t.AppendRow(table.Row{"private-key", maskKey(cfg.PrivateKey)})
	t.Render()

	if cfg.PrivateKey != "" {
		fmt.Fprintln(r.out, warnStyle.Sprintf("⚠ private key is stored unencrypted in %s", storePath))
	}
	return nil
}

func formatChainID(id int64) string {
	if id == domain.InvalidChainID {
		return "(invalid)"
	}
	return fmt.Sprintf("%d", id)
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	trimmed := strings.TrimPrefix(key, "0x")
	if len(trimmed) <= 8 {
		return "****"
	}
	return trimmed[:4] + strings.Repeat("*", 8) + trimmed[len(trimmed)-4:]
}
