package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/rendercore/cmd/mountctl/internal/scene"
	"github.com/go-drift/rendercore/pkg/semantics"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderReport(m *scene.Mounted) string {
	h := m.Host
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("id", "component", "content", "flags", "importance", "accessible", "snapshot").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, item := range h.Items() {
		data := item.Data()
		component := "-"
		if c := data.Component(); c != nil {
			component = c.Name()
		}
		t.Row(
			strconv.FormatUint(item.Descriptor().ID(), 10),
			component,
			fmt.Sprintf("%T", item.Content()),
			data.LayoutFlags().String(),
			data.Importance().String(),
			strconv.FormatBool(data.IsAccessible()),
			snapshot(data.IsViewClickable(), data.IsViewEnabled(), data.IsViewLongClickable(), data.IsViewFocusable(), data.IsViewSelected()),
		)
	}

	title := titleStyle.Render(fmt.Sprintf("%s: %d items, accessible=%t", h.Name(), h.ItemCount(), h.ImplementsAccessibility()))
	footer := fmt.Sprintf("pool: %d created", m.Pool.Created())
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render(), footer)
}

// snapshot renders the intrinsic state as a compact letter set, e.g. "c-l--".
func snapshot(values ...bool) string {
	const letters = "celfs"
	var sb strings.Builder
	for i, v := range values {
		if v {
			sb.WriteByte(letters[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

func renderSemantics(root *semantics.SemanticsNode) string {
	var sb strings.Builder
	root.Walk(func(n *semantics.SemanticsNode, depth int) {
		fmt.Fprintf(&sb, "%s#%d [%g,%g %gx%g]", strings.Repeat("  ", depth), n.ID,
			n.Rect.Left, n.Rect.Top, n.Rect.Width(), n.Rect.Height())
		if n.Parent != nil {
			fmt.Fprintf(&sb, " item=%d", n.ItemID)
		}
		if n.Config.Label != "" {
			fmt.Fprintf(&sb, " %q", n.Config.Label)
		}
		if n.Config.Actions != 0 {
			fmt.Fprintf(&sb, " actions=%s", n.Config.Actions)
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}
