package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lexiconlabs/counsel/pkg/genui"
	"github.com/lexiconlabs/counsel/pkg/logger"
)

// Renderer maps documents onto styled console output. It consumes the
// Document shape only: which widget a kind tag selects, how consecutive
// cards group, and what an unknown kind does are all decided here, never
// by the engine.
type Renderer struct {
	width       int
	highlighter *highlighter

	cardStyle        lipgloss.Style
	warningCardStyle lipgloss.Style
	errorCardStyle   lipgloss.Style
	headerStyle      lipgloss.Style
	groupStyle       lipgloss.Style
	placeholderStyle lipgloss.Style
	dividerStyle     lipgloss.Style
	textStyle        lipgloss.Style
}

// NewRenderer creates a console renderer. With color disabled only layout
// styling applies, which keeps output readable in logs and dumb terminals.
func NewRenderer(width int, color bool) *Renderer {
	if width <= 0 {
		width = 100
	}

	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 4)

	r := &Renderer{
		width:       width,
		highlighter: newHighlighter(color),

		cardStyle:        base,
		warningCardStyle: base,
		errorCardStyle:   base,
		headerStyle:      lipgloss.NewStyle().Bold(true),
		groupStyle:       lipgloss.NewStyle().MarginLeft(2),
		placeholderStyle: lipgloss.NewStyle().Faint(true).Italic(true),
		dividerStyle:     lipgloss.NewStyle().Faint(true),
		textStyle:        lipgloss.NewStyle().Width(width),
	}

	if color {
		r.cardStyle = base.BorderForeground(lipgloss.Color("#555555"))
		r.warningCardStyle = base.BorderForeground(lipgloss.Color("#FFB000"))
		r.errorCardStyle = base.BorderForeground(lipgloss.Color("#FF6347"))
		r.headerStyle = r.headerStyle.Foreground(lipgloss.Color("#98FB98"))
	}

	return r
}

// Document renders one snapshot. Components render in arrival order;
// consecutive components of the same card kind group under one header.
// While the document is still streaming, expected-type hints beyond the
// components already arrived show as placeholders.
func (r *Renderer) Document(doc genui.Document) string {
	var b strings.Builder

	header := doc.ID
	if doc.Metadata.Agent != "" {
		header = fmt.Sprintf("%s · %s", doc.ID, doc.Metadata.Agent)
	}
	if doc.Metadata.Collapsible {
		header += " (done)"
	}
	b.WriteString(r.headerStyle.Render(header))
	b.WriteString("\n")

	for _, group := range groupComponents(doc.Components) {
		if len(group) > 1 && isCardKind(group[0].Type.Normalize()) {
			b.WriteString(r.groupStyle.Render(fmt.Sprintf("%s ×%d", group[0].Type, len(group))))
			b.WriteString("\n")
		}
		for _, component := range group {
			if rendered := r.Component(component); rendered != "" {
				b.WriteString(rendered)
				b.WriteString("\n")
			}
		}
	}

	if !doc.Metadata.Collapsible {
		for i := len(doc.Components); i < len(doc.Metadata.ExpectedTypes); i++ {
			b.WriteString(r.placeholderStyle.Render(fmt.Sprintf("… %s", doc.Metadata.ExpectedTypes[i])))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Component renders a single component, or "" when it renders nothing.
func (r *Renderer) Component(c genui.Component) string {
	if !c.IsVisible() {
		return ""
	}

	switch c.Type.Normalize() {
	case genui.KindWarningCard:
		return r.warningCardStyle.Render(r.cardBody(c))
	case genui.KindErrorCard:
		return r.errorCardStyle.Render(r.cardBody(c))
	case genui.KindStatusCard, genui.KindInfoCard, genui.KindCitationCard,
		genui.KindStatuteCard, genui.KindCaseCard, genui.KindDocumentCard,
		genui.KindContractClause:
		return r.cardStyle.Render(r.cardBody(c))
	case genui.KindTextBlock, genui.KindMarkdownBlock:
		return r.textStyle.Render(stringField(c.Data, "text"))
	case genui.KindCodeBlock:
		return r.highlighter.Highlight(stringField(c.Data, "code"), stringField(c.Data, "language"))
	case genui.KindDivider:
		return r.dividerStyle.Render(strings.Repeat("─", r.width))
	case genui.KindProgress:
		return r.progress(c)
	case genui.KindTimeline, genui.KindTimelineEntry, genui.KindChecklist,
		genui.KindChecklistItem, genui.KindComparisonTable, genui.KindDataTable,
		genui.KindForm, genui.KindFormField, genui.KindSelect,
		genui.KindFileUpload, genui.KindActionRow:
		return r.genericBody(c)
	default:
		// Plugin or unrecognized tag: render nothing, the web surface may
		// know the widget but this console does not.
		logger.Warn("No console widget for component %s of type %q, skipping", c.ID, c.Type)
		return ""
	}
}

func (r *Renderer) cardBody(c genui.Component) string {
	title := stringField(c.Data, "title")
	subtitle := stringField(c.Data, "subtitle")
	body := stringField(c.Data, "body")

	var lines []string
	if title != "" {
		lines = append(lines, r.headerStyle.Render(title))
	}
	if subtitle != "" {
		lines = append(lines, subtitle)
	}
	if body != "" {
		lines = append(lines, body)
	}
	if len(lines) == 0 {
		return r.genericBody(c)
	}
	return strings.Join(lines, "\n")
}

// genericBody falls back to the raw payload as highlighted JSON for kinds
// without a dedicated console layout.
func (r *Renderer) genericBody(c genui.Component) string {
	raw, err := json.MarshalIndent(c.Data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%s (%s)", c.ID, c.Type)
	}
	return r.highlighter.Highlight(string(raw), "json")
}

func (r *Renderer) progress(c genui.Component) string {
	label := stringField(c.Data, "label")
	fraction, _ := c.Data["value"].(float64)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	barWidth := r.width / 2
	filled := int(fraction * float64(barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if label != "" {
		return fmt.Sprintf("%s %s", bar, label)
	}
	return bar
}

// groupComponents splits the component list into runs of consecutive
// same-kind components, preserving order.
func groupComponents(components []genui.Component) [][]genui.Component {
	var groups [][]genui.Component
	for _, c := range components {
		n := len(groups)
		if n > 0 && groups[n-1][0].Type == c.Type {
			groups[n-1] = append(groups[n-1], c)
			continue
		}
		groups = append(groups, []genui.Component{c})
	}
	return groups
}

var cardKinds = map[genui.Kind]struct{}{
	genui.KindStatusCard:     {},
	genui.KindInfoCard:       {},
	genui.KindWarningCard:    {},
	genui.KindErrorCard:      {},
	genui.KindCitationCard:   {},
	genui.KindStatuteCard:    {},
	genui.KindCaseCard:       {},
	genui.KindDocumentCard:   {},
	genui.KindContractClause: {},
}

func isCardKind(k genui.Kind) bool {
	_, ok := cardKinds[k]
	return ok
}
