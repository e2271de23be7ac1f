package genui

// Kind identifies the widget family a component belongs to. The set of
// known kinds is closed; anything else is treated as KindPlugin so that
// newer agents can ship widgets this client has never heard of without
// breaking the stream.
type Kind string

const (
	KindStatusCard      Kind = "status-card"
	KindInfoCard        Kind = "info-card"
	KindWarningCard     Kind = "warning-card"
	KindErrorCard       Kind = "error-card"
	KindCitationCard    Kind = "citation-card"
	KindStatuteCard     Kind = "statute-card"
	KindCaseCard        Kind = "case-card"
	KindDocumentCard    Kind = "document-card"
	KindContractClause  Kind = "contract-clause"
	KindTimeline        Kind = "timeline"
	KindTimelineEntry   Kind = "timeline-entry"
	KindChecklist       Kind = "checklist"
	KindChecklistItem   Kind = "checklist-item"
	KindComparisonTable Kind = "comparison-table"
	KindDataTable       Kind = "data-table"
	KindTextBlock       Kind = "text-block"
	KindMarkdownBlock   Kind = "markdown-block"
	KindCodeBlock       Kind = "code-block"
	KindForm            Kind = "form"
	KindFormField       Kind = "form-field"
	KindSelect          Kind = "select"
	KindFileUpload      Kind = "file-upload"
	KindActionRow       Kind = "action-row"
	KindProgress        Kind = "progress"
	KindDivider         Kind = "divider"

	// KindPlugin is the explicit extension point for unrecognized tags.
	KindPlugin Kind = "plugin"
)

var knownKinds = map[Kind]struct{}{
	KindStatusCard:      {},
	KindInfoCard:        {},
	KindWarningCard:     {},
	KindErrorCard:       {},
	KindCitationCard:    {},
	KindStatuteCard:     {},
	KindCaseCard:        {},
	KindDocumentCard:    {},
	KindContractClause:  {},
	KindTimeline:        {},
	KindTimelineEntry:   {},
	KindChecklist:       {},
	KindChecklistItem:   {},
	KindComparisonTable: {},
	KindDataTable:       {},
	KindTextBlock:       {},
	KindMarkdownBlock:   {},
	KindCodeBlock:       {},
	KindForm:            {},
	KindFormField:       {},
	KindSelect:          {},
	KindFileUpload:      {},
	KindActionRow:       {},
	KindProgress:        {},
	KindDivider:         {},
	KindPlugin:          {},
}

// Known reports whether k is part of the closed kind set.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// Normalize maps unrecognized tags onto KindPlugin. The raw tag stays
// available on the component for renderers that understand it.
func (k Kind) Normalize() Kind {
	if k.Known() {
		return k
	}
	return KindPlugin
}

// Component is one declared UI element within a streamed document. Data is
// an opaque payload whose meaning is defined per kind; the engine never
// interprets it.
type Component struct {
	ID      string         `json:"id"`
	Type    Kind           `json:"type"`
	Data    map[string]any `json:"data,omitempty"`
	Visible *bool          `json:"visible,omitempty"`
}

// IsVisible resolves the optional visibility flag, defaulting to true.
func (c Component) IsVisible() bool {
	return c.Visible == nil || *c.Visible
}

// MergeData returns the component's data after a shallow merge of delta:
// keys present in delta replace the existing top-level key wholesale,
// including nested maps, which are never combined field by field. Neither
// input map is mutated.
func MergeData(data, delta map[string]any) map[string]any {
	merged := make(map[string]any, len(data)+len(delta))
	for k, v := range data {
		merged[k] = v
	}
	for k, v := range delta {
		merged[k] = v
	}
	return merged
}
