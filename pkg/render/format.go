package render

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter applies terminal syntax highlighting to code-block payloads.
type highlighter struct {
	formatter chroma.Formatter
	style     *chroma.Style
	enabled   bool
}

func newHighlighter(color bool) *highlighter {
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	return &highlighter{
		formatter: formatter,
		style:     style,
		enabled:   color,
	}
}

// Highlight returns source with ANSI highlighting for the given language.
// Falls back to the raw source when highlighting is disabled or fails.
func (h *highlighter) Highlight(source, language string) string {
	if !h.enabled {
		return source
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return source
	}
	return buf.String()
}

// stringField pulls a string value out of an opaque component payload,
// stringifying scalars the agent sent as other JSON types.
func stringField(data map[string]any, key string) string {
	raw, ok := data[key]
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64, int, int64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
