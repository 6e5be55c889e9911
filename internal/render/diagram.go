package render

import (
	stdhtml "html"
	"strings"
)

// diagramLanguage is the fence tag that routes a code block to the diagram
// sub-renderer.
const diagramLanguage = "mermaid"

// DiagramResult is the tagged outcome of diagram rendering. Exactly one
// variant applies: Ok carries the rendered markup in Output; otherwise
// Source carries the raw block to echo verbatim. Returning a value instead
// of an error means callers cannot forget the degraded case.
type DiagramResult struct {
	Ok     bool
	Output string
	Source string
}

// diagramKinds are the mermaid diagram types we accept. The first word of
// the block must be one of these for the block to render as a diagram.
var diagramKinds = map[string]struct{}{
	"graph":           {},
	"flowchart":       {},
	"sequenceDiagram": {},
	"classDiagram":    {},
	"stateDiagram":    {},
	"stateDiagram-v2": {},
	"erDiagram":       {},
	"gantt":           {},
	"pie":             {},
	"journey":         {},
	"mindmap":         {},
	"timeline":        {},
}

// RenderDiagram turns mermaid source into a client-rendered diagram
// container. Malformed diagram syntax degrades to the raw source; a broken
// diagram must never take down an otherwise-valid article, so this function
// has no error return.
func RenderDiagram(source string) DiagramResult {
	if !looksLikeDiagram(source) {
		return DiagramResult{Source: source}
	}
	return DiagramResult{
		Ok:     true,
		Output: `<pre class="mermaid">` + stdhtml.EscapeString(source) + "</pre>\n",
	}
}

func looksLikeDiagram(source string) bool {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		kind, _, _ := strings.Cut(line, " ")
		_, ok := diagramKinds[kind]
		return ok
	}
	return false
}
