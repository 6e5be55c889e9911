package render

import (
	stdhtml "html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const defaultHighlightStyle = "github"

// codeBlockRenderer replaces goldmark's fenced-code-block rendering.
// Language-tagged blocks are highlighted with chroma; unknown language tags
// render as plain preformatted text instead of failing. Mermaid blocks are
// handed to the diagram sub-renderer.
type codeBlockRenderer struct {
	style string
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	lang := string(n.Language(source))

	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	code := sb.String()

	if lang == diagramLanguage {
		res := RenderDiagram(code)
		if res.Ok {
			_, _ = w.WriteString(res.Output)
		} else {
			writePlainCode(w, "", res.Source)
		}
		return ast.WalkContinue, nil
	}

	r.highlight(w, lang, code)
	return ast.WalkContinue, nil
}

// highlight writes a chroma-highlighted block, falling back to plain
// preformatted text for unknown languages or tokenizer failures.
func (r *codeBlockRenderer) highlight(w util.BufWriter, lang, code string) {
	if lang == "" {
		writePlainCode(w, "", code)
		return
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		writePlainCode(w, lang, code)
		return
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		writePlainCode(w, lang, code)
		return
	}

	style := styles.Get(r.style)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(w, style, iterator); err != nil {
		writePlainCode(w, lang, code)
	}
}

func writePlainCode(w util.BufWriter, lang, code string) {
	_, _ = w.WriteString("<pre><code")
	if lang != "" {
		_, _ = w.WriteString(` class="language-` + stdhtml.EscapeString(lang) + `"`)
	}
	_, _ = w.WriteString(">")
	_, _ = w.WriteString(stdhtml.EscapeString(code))
	_, _ = w.WriteString("</code></pre>\n")
}
