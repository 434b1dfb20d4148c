package preview

// rendering of mirrored file contents for the preview page. markup
// formats get rendered to (sanitized) html, everything else goes
// through syntax highlighting with a plain-text fallback.

import (
	"bytes"
	ht "html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"
	"github.com/niklasfasching/go-org/org"

	"github.com/telsin/filegrid/pkg/filegrid/model"
)

func RenderMarkdown(s string) ht.HTML {
	rs := string(markdown.ToHTML([]byte(s), nil, nil))
	rs = bluemonday.UGCPolicy().Sanitize(rs)
	return ht.HTML(rs)
}

func RenderOrg(s string, filename string) (ht.HTML, error) {
	doc := org.New().Parse(strings.NewReader(s), filename)
	rs, err := doc.Write(org.NewHTMLWriter())
	if err != nil { return "", err }
	rs = bluemonday.UGCPolicy().Sanitize(rs)
	return ht.HTML(rs), nil
}

func RenderCode(filename string, s string) (ht.HTML, error) {
	lexer := lexers.Match(filename)
	if lexer == nil { lexer = lexers.Fallback }
	lexer = chroma.Coalesce(lexer)
	style := styles.Get("github")
	if style == nil { style = styles.Fallback }
	formatter := chromahtml.New(chromahtml.WithClasses(false), chromahtml.WithLineNumbers(true))
	it, err := lexer.Tokenise(nil, s)
	if err != nil { return "", err }
	var buf bytes.Buffer
	err = formatter.Format(&buf, style, it)
	if err != nil { return "", err }
	return ht.HTML(buf.String()), nil
}

func renderPlain(s string) ht.HTML {
	var res strings.Builder
	res.WriteString("<pre>")
	res.WriteString(ht.HTMLEscapeString(s))
	res.WriteString("</pre>")
	return ht.HTML(res.String())
}

// RenderBlob dispatches on the file name. it never fails: when the
// chosen renderer errors out the escaped plain text is shown instead.
func RenderBlob(filename string, s string) ht.HTML {
	switch model.PathExt(filename) {
	case "md", "markdown":
		return RenderMarkdown(s)
	case "org":
		r, err := RenderOrg(s, filename)
		if err != nil { return renderPlain(s) }
		return r
	case "":
		return renderPlain(s)
	default:
		r, err := RenderCode(filename, s)
		if err != nil { return renderPlain(s) }
		return r
	}
}
