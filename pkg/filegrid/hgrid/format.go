package hgrid

import (
	"fmt"
	"html/template"
	"strings"
)

const IconBasePath = "/static/img/hgrid/"

// what an unauthorized folder row displays instead of its real name.
// this is a policy, not an error: the name of a private component
// must not leak even when the folder is collapsed.
const PrivateFolderLabel = "Private Component"

// per-level visual offset in pixels.
const indentUnitPx = 18

// the replacer substitutes in a single pass, so the entities
// introduced for `<` and `>` are never re-escaped. equivalent to
// replacing `&` first, then `<`, then `>`.
var labelEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func EscapeLabel(s string) string {
	return labelEscaper.Replace(s)
}

// the icon path for a file of the given extension. only extensions
// of the known set are ever interpolated into the path; everything
// else gets the one generic icon, so no untrusted byte reaches the
// path.
func FileIconPath(ext string) string {
	if IsKnownExtension(ext) {
		return IconBasePath + "file_extension_" + ext + ".png"
	}
	return IconBasePath + "file.png"
}

func spacer(indent int) string {
	if indent < 0 { indent = 0 }
	return fmt.Sprintf("<span class=\"hgrid-spacer\" style=\"width:%dpx;\"></span>", indent*indentUnitPx)
}

func expandToggle(uid string) string {
	return fmt.Sprintf("<button class=\"hgrid-toggle\" data-hg-action=\"expand\" data-hg-uid=\"%s\">+</button>", template.HTMLEscapeString(uid))
}

func collapseToggle(uid string) string {
	return fmt.Sprintf("<button class=\"hgrid-toggle\" data-hg-action=\"collapse\" data-hg-uid=\"%s\">-</button>", template.HTMLEscapeString(uid))
}

func neutralToggle() string {
	return "<span class=\"hgrid-toggle-space\"></span>"
}

func icon(file string, class string) string {
	return fmt.Sprintf("<img class=\"hgrid-icon %s\" src=\"%s%s\">", class, IconBasePath, file)
}

// Format renders the name cell of one grid row. it always returns a
// fragment; a node with missing optional fields degrades to a plain
// text label instead of failing.
func Format(node Node) template.HTML {
	var res strings.Builder
	res.WriteString(spacer(node.Indent))
	switch node.Type {
	case NodeTypeFolder:
		formatFolder(&res, node)
	case NodeTypeFile:
		formatFile(&res, node)
	default:
		// unknown node type. emit the label alone rather than
		// guessing at controls.
		res.WriteString(neutralToggle())
		res.WriteString(EscapeLabel(node.Name))
	}
	return template.HTML(res.String())
}

func formatFolder(res *strings.Builder, node Node) {
	if !node.CanView {
		res.WriteString(neutralToggle())
		res.WriteString(icon("folder_delete.png", "hgrid-folder-private"))
		res.WriteString(PrivateFolderLabel)
		return
	}
	if node.Collapsed {
		res.WriteString(expandToggle(node.Uid))
		// NOTE: icon naming is inverted on purpose: `folder.png` is
		// the "open" drawing shown on collapsed rows. the icon set
		// has always been like this.
		res.WriteString(icon("folder.png", "hgrid-folder-open"))
		res.WriteString(fmt.Sprintf("<a class=\"hgrid-folder-link\" data-hg-uid=\"%s\">%s</a>", template.HTMLEscapeString(node.Uid), EscapeLabel(node.Name)))
	} else {
		res.WriteString(collapseToggle(node.Uid))
		res.WriteString(icon("folder_close.png", "hgrid-folder-closed"))
		res.WriteString(EscapeLabel(node.Name))
	}
}

func formatFile(res *strings.Builder, node Node) {
	res.WriteString(neutralToggle())
	res.WriteString(icon(strings.TrimPrefix(FileIconPath(node.Ext), IconBasePath), "hgrid-file"))
	if len(node.URL) > 0 {
		res.WriteString(fmt.Sprintf("<a href=\"%s\">%s</a>", template.HTMLEscapeString(node.URL), EscapeLabel(node.Name)))
	} else {
		res.WriteString(EscapeLabel(node.Name))
	}
}
