package templates

import (
	"embed"
	ht "html/template"
	"log"
)

//go:embed html/*.html
var templateFS embed.FS

// LoadTemplate parses every view into one master template. views are
// looked up by their {{define}} name; a missing view at startup is a
// programming error and fails loudly.
func LoadTemplate() *ht.Template {
	t := ht.New("master").Funcs(templateFuncMap())
	t, err := t.ParseFS(templateFS, "html/*.html")
	if err != nil { log.Fatalf("Failed to parse templates: %s", err) }
	return t
}
