package core

import (
	"path"
	"strings"
)

// EntryNameForHTML derives a bundle name from the page's output file,
// e.g. "docs/intro.html" becomes "docs-intro".
func EntryNameForHTML(htmlName string) string {
	name := strings.TrimPrefix(htmlName, "./")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.ReplaceAll(name, "/", "-")
	if name == "" {
		return "index"
	}
	return name
}

// TemplatePathForHTML is the conventional template location for a page.
func TemplatePathForHTML(htmlName string) string {
	return path.Join("src", strings.TrimPrefix(htmlName, "/"))
}
