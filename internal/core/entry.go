package core

// InjectBody is where the bundler places script tags inside each template.
const InjectBody = "body"

// EntryPoint associates a bundle with the HTML page that starts it.
type EntryPoint struct {
	Name     string `json:"name" yaml:"name"`
	Source   string `json:"src" yaml:"src"`
	Template string `json:"template" yaml:"template"`
	HTML     string `json:"html" yaml:"html"`
}

// EntryMap maps a bundle name to the source file the bundler starts from.
type EntryMap map[string]string

// TemplateBinding tells the bundler which chunks to inject into one page.
type TemplateBinding struct {
	Template string   `json:"template"`
	Filename string   `json:"filename"`
	Inject   string   `json:"inject"`
	Chunks   []string `json:"chunks"`
}

// Assemble maps entry points to the bundler's entry map and one template
// binding per entry point, in input order. Duplicate names are not guarded:
// the entry map keeps the last source while every binding is still emitted.
func Assemble(entryPoints []EntryPoint) (EntryMap, []TemplateBinding) {
	entries := make(EntryMap, len(entryPoints))
	bindings := make([]TemplateBinding, 0, len(entryPoints))

	for _, ep := range entryPoints {
		entries[ep.Name] = ep.Source
		bindings = append(bindings, TemplateBinding{
			Template: ep.Template,
			Filename: ep.HTML,
			Inject:   InjectBody,
			Chunks:   []string{ep.Name},
		})
	}

	return entries, bindings
}

// DefaultEntryPoints is the site's single index page.
func DefaultEntryPoints() []EntryPoint {
	return []EntryPoint{
		{
			Name:     "index",
			Source:   "./src/js/App.js",
			Template: "src/index.html",
			HTML:     "index.html",
		},
	}
}
