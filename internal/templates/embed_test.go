package templates

import (
	"io/fs"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "greetsite.yaml.tmpl",
			wantFilename: "greetsite.yaml",
			wantIsTmpl:   true,
		},
		{
			name:         "regular file unchanged",
			filename:     "site/src/index.html",
			wantFilename: "site/src/index.html",
			wantIsTmpl:   false,
		},
		{
			name:         "nested tmpl file",
			filename:     "site/package.json.tmpl",
			wantFilename: "site/package.json",
			wantIsTmpl:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Name: "hello-site"}

	tests := []struct {
		name       string
		content    string
		isTemplate bool
		want       string
	}{
		{
			name:       "non-template content unchanged",
			content:    "greeting_name: {{.Name}}",
			isTemplate: false,
			want:       "greeting_name: {{.Name}}",
		},
		{
			name:       "template with Name placeholder",
			content:    "greeting_name: {{.Name}}",
			isTemplate: true,
			want:       "greeting_name: hello-site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(ProcessContent([]byte(tt.content), tt.isTemplate, data))
			if got != tt.want {
				t.Errorf("ProcessContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: "/home/user/hello", want: "hello"},
		{dir: "hello", want: "hello"},
		{dir: ".", want: "greetsite"},
		{dir: "/", want: "greetsite"},
		{dir: "", want: "greetsite"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if got := DeriveName(tt.dir); got != tt.want {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestStarterFiles(t *testing.T) {
	starter, err := Starter()
	if err != nil {
		t.Fatalf("Starter() error = %v", err)
	}

	required := []string{
		"greetsite.yaml.tmpl",
		"site/package.json.tmpl",
		"site/src/index.html",
		"site/src/js/App.js",
		"site/src/css/main.scss",
	}
	for _, path := range required {
		if _, err := fs.Stat(starter, path); err != nil {
			t.Errorf("starter is missing %s: %v", path, err)
		}
	}
}

func TestStarterConfigIsValidYAML(t *testing.T) {
	starter, err := Starter()
	if err != nil {
		t.Fatalf("Starter() error = %v", err)
	}

	content, err := fs.ReadFile(starter, "greetsite.yaml.tmpl")
	if err != nil {
		t.Fatalf("read config template: %v", err)
	}
	rendered := ProcessContent(content, true, TemplateData{Name: "World"})
	if strings.Contains(string(rendered), "{{") {
		t.Fatalf("unprocessed placeholder in %s", rendered)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(rendered, &doc); err != nil {
		t.Fatalf("rendered config is not YAML: %v", err)
	}
	if _, ok := doc["entry_points"]; !ok {
		t.Error("rendered config has no entry_points")
	}
}
