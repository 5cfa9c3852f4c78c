package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSiteFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "root", path: "/", want: "index.html"},
		{name: "empty", path: "", want: "index.html"},
		{name: "file", path: "/js/index.123.js", want: "js/index.123.js"},
		{name: "missing leading slash", path: "css/index.css", want: "css/index.css"},
		{name: "directory", path: "/docs/", want: "docs/index.html"},
		{name: "parent reference", path: "/../etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SiteFilePath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SiteFilePath(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("SiteFilePath(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("SiteFilePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateEntryPoint(t *testing.T) {
	valid := DefaultEntryPoints()[0]

	tests := []struct {
		name    string
		mutate  func(*EntryPoint)
		wantErr bool
	}{
		{name: "valid", mutate: func(*EntryPoint) {}},
		{name: "empty name", mutate: func(ep *EntryPoint) { ep.Name = "" }, wantErr: true},
		{name: "name with slash", mutate: func(ep *EntryPoint) { ep.Name = "a/b" }, wantErr: true},
		{name: "empty src", mutate: func(ep *EntryPoint) { ep.Source = "" }, wantErr: true},
		{name: "empty template", mutate: func(ep *EntryPoint) { ep.Template = "" }, wantErr: true},
		{name: "empty html", mutate: func(ep *EntryPoint) { ep.HTML = "" }, wantErr: true},
		{name: "html escapes output", mutate: func(ep *EntryPoint) { ep.HTML = "../index.html" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := valid
			tt.mutate(&ep)
			err := ValidateEntryPoint(ep)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryPoint() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDuplicateNames(t *testing.T) {
	eps := []EntryPoint{{Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "a"}, {Name: "b"}}
	if diff := cmp.Diff([]string{"a", "b"}, DuplicateNames(eps)); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
	if got := DuplicateNames(DefaultEntryPoints()); got != nil {
		t.Errorf("Expected no duplicates, got %v", got)
	}
}

func TestEntryNameForHTML(t *testing.T) {
	tests := map[string]string{
		"index.html":       "index",
		"./about.html":     "about",
		"docs/intro.html":  "docs-intro",
		"/admin/list.html": "admin-list",
		"":                 "index",
	}
	for in, want := range tests {
		if got := EntryNameForHTML(in); got != want {
			t.Errorf("EntryNameForHTML(%q) = %q, want %q", in, got, want)
		}
	}

	if got := TemplatePathForHTML("index.html"); got != "src/index.html" {
		t.Errorf("TemplatePathForHTML() = %q, want %q", got, "src/index.html")
	}
}
