package core

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name         string
		input        []EntryPoint
		wantEntries  EntryMap
		wantBindings []TemplateBinding
	}{
		{
			name:         "empty input",
			input:        []EntryPoint{},
			wantEntries:  EntryMap{},
			wantBindings: []TemplateBinding{},
		},
		{
			name:         "nil input",
			input:        nil,
			wantEntries:  EntryMap{},
			wantBindings: []TemplateBinding{},
		},
		{
			name:        "single index entry",
			input:       DefaultEntryPoints(),
			wantEntries: EntryMap{"index": "./src/js/App.js"},
			wantBindings: []TemplateBinding{
				{Template: "src/index.html", Filename: "index.html", Inject: "body", Chunks: []string{"index"}},
			},
		},
		{
			name: "multiple entries keep input order",
			input: []EntryPoint{
				{Name: "index", Source: "./src/js/App.js", Template: "src/index.html", HTML: "index.html"},
				{Name: "admin", Source: "./src/js/Admin.js", Template: "src/admin.html", HTML: "admin/index.html"},
				{Name: "about", Source: "./src/js/About.js", Template: "src/about.html", HTML: "about.html"},
			},
			wantEntries: EntryMap{
				"index": "./src/js/App.js",
				"admin": "./src/js/Admin.js",
				"about": "./src/js/About.js",
			},
			wantBindings: []TemplateBinding{
				{Template: "src/index.html", Filename: "index.html", Inject: "body", Chunks: []string{"index"}},
				{Template: "src/admin.html", Filename: "admin/index.html", Inject: "body", Chunks: []string{"admin"}},
				{Template: "src/about.html", Filename: "about.html", Inject: "body", Chunks: []string{"about"}},
			},
		},
		{
			name: "duplicate names last write wins",
			input: []EntryPoint{
				{Name: "index", Source: "./first.js", Template: "src/a.html", HTML: "a.html"},
				{Name: "index", Source: "./second.js", Template: "src/b.html", HTML: "b.html"},
			},
			wantEntries: EntryMap{"index": "./second.js"},
			wantBindings: []TemplateBinding{
				{Template: "src/a.html", Filename: "a.html", Inject: "body", Chunks: []string{"index"}},
				{Template: "src/b.html", Filename: "b.html", Inject: "body", Chunks: []string{"index"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, bindings := Assemble(tt.input)
			if diff := cmp.Diff(tt.wantEntries, entries); diff != "" {
				t.Errorf("entry map mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBindings, bindings); diff != "" {
				t.Errorf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssembleCorrelatesByName(t *testing.T) {
	input := make([]EntryPoint, 0, 20)
	for i := range 20 {
		name := string(rune('a' + i))
		input = append(input, EntryPoint{
			Name:     name,
			Source:   "./src/" + name + ".js",
			Template: "src/" + name + ".html",
			HTML:     name + ".html",
		})
	}

	entries, bindings := Assemble(input)

	if len(entries) != len(input) {
		t.Fatalf("Expected %d entries, got %d", len(input), len(entries))
	}
	if len(bindings) != len(input) {
		t.Fatalf("Expected %d bindings, got %d", len(input), len(bindings))
	}

	for i, ep := range input {
		if entries[ep.Name] != ep.Source {
			t.Errorf("entries[%q] = %q, want %q", ep.Name, entries[ep.Name], ep.Source)
		}
		if diff := cmp.Diff([]string{ep.Name}, bindings[i].Chunks); diff != "" {
			t.Errorf("bindings[%d].Chunks mismatch (-want +got):\n%s", i, diff)
		}
		if bindings[i].Inject != InjectBody {
			t.Errorf("bindings[%d].Inject = %q, want %q", i, bindings[i].Inject, InjectBody)
		}
	}
}

func TestAssembleSnapshot(t *testing.T) {
	entries, bindings := Assemble(DefaultEntryPoints())

	data, err := json.MarshalIndent(struct {
		Entry EntryMap          `json:"entry"`
		HTML  []TemplateBinding `json:"html"`
	}{entries, bindings}, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	snaps.MatchSnapshot(t, string(data))
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
