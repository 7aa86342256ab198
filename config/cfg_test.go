package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"stylo/plugin"
	"stylo/style"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("version: got %d, want 1", cfg.Version)
	}
	if cfg.Document.OutputNameTemplate != "{{ .Name }}.css" {
		t.Errorf("output name template: got %q", cfg.Document.OutputNameTemplate)
	}
	if !reflect.DeepEqual(cfg.Renderer.KeyframePrefixes, []string{"-webkit-", "-moz-"}) {
		t.Errorf("keyframe prefixes: got %v", cfg.Renderer.KeyframePrefixes)
	}
	if !reflect.DeepEqual(cfg.Renderer.Plugins, []string{"unit"}) {
		t.Errorf("plugins: got %v", cfg.Renderer.Plugins)
	}
	if cfg.Renderer.DefaultUnit != "px" {
		t.Errorf("default unit: got %q", cfg.Renderer.DefaultUnit)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("logging defaults: got %+v", cfg.Logging)
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "stylo.yaml")
	if err := os.WriteFile(fname, []byte(`
version: 1
document:
  output_name_template: "{{ .SourceFile }}-styles.css"
  verify: true
renderer:
  plugins: [unit, important]
  default_unit: em
logging:
  console:
    level: none
  file:
    level: none
`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfiguration(fname)
	if err != nil {
		t.Fatalf("unable to load configuration: %v", err)
	}
	if cfg.Document.OutputNameTemplate != "{{ .SourceFile }}-styles.css" {
		t.Errorf("output name template not overridden: %q", cfg.Document.OutputNameTemplate)
	}
	if !cfg.Document.Verify {
		t.Error("verify not overridden")
	}
	if !reflect.DeepEqual(cfg.Renderer.Plugins, []string{"unit", "important"}) {
		t.Errorf("plugins: got %v", cfg.Renderer.Plugins)
	}
	if cfg.Renderer.DefaultUnit != "em" {
		t.Errorf("default unit: got %q", cfg.Renderer.DefaultUnit)
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name, in string
	}{
		{"unknown field", "version: 1\nbogus: true\n"},
		{"bad version", "version: 7\n"},
		{"bad plugin name", "version: 1\nrenderer:\n  plugins: [sparkles]\n"},
		{"bad unit", "version: 1\nrenderer:\n  default_unit: parsec\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "stylo.yaml")
			if err := os.WriteFile(fname, []byte(tc.in), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfiguration(fname); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("unable to dump configuration: %v", err)
	}
	for _, want := range []string{"version: 1", "output_name_template", "keyframe_prefixes"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestBuildPlugins(t *testing.T) {
	conf := &RendererConfig{Plugins: []string{"unit", "important"}, DefaultUnit: "em"}
	plugins, err := conf.BuildPlugins()
	if err != nil {
		t.Fatalf("unable to build plugins: %v", err)
	}
	if len(plugins) != 2 {
		t.Fatalf("got %d plugins, want 2", len(plugins))
	}

	got := plugin.Process(style.Style{"width": 10}, plugin.Meta{}, plugins)
	want := style.Style{"width": "10em !important"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCleanFileName(t *testing.T) {
	if got := CleanFileName("out/dir" + string(os.PathSeparator) + "name.css"); strings.ContainsRune(got, os.PathSeparator) || strings.Contains(got, "/") {
		t.Errorf("separators survived: %q", got)
	}
	if got := CleanFileName(""); got != "_bad_file_name_" {
		t.Errorf("empty name: got %q", got)
	}
}

func TestBuildPluginsUnknown(t *testing.T) {
	conf := &RendererConfig{Plugins: []string{"unit", "sparkles"}}
	if _, err := conf.BuildPlugins(); err == nil || !strings.Contains(err.Error(), "sparkles") {
		t.Errorf("unknown plugin not reported: %v", err)
	}
}
