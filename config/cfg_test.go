package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"celc/config"
)

func TestLoadConfiguration_Defaults(t *testing.T) {
	conf, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.Version != 1 {
		t.Errorf("version: got %d, want 1", conf.Version)
	}
	if conf.Generator.Names != "uuid" {
		t.Errorf("generator names: got %q, want uuid", conf.Generator.Names)
	}
	if !conf.Output.Header {
		t.Error("output header: got false, want true")
	}
	if conf.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level: got %q, want normal", conf.Logging.ConsoleLogger.Level)
	}
	if conf.Logging.FileLogger.Level != "none" {
		t.Errorf("file level: got %q, want none", conf.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_Overlay(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	content := `
generator:
  names: sequence
  prefix: demo
logging:
  console:
    level: debug
`
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write test configuration: %v", err)
	}

	conf, err := config.LoadConfiguration(fname)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.Generator.Names != "sequence" || conf.Generator.Prefix != "demo" {
		t.Errorf("generator: got %+v", conf.Generator)
	}
	if conf.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level: got %q, want debug", conf.Logging.ConsoleLogger.Level)
	}
	// untouched values keep their defaults
	if conf.Version != 1 || !conf.Output.Header {
		t.Errorf("defaults lost: version %d, header %v", conf.Version, conf.Output.Header)
	}
}

func TestLoadConfiguration_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wants   string
	}{
		{"unknown field", "generator:\n  naming: uuid\n", "not found"},
		{"bad name source", "generator:\n  names: random\n", "unknown name source"},
		{"bad console level", "logging:\n  console:\n    level: chatty\n", "unknown console log level"},
		{"bad file mode", "logging:\n  file:\n    mode: rotate\n", "unknown file log mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(fname, []byte(tc.content), 0644); err != nil {
				t.Fatalf("unable to write test configuration: %v", err)
			}
			_, err := config.LoadConfiguration(fname)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wants) {
				t.Errorf("error %q does not mention %q", err, tc.wants)
			}
		})
	}
}

func TestDump_RoundTrip(t *testing.T) {
	conf, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := config.Dump(conf)
	if err != nil {
		t.Fatalf("unable to dump configuration: %v", err)
	}

	fname := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(fname, data, 0644); err != nil {
		t.Fatalf("unable to write dumped configuration: %v", err)
	}
	back, err := config.LoadConfiguration(fname)
	if err != nil {
		t.Fatalf("dumped configuration does not load: %v", err)
	}
	if *back != *conf {
		t.Errorf("round trip changed configuration:\ngot  %+v\nwant %+v", back, conf)
	}
}
