package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// serverHome points AWPST_SRV_HOME at a throwaway install root so
// commands log into a test-owned temp directory.
func serverHome(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "temp"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AWPST_SRV_HOME", root)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "prevgen [file]") {
		t.Fatalf("expected usage in output, got:\n%s", out)
	}
}

func TestMapCommandPrintsDestination(t *testing.T) {
	serverHome(t)
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[mapping]
marker_folder = "Projects"
new_base = "/Volumes/Proxies"
remove_levels = 1
append_folder = "proxies"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "-c", cfgPath, "map", "/Volumes/RAW/Projects/2024/BMW/Footage/A-Cam/A001.mov")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := filepath.Join("/Volumes/Proxies", "Projects", "2024", "BMW", "Footage", "proxies", "A001.mp4")
	if strings.TrimSpace(out) != want {
		t.Fatalf("map output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestMapCommandUsesPreviewContainerWhenCrossWired(t *testing.T) {
	serverHome(t)
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[outputs.workflow]
source = "preview"

[quality.preview]
codec = "prores"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "-c", cfgPath, "map", "/media/footage/A001.mov")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), ".mov") {
		t.Fatalf("expected prores container extension, got %q", strings.TrimSpace(out))
	}
}

func TestConfigValidateWithExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[logging]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "-c", cfgPath, "config", "validate")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("expected validation success, got:\n%s", out)
	}
}

func TestConfigValidateRejectsBrokenFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[outputs.preview]\nsource = \"broadcast\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "-c", cfgPath, "config", "validate"); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected written path in output, got:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	// A second run without --overwrite must refuse.
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target exists")
	}
}
