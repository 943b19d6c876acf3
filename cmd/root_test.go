package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile = ""

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "package: tuxfetch version:") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestShowPalette_NoColor(t *testing.T) {
	out, _, err := execute(t, "show", "palette", "--color=false")
	if err != nil {
		t.Fatalf("show palette: %v", err)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("--color=false still printed escape codes:\n%s", out)
	}
	for _, name := range []string{"magenta", "bgwhite"} {
		if !strings.Contains(out, name) {
			t.Errorf("palette missing %s:\n%s", name, out)
		}
	}
}

func TestShowPlatform_Property(t *testing.T) {
	out, _, err := execute(t, "show", "platform", "--property", "family")
	if err != nil {
		t.Fatalf("show platform: %v", err)
	}
	if !strings.HasPrefix(out, "family: ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestBrokenConfigFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuxfetch.ini")
	if err := os.WriteFile(path, []byte("color = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := execute(t, "--config", path, "version")
	if err != nil {
		t.Fatalf("a bad config file should not fail the command: %v", err)
	}
	if !strings.Contains(errOut, "Error loading config") {
		t.Errorf("stderr = %q, want a config error", errOut)
	}
}

func TestFactsCommand_YAML(t *testing.T) {
	out, _, err := execute(t, "facts", "-o", "yaml", "--spinner=false", "--timeout", "2s")
	if err != nil {
		t.Fatalf("facts: %v", err)
	}
	for _, want := range []string{"kernel_release:", "packages:", "primary_manager:"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestFactsCommand_UnknownFormat(t *testing.T) {
	if _, _, err := execute(t, "facts", "-o", "xml", "--spinner=false", "--timeout", "2s"); err == nil {
		t.Fatal("expected an error for -o xml")
	}
}

func TestShowTools(t *testing.T) {
	out, _, err := execute(t, "show", "tools")
	if err != nil {
		t.Fatalf("show tools: %v", err)
	}
	for _, want := range []string{"pacman", "xprop", "getprop", "de/wm"} {
		if !strings.Contains(out, want) {
			t.Errorf("tools table missing %q:\n%s", want, out)
		}
	}
}
