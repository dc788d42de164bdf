package plugin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRejectsMissingPlugin(t *testing.T) {
	loader := NewLoader()
	defer loader.Cleanup()

	_, err := loader.Load(filepath.Join(t.TempDir(), "kensho-plugin-jira"))
	if err == nil {
		t.Fatal("expected error for missing plugin")
	}
	if !strings.Contains(err.Error(), "plugin not found") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	loader := NewLoader()
	defer loader.Cleanup()

	if _, err := loader.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestLoadRejectsNonExecutable(t *testing.T) {
	loader := NewLoader()
	defer loader.Cleanup()

	path := filepath.Join(t.TempDir(), "kensho-plugin-jira")
	if err := os.WriteFile(path, []byte("not a binary"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := loader.Load(path)
	if err == nil {
		t.Fatal("expected error for non-executable file")
	}
	if !strings.Contains(err.Error(), "not executable") {
		t.Errorf("error = %v", err)
	}
}

func TestHandshake(t *testing.T) {
	if HandshakeConfig.MagicCookieKey != "KENSHO_PLUGIN" {
		t.Errorf("cookie key = %q", HandshakeConfig.MagicCookieKey)
	}
	if _, ok := PluginMap["publisher"]; !ok {
		t.Error("publisher missing from plugin map")
	}
}
