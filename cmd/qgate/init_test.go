package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommand_BasicConfigCreation(t *testing.T) {
	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "qgate-init-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Set up the config path
	configPath := filepath.Join(tmpDir, "qgate.yaml")

	// Run the init command with args
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Verify content
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	// Check for expected sections
	contentStr := string(content)
	expectedSections := []string{
		"gate:",
		"total_failed:",
		"total_unstable:",
		"new_failed:",
		"new_unstable:",
		"output:",
		"reports:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Config file missing expected section: %s", section)
		}
	}
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "qgate-init-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "qgate.yaml")

	// Create an existing file
	existingContent := []byte("gate: {}\n")
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	// Try to create without force - should fail
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err = cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when file exists without --force")
	}

	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	// Now try with force - should succeed
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	// Verify file was overwritten (should have the threshold sections now)
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	if !strings.Contains(string(content), "total_failed") {
		t.Error("Config file was not overwritten with new content")
	}
}

func TestInitCommand_MinimalConfig(t *testing.T) {
	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "qgate-init-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "qgate.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--minimal"})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	// Verify file was created
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	// Minimal config should be shorter and contain essential sections
	contentStr := string(content)

	if !strings.Contains(contentStr, "gate:") {
		t.Error("Minimal config missing gate section")
	}

	if !strings.Contains(contentStr, "total_failed:") {
		t.Error("Minimal config missing total_failed section")
	}

	// Minimal config should have the minimal comment
	if !strings.Contains(contentStr, "minimal") {
		t.Error("Minimal config should indicate it's minimal")
	}
}

func TestInitCommand_StrictnessPresets(t *testing.T) {
	tests := []struct {
		strictness string
		want       string
	}{
		{"relaxed", "all: 500"},
		{"standard", "all: 100"},
		{"strict", "all: 50"},
	}

	for _, tt := range tests {
		t.Run(tt.strictness, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "qgate.yaml")

			cmd := initCmd()
			cmd.SetArgs([]string{"--config", configPath, "--strictness", tt.strictness})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("init --strictness %s failed: %v", tt.strictness, err)
			}

			content, err := os.ReadFile(configPath)
			if err != nil {
				t.Fatalf("Failed to read config file: %v", err)
			}

			if !strings.Contains(string(content), tt.want) {
				t.Errorf("Expected preset threshold %q in template", tt.want)
			}
		})
	}
}

func TestInitCommand_StrictPresetFailsOnNewHighPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "qgate.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--strictness", "strict"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	// The strict preset sets new_failed.high to 1
	if !strings.Contains(string(content), "high: 1") {
		t.Error("Strict preset should fail on any new high priority issue")
	}
}

func TestInitCommand_CustomOutputPath(t *testing.T) {
	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "qgate-init-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Test custom filename
	customPath := filepath.Join(tmpDir, "custom-gate.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", customPath})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init with custom path failed: %v", err)
	}

	// Verify file was created at custom path
	if _, err := os.Stat(customPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created at custom path")
	}
}

func TestInitCommand_InvalidDirectory(t *testing.T) {
	// Try to create config in non-existent directory
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/directory/qgate.yaml"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when directory doesn't exist")
	}

	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Expected 'directory does not exist' error, got: %v", err)
	}
}

func TestInitCommand_FullConfigSize(t *testing.T) {
	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "qgate-init-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create full config
	fullPath := filepath.Join(tmpDir, "full.yaml")
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", fullPath})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	fullContent, _ := os.ReadFile(fullPath)

	// Create minimal config
	minimalPath := filepath.Join(tmpDir, "minimal.yaml")
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", minimalPath, "--minimal"})
	err = cmd.Execute()
	if err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	minimalContent, _ := os.ReadFile(minimalPath)

	// Full config should be larger than minimal
	if len(fullContent) <= len(minimalContent) {
		t.Error("Full config should be larger than minimal config")
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()

	// Check that all expected flags exist
	expectedFlags := []string{"config", "force", "minimal", "strictness", "interactive"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}

	// Check short flags
	shortFlags := map[string]string{
		"c": "config",
		"f": "force",
		"s": "strictness",
		"i": "interactive",
	}

	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestInitCmd_DefaultConfigPath(t *testing.T) {
	cmd := initCmd()

	// Verify default config path
	configFlag := cmd.Flags().Lookup("config")
	if configFlag == nil {
		t.Fatal("config flag not found")
	}

	if configFlag.DefValue != "qgate.yaml" {
		t.Errorf("Expected default config path to be 'qgate.yaml', got '%s'", configFlag.DefValue)
	}
}
