package conf

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Helper functions for creating pointer values in DTO tests
func stringPtr(s string) *string { return &s }

func TestConfig_Update(t *testing.T) {
	tests := []struct {
		name     string
		base     Config
		overlay  configDTO
		expected Config
	}{
		{
			name: "overlay replaces values",
			base: Config{
				Domain:   "coreutils",
				LogLevel: slog.LevelInfo,
			},
			overlay: configDTO{
				Domain:   stringPtr("hellogo"),
				LogLevel: stringPtr("DEBUG"),
			},
			expected: Config{
				Domain:   "hellogo",
				LogLevel: slog.LevelDebug,
			},
		},
		{
			name: "overlay partial update",
			base: Config{
				Domain:    "hellogo",
				LocaleDir: "/usr/share/locale",
				Codeset:   "UTF-8",
				LogLevel:  slog.LevelInfo,
			},
			overlay: configDTO{
				Locale: stringPtr("de_DE.UTF-8"),
			},
			expected: Config{
				Domain:    "hellogo",
				LocaleDir: "/usr/share/locale",
				Locale:    "de_DE.UTF-8",
				Codeset:   "UTF-8",
				LogLevel:  slog.LevelInfo,
			},
		},
		{
			name: "empty overlay does nothing",
			base: Config{
				Domain:   "hellogo",
				LogLevel: slog.LevelInfo,
			},
			overlay: configDTO{},
			expected: Config{
				Domain:   "hellogo",
				LogLevel: slog.LevelInfo,
			},
		},
		{
			name: "overlay can set empty strings",
			base: Config{
				Domain:    "hellogo",
				LocaleDir: "/usr/share/locale",
			},
			overlay: configDTO{
				Domain:    stringPtr(""),
				LocaleDir: stringPtr(""),
			},
			expected: Config{
				Domain:    "",
				LocaleDir: "",
			},
		},
		{
			name: "unknown log level is ignored",
			base: Config{
				LogLevel: slog.LevelWarn,
			},
			overlay: configDTO{
				LogLevel: stringPtr("LOUD"),
			},
			expected: Config{
				LogLevel: slog.LevelWarn,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.base
			result.Update(tt.overlay)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Update() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigSource_ReadFile(t *testing.T) {
	// Create a temporary directory for test files
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		fileContent string
		setupFile   bool
		expectError bool
		expected    Config
	}{
		{
			name: "valid config file",
			fileContent: `domain = "hellogo"
locale-dir = "/opt/hellogo/share/locale"
log-level = "DEBUG"
`,
			setupFile:   true,
			expectError: false,
			expected: Config{
				Domain:    "hellogo",
				LocaleDir: "/opt/hellogo/share/locale",
				Codeset:   "UTF-8", // from defaults
				LogLevel:  slog.LevelDebug,
			},
		},
		{
			name:        "missing file uses defaults",
			setupFile:   false,
			expectError: false,
			expected: Config{
				Codeset:  "UTF-8",        // from defaults
				LogLevel: slog.LevelInfo, // from defaults
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, "test-"+tt.name+".toml")

			if tt.setupFile {
				if err := os.WriteFile(testFile, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			source := &ConfigSource{Path: testFile, DropInDir: filepath.Join(tmpDir, "nonexistent")}
			result, err := source.Read()

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("Read() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParseConfigDTO(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    configDTO
	}{
		{
			name: "valid TOML string",
			input: `
domain = "hellogo"
locale = "cs_CZ.UTF-8"
`,
			expectError: false,
			expected: configDTO{
				Domain: stringPtr("hellogo"),
				Locale: stringPtr("cs_CZ.UTF-8"),
			},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: false,
			expected:    configDTO{},
		},
		{
			name:        "invalid TOML",
			input:       "not valid toml ===",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseConfigDTO(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("parseConfigDTO() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestConfigSource_FullStack(t *testing.T) {
	// Create temporary directory structure for testing
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")

	// Create drop-in directory
	if err := os.Mkdir(dropinDir, 0755); err != nil {
		t.Fatalf("failed to create drop-in directory: %v", err)
	}

	t.Run("full configuration stack", func(t *testing.T) {
		// Write main config
		mainConfig := `
domain = "hellogo"
locale-dir = "/usr/share/locale"
log-level = "INFO"
`
		if err := os.WriteFile(mainConfigPath, []byte(mainConfig), 0644); err != nil {
			t.Fatalf("failed to write main config: %v", err)
		}

		// Drop-ins applied in lexicographic order; the later one wins.
		dropin1 := `
locale = "de_DE.UTF-8"
log-level = "WARN"
`
		if err := os.WriteFile(filepath.Join(dropinDir, "10-locale.toml"), []byte(dropin1), 0644); err != nil {
			t.Fatalf("failed to write drop-in: %v", err)
		}
		dropin2 := `
log-level = "DEBUG"
`
		if err := os.WriteFile(filepath.Join(dropinDir, "20-debug.toml"), []byte(dropin2), 0644); err != nil {
			t.Fatalf("failed to write drop-in: %v", err)
		}

		source := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
		result, err := source.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := Config{
			Domain:    "hellogo",
			LocaleDir: "/usr/share/locale",
			Locale:    "de_DE.UTF-8",
			Codeset:   "UTF-8", // from defaults, untouched by any layer
			LogLevel:  slog.LevelDebug,
		}
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("Read() mismatch (-want +got):\n%s", diff)
		}
	})
}
