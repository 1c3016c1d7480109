package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/theme"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "motohub") {
		t.Errorf("GetConfigDir() = %v, should contain 'motohub'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "motohub"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.Preferences == nil {
		t.Fatal("NewConfig().Preferences should not be nil")
	}
	if cfg.ThemeMode() != theme.Light {
		t.Errorf("NewConfig().ThemeMode() = %v, want light", cfg.ThemeMode())
	}
	if cfg.ToastDuration() != 4*time.Second {
		t.Errorf("NewConfig().ToastDuration() = %v, want 4s", cfg.ToastDuration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("NewConfig().Validate() error = %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Load().Version = %v, want %v", cfg.Version, CurrentVersion)
	}
	if cfg.Seed != nil {
		t.Error("Load() of a missing file should have no seed")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "preferences",
			content: `version: 1
preferences:
  theme: dark
  toast_seconds: 10
  log_level: debug
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.ThemeMode() != theme.Dark {
					t.Errorf("ThemeMode() = %v, want dark", cfg.ThemeMode())
				}
				if cfg.ToastDuration() != 10*time.Second {
					t.Errorf("ToastDuration() = %v, want 10s", cfg.ToastDuration())
				}
				if cfg.Preferences.LogLevel != "debug" {
					t.Errorf("LogLevel = %q, want debug", cfg.Preferences.LogLevel)
				}
			},
		},
		{
			name: "preferences without toast seconds",
			content: `version: 1
preferences:
  theme: dark
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Preferences.ToastSeconds != 4 {
					t.Errorf("ToastSeconds = %d, want 4", cfg.Preferences.ToastSeconds)
				}
				if cfg.ToastDuration() != 4*time.Second {
					t.Errorf("ToastDuration() = %v, want 4s", cfg.ToastDuration())
				}
			},
		},
		{
			name:    "no preferences",
			content: "version: 1\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Preferences == nil {
					t.Fatal("Preferences should be defaulted")
				}
				if cfg.ToastDuration() != 4*time.Second {
					t.Errorf("ToastDuration() = %v, want 4s", cfg.ToastDuration())
				}
			},
		},
		{
			name: "seeded vehicles",
			content: `version: 1
seed:
  vehicles:
    - id: "v1"
      name: Himalayan
      type: motorcycle
      make: Royal Enfield
      model: Himalayan 450
      year: 2024
      specs:
        Engine: 452cc
        fuel_capacity: 17 L
`,
			check: func(t *testing.T, cfg *Config) {
				_, _, vehicles := cfg.SeedData()
				if len(vehicles) != 1 {
					t.Fatalf("SeedData() returned %d vehicles, want 1", len(vehicles))
				}
				v := vehicles[0]
				if v.Year != 2024 || v.Specs.Get(garage.SpecFuelCapacity) != "17 L" {
					t.Errorf("SeedData() vehicle = %+v", v)
				}
			},
		},
		{
			name: "seeded posts",
			content: `version: 1
seed:
  posts:
    - id: "post-1"
      author: Priya Patel
      created: 2026-03-14T09:00:00Z
      type: ride_log
      content: Logged my weekend ride to Lonavala.
      likes: 35
`,
			check: func(t *testing.T, cfg *Config) {
				posts := cfg.SeedPosts()
				if len(posts) != 1 {
					t.Fatalf("SeedPosts() returned %d posts, want 1", len(posts))
				}
				if posts[0].Type != garage.PostRideLog || posts[0].Likes != 35 || posts[0].Created.Year() != 2026 {
					t.Errorf("SeedPosts() post = %+v", posts[0])
				}
			},
		},
		{
			name:    "unknown post type",
			content: "version: 1\nseed:\n  posts:\n    - {id: \"p\", type: video}\n",
			wantErr: "seed.posts[0]",
		},
		{name: "bad version", content: "version: 2\n", wantErr: "unsupported config version"},
		{name: "bad theme", content: "version: 1\npreferences:\n  theme: neon\n", wantErr: "preferences.theme"},
		{name: "negative toast", content: "version: 1\npreferences:\n  theme: light\n  toast_seconds: -1\n", wantErr: "toast_seconds"},
		{
			name: "unknown spec key",
			content: `version: 1
seed:
  vehicles:
    - id: "v1"
      type: car
      specs:
        Wheels: "4"
`,
			wantErr: "Wheels",
		},
		{
			name: "duplicate vehicle id",
			content: `version: 1
seed:
  vehicles:
    - {id: "a", type: car}
    - {id: "a", type: car}
`,
			wantErr: "duplicate id",
		},
		{name: "malformed", content: "version: [", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSeedDataFallsBackToSamples(t *testing.T) {
	cfg := NewConfig()
	custom := garage.Profile{ID: "p", Name: "Custom"}
	cfg.Seed = &Seed{Profile: &custom}

	profile, settings, vehicles := cfg.SeedData()

	if profile.Name != "Custom" {
		t.Errorf("profile = %+v, want the seeded one", profile)
	}
	if settings != garage.SampleSettings() {
		t.Errorf("settings = %+v, want samples", settings)
	}
	if len(vehicles) != len(garage.SampleVehicles()) {
		t.Errorf("vehicles = %d, want the sample garage", len(vehicles))
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := CreateDefaultConfig(path, false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if written != path {
		t.Errorf("CreateDefaultConfig() path = %v, want %v", written, path)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Motohub Configuration File") {
		t.Error("saved file should start with the header comment")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	profile, settings, vehicles := cfg.SeedData()
	if profile != garage.SampleProfile() {
		t.Errorf("profile round trip = %+v", profile)
	}
	if settings != garage.SampleSettings() {
		t.Errorf("settings round trip = %+v", settings)
	}
	want := garage.SampleVehicles()
	if len(vehicles) != len(want) {
		t.Fatalf("vehicles round trip = %d, want %d", len(vehicles), len(want))
	}
	if vehicles[0].Specs != want[0].Specs {
		t.Errorf("specs round trip = %v, want %v", vehicles[0].Specs.Entries(), want[0].Specs.Entries())
	}

	if _, err := CreateDefaultConfig(path, false); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(path, true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
