package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/notify"
	"github.com/muurk/motohub/internal/theme"
)

// CurrentVersion is the only schema version Load accepts.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
	Seed        *Seed        `yaml:"seed,omitempty"` // Replaces the built-in sample data when present
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Theme        string `yaml:"theme"`               // "light" or "dark"
	ToastSeconds int    `yaml:"toast_seconds"`       // 0 or unset means the default
	LogLevel     string `yaml:"log_level,omitempty"` // Overridden by MOTOHUB_LOG_LEVEL
	LogFile      string `yaml:"log_file,omitempty"`
}

// Seed is the initial data shown on start. Missing parts fall back to the
// samples.
type Seed struct {
	Profile  *garage.Profile  `yaml:"profile,omitempty"`
	Settings *garage.Settings `yaml:"settings,omitempty"`
	Vehicles []garage.Vehicle `yaml:"vehicles,omitempty"`
	Posts    []garage.Post    `yaml:"posts,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		Theme:        string(theme.Light),
		ToastSeconds: int(notify.DefaultDuration / time.Second),
	}
}

// Validate checks the version and preference values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Preferences != nil {
		if _, err := theme.ParseMode(c.Preferences.Theme); err != nil {
			return fmt.Errorf("preferences.theme: %w", err)
		}
		if c.Preferences.ToastSeconds < 0 {
			return fmt.Errorf("preferences.toast_seconds must not be negative, got %d", c.Preferences.ToastSeconds)
		}
	}
	if c.Seed != nil {
		seen := make(map[string]bool, len(c.Seed.Vehicles))
		for i, v := range c.Seed.Vehicles {
			if v.ID == "" {
				return fmt.Errorf("seed.vehicles[%d]: missing id", i)
			}
			if seen[v.ID] {
				return fmt.Errorf("seed.vehicles[%d]: duplicate id %q", i, v.ID)
			}
			seen[v.ID] = true
			if _, ok := garage.ParseVehicleType(string(v.Type)); !ok {
				return fmt.Errorf("seed.vehicles[%d]: unknown type %q", i, v.Type)
			}
		}
		for i, p := range c.Seed.Posts {
			if p.ID == "" {
				return fmt.Errorf("seed.posts[%d]: missing id", i)
			}
			if _, ok := garage.ParsePostType(string(p.Type)); !ok {
				return fmt.Errorf("seed.posts[%d]: unknown type %q", i, p.Type)
			}
		}
	}
	return nil
}

// ThemeMode returns the configured theme, light when unset.
func (c *Config) ThemeMode() theme.Mode {
	if c.Preferences == nil {
		return theme.Light
	}
	mode, err := theme.ParseMode(c.Preferences.Theme)
	if err != nil {
		return theme.Light
	}
	return mode
}

// ToastDuration returns how long toasts stay visible.
func (c *Config) ToastDuration() time.Duration {
	if c.Preferences == nil || c.Preferences.ToastSeconds <= 0 {
		return notify.DefaultDuration
	}
	return time.Duration(c.Preferences.ToastSeconds) * time.Second
}

// SeedData returns the profile, settings and garage to start with.
func (c *Config) SeedData() (garage.Profile, garage.Settings, []garage.Vehicle) {
	profile := garage.SampleProfile()
	settings := garage.SampleSettings()
	vehicles := garage.SampleVehicles()

	if c.Seed == nil {
		return profile, settings, vehicles
	}
	if c.Seed.Profile != nil {
		profile = *c.Seed.Profile
	}
	if c.Seed.Settings != nil {
		settings = *c.Seed.Settings
	}
	if c.Seed.Vehicles != nil {
		vehicles = make([]garage.Vehicle, 0, len(c.Seed.Vehicles))
		for _, v := range c.Seed.Vehicles {
			vehicles = append(vehicles, v.Clone())
		}
	}
	return profile, settings, slices.Clip(vehicles)
}

// SeedPosts returns the posts to start with, newest first. There are no
// sample posts.
func (c *Config) SeedPosts() []garage.Post {
	if c.Seed == nil {
		return nil
	}
	posts := make([]garage.Post, 0, len(c.Seed.Posts))
	for _, p := range c.Seed.Posts {
		posts = append(posts, p.Clone())
	}
	return posts
}
