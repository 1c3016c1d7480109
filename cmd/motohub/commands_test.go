package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/motohub/internal/config"
	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/session"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []assignment
		wantErr bool
	}{
		{name: "empty", raw: nil, want: []assignment{}},
		{
			name: "values may contain equals and spaces",
			raw:  []string{"name=My Bike", "engine=a=b", " year =2020"},
			want: []assignment{{"name", "My Bike"}, {"engine", "a=b"}, {"year", "2020"}},
		},
		{name: "empty value", raw: []string{"color="}, want: []assignment{{"color", ""}}},
		{name: "missing equals", raw: []string{"name"}, wantErr: true},
		{name: "missing key", raw: []string{"=x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyAssignmentsEditsVehicle(t *testing.T) {
	cfg = config.NewConfig()
	h := newHub()

	ctrl, err := h.EditVehicle("1")
	require.NoError(t, err)
	require.NoError(t, applyAssignments(ctrl, []string{"year=abc", "mileage=38 kmpl"}))
	v, err := ctrl.Commit()
	require.NoError(t, err)

	assert.Equal(t, 2022, v.Year)
	assert.Equal(t, "38 kmpl", h.Vehicles[0].Specs.Get(garage.SpecMileage))
	assert.Len(t, h.Vehicles, 1)
}

func TestApplyAssignmentsUnknownFieldCancels(t *testing.T) {
	cfg = config.NewConfig()
	h := newHub()

	ctrl := h.AddVehicle()
	err := applyAssignments(ctrl, []string{"name=ok", "wheels=2"})

	assert.True(t, session.IsUnknownField(err))
	assert.False(t, ctrl.IsOpen())
	assert.Len(t, h.Vehicles, 1)
	assert.Empty(t, h.Notifier.Active())
}

func TestCommitPost(t *testing.T) {
	cfg = config.NewConfig()
	cfg.Seed = &config.Seed{Posts: []garage.Post{{ID: "post-1", Type: garage.PostPhoto, Content: "Seeded"}}}
	h := newHub()
	require.Len(t, h.Posts, 1)

	assignments = []string{"type=route", "content=Mumbai to Pune via the old highway"}
	t.Cleanup(func() { assignments = nil })
	require.NoError(t, commitPost(h, h.NewPost()))

	require.Len(t, h.Posts, 2)
	assert.Equal(t, garage.PostRoute, h.Posts[0].Type)
	assert.Equal(t, "post-1", h.Posts[1].ID)

	assignments = []string{"content=  "}
	err := commitPost(h, h.NewPost())
	assert.ErrorContains(t, err, "no content")
	assert.Len(t, h.Posts, 2)
}

func TestLogOptions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defaultLog, err := config.GetLogPath()
	require.NoError(t, err)
	require.Equal(t, "motohub.log", filepath.Base(defaultLog))

	tests := []struct {
		name        string
		env         string
		prefs       *config.Preferences
		interactive bool
		want        string // expected File
		wantLevel   string
	}{
		{"silent", "", &config.Preferences{}, true, "", ""},
		{"cli logs to stderr", "debug", &config.Preferences{}, false, "", "debug"},
		{"tui logs to file", "debug", &config.Preferences{}, true, defaultLog, "debug"},
		{"configured file wins", "", &config.Preferences{LogLevel: "info", LogFile: "/tmp/m.log"}, true, "/tmp/m.log", "info"},
		{"env level wins", "warn", &config.Preferences{LogLevel: "info"}, false, "", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := logOptions(tt.env, tt.prefs, tt.interactive)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, opts.Level)
			assert.Equal(t, tt.want, opts.File)
		})
	}
}
