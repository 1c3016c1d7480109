package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/motohub/internal/garage"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf).WithWidth(80), &buf
}

func TestPrintHeaderKeepsParamOrder(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintHeader("My Garage", "motohub show",
		Param{Key: "Vehicles", Value: "1"},
		Param{Key: "Theme", Value: "light"},
	)

	out := buf.String()
	assert.Contains(t, out, "MY GARAGE")
	assert.Contains(t, out, "motohub show")
	assert.Less(t, strings.Index(out, "Vehicles:"), strings.Index(out, "Theme:"))
}

func TestPrintResults(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintSuccess("Vehicle updated", Param{Key: "ID", Value: "1"})
	p.PrintError("Edit failed", errors.New("no vehicle with id 9"), "Run motohub show to list ids")
	p.PrintWarning("Nothing changed")

	out := buf.String()
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "Vehicle updated")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "no vehicle with id 9")
	assert.Contains(t, out, "Run motohub show to list ids")
	assert.Contains(t, out, "WARNING")
}

func TestPrintVehicle(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintVehicle(garage.SampleVehicles()[0])

	out := buf.String()
	assert.Contains(t, out, "My Classic 350")
	assert.Contains(t, out, "Royal Enfield Classic 350 2022")
	assert.Contains(t, out, "Technical Specifications")
	assert.Less(t, strings.Index(out, "Engine"), strings.Index(out, "Kerb Weight"))
}

func TestPrintGarageEmpty(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintGarage(nil)

	assert.Contains(t, buf.String(), "No vehicles yet")
}

func TestPrintProfileAndSettings(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintProfile(garage.SampleProfile())
	p.PrintSettings(garage.Settings{EmailNotifications: true})

	out := buf.String()
	assert.Contains(t, out, "Rahul Sharma")
	assert.Contains(t, out, "245")
	assert.Contains(t, out, "followers")
	assert.Contains(t, out, "Email Notifications")
	assert.Contains(t, out, "Dark Mode")
}

func TestPrintToast(t *testing.T) {
	p, buf := newTestPrinter()

	p.PrintToast("Profile updated", "Saved")

	assert.Contains(t, buf.String(), "Profile updated")
	assert.Contains(t, buf.String(), "Saved")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, buf := newTestPrinter()
			got := p.Confirm(strings.NewReader(tt.input), "Overwrite config", []string{"The existing file will be replaced"})
			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), "Overwrite config")
		})
	}
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(10))
	assert.Equal(t, MaxContentWidth, clampWidth(500))
	assert.Equal(t, 80, clampWidth(80))
}

func TestPrintPosts(t *testing.T) {
	p, buf := newTestPrinter()
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	p.PrintPosts(nil, now)
	assert.Contains(t, buf.String(), "No posts yet")

	buf.Reset()
	p.PrintPosts([]garage.Post{
		{ID: "b", Author: "Priya Patel", Created: now.Add(-5 * time.Hour), Type: garage.PostRideLog, Content: "Lonavala", Likes: 35},
		{ID: "a", Created: now.Add(-30 * time.Second), Type: garage.PostRoute, Content: "Mumbai to Pune"},
	}, now)

	out := buf.String()
	assert.Contains(t, out, "Priya Patel")
	assert.Contains(t, out, "5 hours ago")
	assert.Contains(t, out, "Ride Log")
	assert.Contains(t, out, "35 likes")
	assert.Contains(t, out, "Unknown rider")
	assert.Less(t, strings.Index(out, "Lonavala"), strings.Index(out, "Mumbai to Pune"))
}
