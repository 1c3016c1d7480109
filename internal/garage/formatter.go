package garage

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the vehicle
func (v Vehicle) Summary() string {
	return fmt.Sprintf("%s (%s, %s) [%s]", v.Name, v.Title(), v.Type.Label(), v.ID)
}

// FormatSpecs returns the non-empty specs, one "Key: Value" per line
func (v Vehicle) FormatSpecs() string {
	var b strings.Builder
	for _, e := range v.Specs.Entries() {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", e.Key.String()+":", e.Value))
	}
	return b.String()
}

// FormatDetailed returns the full vehicle card
func (v Vehicle) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", v.Name))
	b.WriteString(fmt.Sprintf("ID:     %s\n", v.ID))
	b.WriteString(fmt.Sprintf("Type:   %s\n", v.Type.Label()))
	b.WriteString(fmt.Sprintf("Make:   %s\n", v.Make))
	b.WriteString(fmt.Sprintf("Model:  %s\n", v.Model))
	b.WriteString(fmt.Sprintf("Year:   %d\n", v.Year))
	b.WriteString(fmt.Sprintf("Color:  %s\n", v.Color))
	b.WriteString(fmt.Sprintf("Images: %d\n", len(v.Images)))

	if specs := v.FormatSpecs(); specs != "" {
		b.WriteString("Technical Specifications:\n")
		b.WriteString(specs)
	}

	return b.String()
}

// FormatCompact returns a two-line profile card
func (p Profile) FormatCompact() string {
	return fmt.Sprintf("%s • %s • %s\n%d followers • %d following\n",
		p.Name, p.Location, p.JoinDate, p.Followers, p.Following)
}

// FormatDetailed returns the full profile card
func (p Profile) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Profile ===\n")
	b.WriteString(fmt.Sprintf("Name:      %s\n", p.Name))
	b.WriteString(fmt.Sprintf("Location:  %s\n", p.Location))
	b.WriteString(fmt.Sprintf("Joined:    %s\n", strings.TrimPrefix(p.JoinDate, "Joined ")))
	b.WriteString(fmt.Sprintf("Followers: %d\n", p.Followers))
	b.WriteString(fmt.Sprintf("Following: %d\n", p.Following))
	if p.Bio != "" {
		b.WriteString(fmt.Sprintf("Bio:       %s\n", p.Bio))
	}

	return b.String()
}

// FormatDetailed returns the settings flags
func (s Settings) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Settings ===\n")
	b.WriteString(fmt.Sprintf("Email Notifications: %s\n", onOff(s.EmailNotifications)))
	b.WriteString(fmt.Sprintf("Push Notifications:  %s\n", onOff(s.PushNotifications)))
	b.WriteString(fmt.Sprintf("Dark Mode:           %s\n", onOff(s.DarkMode)))
	b.WriteString(fmt.Sprintf("Private Profile:     %s\n", onOff(s.PrivateProfile)))

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
