package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/motohub/internal/garage"
)

// Printer writes styled components to a writer.
type Printer struct {
	out    io.Writer
	width  int
	styles Styles
}

// NewPrinter creates a new Printer that writes to the given writer using the
// current theme. If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  GetTerminalWidth(),
		styles: CurrentStyles(),
	}
}

// WithWidth overrides the terminal width.
func (p *Printer) WithWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Styles returns the printer's styles.
func (p *Printer) Styles() Styles {
	return p.styles
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render(p.styles))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render(p.styles))
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Param) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render(p.styles))
}

// PrintError prints an error result box with hints
func (p *Printer) PrintError(title string, err error, hints ...string) {
	p.Println(NewFailureResult(title, err, hints...).SetWidth(p.width).Render(p.styles))
}

// PrintToast prints a notification box.
func (p *Printer) PrintToast(title, description string) {
	p.Println(RenderToast(p.styles, title, description, p.width/2))
}

// PrintVehicle prints one vehicle card
func (p *Printer) PrintVehicle(v garage.Vehicle) {
	p.Println(RenderVehicleCard(p.styles, v, p.width))
}

// PrintGarage prints every vehicle card, or an empty-state line.
func (p *Printer) PrintGarage(vehicles []garage.Vehicle) {
	if len(vehicles) == 0 {
		p.Println(p.styles.Muted.Render("  No vehicles yet. Add one with `motohub vehicle add`."))
		return
	}
	for _, v := range vehicles {
		p.PrintVehicle(v)
	}
}

// PrintPosts prints the post cards, newest first, or an empty-state line.
func (p *Printer) PrintPosts(posts []garage.Post, now time.Time) {
	if len(posts) == 0 {
		p.Println(p.styles.Muted.Render("  No posts yet. Share one with `motohub post create`."))
		return
	}
	for _, post := range posts {
		p.Println(RenderPostCard(p.styles, post, now, p.width))
	}
}

// PrintProfile prints the profile card
func (p *Printer) PrintProfile(profile garage.Profile) {
	p.Println(RenderProfileCard(p.styles, profile, p.width))
}

// PrintSettings prints the settings flags as a result box.
func (p *Printer) PrintSettings(s garage.Settings) {
	r := &Result{Type: ResultSuccess, Title: "Settings", Width: p.width}
	r.AddDetail("Email Notifications", OnOff(s.EmailNotifications)).
		AddDetail("Push Notifications", OnOff(s.PushNotifications)).
		AddDetail("Dark Mode", OnOff(s.DarkMode)).
		AddDetail("Private Profile", OnOff(s.PrivateProfile))
	p.Println(r.Render(p.styles))
}

// OnOff renders a flag.
func OnOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// RenderVehicleCard renders a vehicle with its technical specifications.
func RenderVehicleCard(s Styles, v garage.Vehicle, width int) string {
	lines := []string{
		s.CardTitle.Render(v.Name),
		s.CardSubtitle.Render(v.Title()),
		s.Muted.Render(v.Type.Label()+" "+BulletMarker+" "+v.Color) + "  " + s.Muted.Render("["+v.ID+"]"),
	}

	if entries := v.Specs.Entries(); len(entries) > 0 {
		lines = append(lines, "", s.SectionTitle.Render("Technical Specifications"))
		for _, e := range entries {
			lines = append(lines, s.ResultKey.Render(e.Key.String())+s.ResultValue.Render(e.Value))
		}
	}

	return s.CardBox(width).Render(strings.Join(lines, "\n"))
}

// RenderPostCard renders one post with its type, age and counters.
func RenderPostCard(s Styles, post garage.Post, now time.Time, width int) string {
	author := post.Author
	if author == "" {
		author = "Unknown rider"
	}
	lines := []string{
		s.CardTitle.Render(author) + "  " + s.Muted.Render(post.Age(now)+" "+BulletMarker+" "+post.Type.Label()),
		lipgloss.NewStyle().Width(width - 6).Render(s.Text.Render(post.Content)),
		s.Muted.Render(fmt.Sprintf("%d likes  %d comments  %d shares", post.Likes, post.Comments, post.Shares)),
	}
	return s.CardBox(width).Render(strings.Join(lines, "\n"))
}

// RenderProfileCard renders the profile header.
func RenderProfileCard(s Styles, p garage.Profile, width int) string {
	meta := []string{}
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.JoinDate != "" {
		meta = append(meta, p.JoinDate)
	}

	lines := []string{
		s.CardTitle.Render(p.Name),
		s.Muted.Render(strings.Join(meta, "  "+BulletMarker+"  ")),
		s.Text.Render(strconv.Itoa(p.Followers)) + s.Muted.Render(" followers  ") +
			s.Text.Render(strconv.Itoa(p.Following)) + s.Muted.Render(" following"),
	}
	if p.Bio != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(width-6).Render(s.Text.Render(p.Bio)))
	}

	return s.CardBox(width).Render(strings.Join(lines, "\n"))
}

// RenderToast renders one notification.
func RenderToast(s Styles, title, description string, width int) string {
	if width < 30 {
		width = 30
	}
	content := s.ToastTitle.Render(title)
	if description != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			s.ToastBody.Width(width-4).Render(description))
	}
	return s.ToastBox(width - 2).Render(content)
}
