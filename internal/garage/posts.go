package garage

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// KindPost prefixes generated post ids.
const KindPost Kind = "post"

// PostType is what a post shares.
type PostType string

const (
	PostPhoto   PostType = "photo"
	PostRideLog PostType = "ride_log"
	PostRoute   PostType = "route"
)

// PostTypes lists the composer tabs in display order.
var PostTypes = []PostType{PostPhoto, PostRideLog, PostRoute}

// ParsePostType returns the type named by s. "ride" is accepted for
// PostRideLog.
func ParsePostType(s string) (PostType, bool) {
	if s == "ride" {
		return PostRideLog, true
	}
	for _, t := range PostTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label returns the display label.
func (t PostType) Label() string {
	switch t {
	case PostPhoto:
		return "Photo"
	case PostRideLog:
		return "Ride Log"
	case PostRoute:
		return "Route"
	default:
		return string(t)
	}
}

// Post is one entry on the rider's Posts tab, newest first.
type Post struct {
	ID       string    `yaml:"id" json:"id"`
	Author   string    `yaml:"author" json:"author"`
	Avatar   string    `yaml:"avatar,omitempty" json:"avatar"`
	Created  time.Time `yaml:"created" json:"created"`
	Type     PostType  `yaml:"type" json:"type"`
	Content  string    `yaml:"content" json:"content"`
	Images   []string  `yaml:"images,omitempty" json:"images"`
	Likes    int       `yaml:"likes" json:"likes"`
	Comments int       `yaml:"comments" json:"comments"`
	Shares   int       `yaml:"shares" json:"shares"`
}

// EntityID implements Entity.
func (p Post) EntityID() string { return p.ID }

// Clone returns a copy sharing no slices with p.
func (p Post) Clone() Post {
	p.Images = slices.Clone(p.Images)
	return p
}

// Age renders how long ago the post was created: "Just now",
// "5 minutes ago", "2 hours ago", "Yesterday" or the date.
func (p Post) Age(now time.Time) string {
	d := now.Sub(p.Created)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return p.Created.Format("2 January 2006")
	}
}

// Summary returns a one-line summary of the post
func (p Post) Summary() string {
	content := strings.Join(strings.Fields(p.Content), " ")
	if r := []rune(content); len(r) > 60 {
		content = string(r[:57]) + "..."
	}
	return fmt.Sprintf("%s: %s [%s]", p.Type.Label(), content, p.ID)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
