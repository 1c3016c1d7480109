package session

import (
	"strings"
	"time"

	"github.com/muurk/motohub/internal/garage"
)

// Post draft field names.
const (
	PostType    = "type"
	PostContent = "content"
)

// PostDraft composes or edits a garage.Post. Author, images and counters are
// never edited; a new post takes its author from the author func.
type PostDraft struct {
	form
	author func() garage.Profile
}

var _ Draft[garage.Post] = (*PostDraft)(nil)

// NewPostDraft returns a post draft. author may be nil.
func NewPostDraft(author func() garage.Profile) *PostDraft {
	types := make([]string, 0, len(garage.PostTypes))
	for _, t := range garage.PostTypes {
		types = append(types, string(t))
	}

	return &PostDraft{
		form: newForm([]Field{
			{Name: PostType, Label: "Type", Kind: FieldChoice, Choices: types},
			{Name: PostContent, Label: "What's on your mind?", Kind: FieldLongText, Placeholder: "Share photos of your vehicle or recent adventures..."},
		}),
		author: author,
	}
}

// Kind implements Draft.
func (d *PostDraft) Kind() garage.Kind { return garage.KindPost }

// Seed implements Draft. Create mode starts on the photo tab with no text.
func (d *PostDraft) Seed(src *garage.Post, _ time.Time) {
	d.clear()
	if src == nil {
		d.put(PostType, string(garage.PostPhoto))
		return
	}
	d.put(PostType, string(src.Type))
	d.put(PostContent, src.Content)
}

// Build implements Draft. A new post is stamped with the clock and the
// author's name and avatar, and starts with zero counters.
func (d *PostDraft) Build(prev *garage.Post, env Env) garage.Post {
	var p garage.Post
	ptype := garage.PostPhoto

	if prev != nil {
		p = prev.Clone()
		if _, ok := garage.ParsePostType(string(prev.Type)); ok {
			ptype = prev.Type
		}
	} else {
		p.Created = env.Now
		if d.author != nil {
			a := d.author()
			p.Author, p.Avatar = a.Name, a.Avatar
		}
	}
	if p.ID == "" {
		p.ID = env.NewID()
	}

	if t, ok := garage.ParsePostType(strings.TrimSpace(d.get(PostType))); ok {
		ptype = t
	}
	p.Type = ptype
	p.Content = d.get(PostContent)

	return p
}
