// Package hub owns the profile page state: the displayed profile, settings,
// garage and posts, the edit controllers wired to them, and the toasts their
// commits raise. The TUI and the one-shot CLI commands both drive a Hub.
package hub

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/motohub/internal/collection"
	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/logging"
	"github.com/muurk/motohub/internal/notify"
	"github.com/muurk/motohub/internal/session"
	"github.com/muurk/motohub/internal/theme"
)

// Toast texts.
const (
	VehicleUpdatedTitle = "Vehicle updated"
	VehicleUpdatedBody  = "Your vehicle details have been updated successfully."
	VehicleAddedTitle   = "Vehicle added"
	VehicleAddedBody    = "Your new vehicle has been added successfully."
	ProfileUpdatedTitle = "Profile updated"
	ProfileUpdatedBody  = "Your profile has been updated successfully."
	SettingsSavedTitle  = "Settings saved"
	SettingsSavedBody   = "Your settings have been saved successfully."
	CoverUpdatedTitle   = "Cover photo updated"
	CoverUpdatedBody    = "Your cover photo has been updated successfully."
	AvatarUpdatedTitle  = "Profile picture updated"
	AvatarUpdatedBody   = "Your profile picture has been updated successfully."
	PostSharedTitle     = "Post shared"
	PostSharedBody      = "Your post has been shared successfully."
	PostUpdatedTitle    = "Post updated"
	PostUpdatedBody     = "Your post has been updated successfully."
)

// Hub is the single owner of the displayed entities. Not safe for
// concurrent use.
type Hub struct {
	Profile  garage.Profile
	Settings garage.Settings
	Vehicles []garage.Vehicle
	Posts    []garage.Post // newest first

	Notifier *notify.Notifier

	VehicleEditor  *session.Controller[garage.Vehicle]
	ProfileEditor  *session.Controller[garage.Profile]
	SettingsEditor *session.Controller[garage.Settings]
	PostEditor     *session.Controller[garage.Post]

	// LastCommitted is the id of the entity most recently saved
	LastCommitted string

	themes *theme.Store
	avatar func() int
	now    func() time.Time
}

// Option configures a Hub.
type Option func(*options)

type options struct {
	now    func() time.Time
	newID  func(garage.Kind) string
	themes *theme.Store
	avatar func() int
	posts  []garage.Post
}

// WithClock sets the clock used for create-mode defaults.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces garage.NewID.
func WithIDGenerator(fn func(garage.Kind) string) Option {
	return func(o *options) { o.newID = fn }
}

// WithThemeStore applies dark mode to s instead of the process-wide store.
func WithThemeStore(s *theme.Store) Option {
	return func(o *options) { o.themes = s }
}

// WithAvatarSeed replaces the random avatar seed.
func WithAvatarSeed(fn func() int) Option {
	return func(o *options) { o.avatar = fn }
}

// WithPosts seeds the Posts tab. posts is copied.
func WithPosts(posts []garage.Post) Option {
	return func(o *options) { o.posts = posts }
}

// New creates a hub over the given state. vehicles is copied.
func New(profile garage.Profile, settings garage.Settings, vehicles []garage.Vehicle, n *notify.Notifier, opts ...Option) *Hub {
	o := options{
		avatar: func() int { return rand.Intn(1000) },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if n == nil {
		n = notify.New(notify.DefaultDuration)
	}

	h := &Hub{
		Profile:  profile,
		Settings: settings,
		Vehicles: append([]garage.Vehicle(nil), vehicles...),
		Posts:    append([]garage.Post(nil), o.posts...),
		Notifier: n,
		themes:   o.themes,
		avatar:   o.avatar,
		now:      o.now,
	}
	// The active theme wins over the seeded flag.
	h.Settings.DarkMode = h.mode() == theme.Dark

	h.VehicleEditor = session.New[garage.Vehicle](session.NewVehicleDraft(), session.Config[garage.Vehicle]{
		OnSave:  h.saveVehicle,
		OnClose: h.closed(garage.KindVehicle),
		Now:     o.now,
		NewID:   o.newID,
	})
	h.ProfileEditor = session.New[garage.Profile](session.NewProfileDraft(), session.Config[garage.Profile]{
		OnSave:  h.saveProfile,
		OnClose: h.closed(garage.KindProfile),
		Now:     o.now,
		NewID:   o.newID,
	})
	h.SettingsEditor = session.New[garage.Settings](session.NewSettingsDraft(), session.Config[garage.Settings]{
		OnSave:  h.saveSettings,
		OnClose: h.closed(garage.KindSettings),
		Now:     o.now,
		NewID:   o.newID,
	})
	h.PostEditor = session.New[garage.Post](session.NewPostDraft(func() garage.Profile { return h.Profile }), session.Config[garage.Post]{
		OnSave:  h.savePost,
		OnClose: h.closed(garage.KindPost),
		Now:     o.now,
		NewID:   o.newID,
	})

	return h
}

// AddVehicle opens the vehicle editor in create mode.
func (h *Hub) AddVehicle() *session.Controller[garage.Vehicle] {
	h.VehicleEditor.Open(nil)
	return h.VehicleEditor
}

// EditVehicle opens the vehicle editor on the vehicle with id.
func (h *Hub) EditVehicle(id string) (*session.Controller[garage.Vehicle], error) {
	v, ok := collection.Find(h.Vehicles, id)
	if !ok {
		return nil, fmt.Errorf("no vehicle with id %q", id)
	}
	h.VehicleEditor.Open(&v)
	return h.VehicleEditor, nil
}

// EditProfile opens the profile editor on the current profile.
func (h *Hub) EditProfile() *session.Controller[garage.Profile] {
	p := h.Profile
	h.ProfileEditor.Open(&p)
	return h.ProfileEditor
}

// EditSettings opens the settings editor on the current settings.
func (h *Hub) EditSettings() *session.Controller[garage.Settings] {
	s := h.Settings
	h.SettingsEditor.Open(&s)
	return h.SettingsEditor
}

// Now returns the hub's clock reading.
func (h *Hub) Now() time.Time {
	return h.now()
}

// NewPost opens the post composer.
func (h *Hub) NewPost() *session.Controller[garage.Post] {
	h.PostEditor.Open(nil)
	return h.PostEditor
}

// EditPost opens the post editor on the post with id.
func (h *Hub) EditPost(id string) (*session.Controller[garage.Post], error) {
	p, ok := collection.Find(h.Posts, id)
	if !ok {
		return nil, fmt.Errorf("no post with id %q", id)
	}
	h.PostEditor.Open(&p)
	return h.PostEditor, nil
}

// ChangeCover swaps in the alternate cover image.
func (h *Hub) ChangeCover() {
	h.Profile.CoverImage = garage.AlternateCoverImage
	h.Notifier.Notify(CoverUpdatedTitle, CoverUpdatedBody)
}

// ChangeAvatar picks a new generated avatar.
func (h *Hub) ChangeAvatar() {
	h.Profile.Avatar = garage.AvatarURL(h.avatar())
	h.Notifier.Notify(AvatarUpdatedTitle, AvatarUpdatedBody)
}

// ToggleTheme flips between light and dark and keeps the dark mode flag in
// step. It raises no toast.
func (h *Hub) ToggleTheme() theme.Mode {
	mode := theme.Dark
	if h.mode() == theme.Dark {
		mode = theme.Light
	}
	h.setMode(mode)

	s := h.Settings
	s.DarkMode = mode == theme.Dark
	h.Settings = s
	return mode
}

func (h *Hub) saveVehicle(v garage.Vehicle) {
	created := h.VehicleEditor.IsCreate()
	h.Vehicles = collection.Merge(h.Vehicles, v)
	h.LastCommitted = v.ID

	if created {
		h.Notifier.Notify(VehicleAddedTitle, VehicleAddedBody)
	} else {
		h.Notifier.Notify(VehicleUpdatedTitle, VehicleUpdatedBody)
	}
}

func (h *Hub) saveProfile(p garage.Profile) {
	h.Profile = p
	h.LastCommitted = p.ID
	h.Notifier.Notify(ProfileUpdatedTitle, ProfileUpdatedBody)
}

func (h *Hub) saveSettings(s garage.Settings) {
	h.Settings = s
	h.LastCommitted = s.ID
	if s.DarkMode {
		h.setMode(theme.Dark)
	} else {
		h.setMode(theme.Light)
	}
	h.Notifier.Notify(SettingsSavedTitle, SettingsSavedBody)
}

// savePost puts new posts first. A post with no text is dropped.
func (h *Hub) savePost(p garage.Post) {
	if strings.TrimSpace(p.Content) == "" {
		logging.Debug("Empty post discarded", zap.String("id", p.ID))
		return
	}

	created := h.PostEditor.IsCreate()
	h.Posts = collection.MergeFront(h.Posts, p)
	h.LastCommitted = p.ID

	if created {
		h.Notifier.Notify(PostSharedTitle, PostSharedBody)
	} else {
		h.Notifier.Notify(PostUpdatedTitle, PostUpdatedBody)
	}
}

func (h *Hub) closed(kind garage.Kind) func() {
	return func() {
		logging.Debug("Editor closed", zap.String("kind", string(kind)))
	}
}

func (h *Hub) mode() theme.Mode {
	if h.themes != nil {
		return h.themes.Mode()
	}
	return theme.Current()
}

func (h *Hub) setMode(m theme.Mode) {
	if h.themes != nil {
		h.themes.SetMode(m)
		return
	}
	theme.Set(m)
}
