package session

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/muurk/motohub/internal/garage"
)

// FieldKind tells an editor how to present a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldLongText
	FieldNumber
	FieldToggle
	FieldChoice
)

// Field is one editable draft field. Value is always the raw text.
type Field struct {
	Name        string
	Label       string
	Value       string
	Placeholder string
	Kind        FieldKind
	Choices     []string // FieldChoice only
	Section     string   // grouping heading, e.g. "Technical Specifications"
}

// Env carries the commit-time inputs a draft cannot produce itself.
type Env struct {
	Now   time.Time
	NewID func() string
}

// Draft is the editable text form of one entity kind.
type Draft[E garage.Entity] interface {
	// Seed resets every field from src, or to defaults when src is nil
	Seed(src *E, now time.Time)
	// Fields returns the fields in display order
	Fields() []Field
	// Set stores raw text; false when the field does not exist
	Set(name, value string) bool
	// Build returns a total entity from the fields, falling back to prev
	Build(prev *E, env Env) E
	Kind() garage.Kind
}

// form is the ordered field store shared by the drafts.
type form struct {
	fields []Field
	index  map[string]int
}

func newForm(fields []Field) form {
	f := form{fields: fields, index: make(map[string]int, len(fields))}
	for i, fd := range fields {
		f.index[fd.Name] = i
	}
	return f
}

func (f *form) Fields() []Field {
	out := slices.Clone(f.fields)
	for i := range out {
		out[i].Choices = slices.Clone(out[i].Choices)
	}
	return out
}

func (f *form) Set(name, value string) bool {
	i, ok := f.index[name]
	if !ok {
		return false
	}
	f.fields[i].Value = value
	return true
}

func (f *form) get(name string) string {
	return f.fields[f.index[name]].Value
}

func (f *form) put(name, value string) {
	f.fields[f.index[name]].Value = value
}

func (f *form) clear() {
	for i := range f.fields {
		f.fields[i].Value = ""
	}
}

// intOr parses s as a base-10 integer, returning fallback when it does not.
func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// ParseBool accepts true/false, on/off, yes/no and 1/0, case-insensitively.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return true, true
	case "false", "off", "no", "0":
		return false, true
	}
	return false, false
}

func boolOr(s string, fallback bool) bool {
	if b, ok := ParseBool(s); ok {
		return b
	}
	return fallback
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// Vehicle draft field names.
const (
	VehicleName  = "name"
	VehicleType  = "type"
	VehicleMake  = "make"
	VehicleModel = "model"
	VehicleYear  = "year"
	VehicleColor = "color"
)

const specsSection = "Technical Specifications"

// VehicleDraft edits a garage.Vehicle. Spec fields are named by their slug.
type VehicleDraft struct {
	form
}

var _ Draft[garage.Vehicle] = (*VehicleDraft)(nil)

// NewVehicleDraft returns an empty vehicle draft.
func NewVehicleDraft() *VehicleDraft {
	types := make([]string, 0, len(garage.VehicleTypes))
	for _, t := range garage.VehicleTypes {
		types = append(types, string(t))
	}

	fields := []Field{
		{Name: VehicleName, Label: "Vehicle Name", Placeholder: "My Classic 350"},
		{Name: VehicleType, Label: "Type", Kind: FieldChoice, Choices: types},
		{Name: VehicleMake, Label: "Make", Placeholder: "Royal Enfield"},
		{Name: VehicleModel, Label: "Model", Placeholder: "Classic 350"},
		{Name: VehicleYear, Label: "Year", Kind: FieldNumber},
		{Name: VehicleColor, Label: "Color", Placeholder: "Stealth Black"},
	}
	for _, k := range garage.SpecKeys() {
		fields = append(fields, Field{Name: k.Slug(), Label: k.String(), Section: specsSection})
	}

	return &VehicleDraft{form: newForm(fields)}
}

// Kind implements Draft.
func (d *VehicleDraft) Kind() garage.Kind { return garage.KindVehicle }

// Seed implements Draft. Create mode starts as a motorcycle of the current
// year with no specs.
func (d *VehicleDraft) Seed(src *garage.Vehicle, now time.Time) {
	d.clear()
	if src == nil {
		d.put(VehicleType, string(garage.Motorcycle))
		d.put(VehicleYear, strconv.Itoa(now.Year()))
		return
	}

	d.put(VehicleName, src.Name)
	d.put(VehicleType, string(src.Type))
	d.put(VehicleMake, src.Make)
	d.put(VehicleModel, src.Model)
	d.put(VehicleYear, strconv.Itoa(src.Year))
	d.put(VehicleColor, src.Color)
	for _, k := range garage.SpecKeys() {
		d.put(k.Slug(), src.Specs.Get(k))
	}
}

// Build implements Draft.
func (d *VehicleDraft) Build(prev *garage.Vehicle, env Env) garage.Vehicle {
	var v garage.Vehicle
	year := env.Now.Year()
	vtype := garage.Motorcycle

	if prev != nil {
		v = prev.Clone()
		year = prev.Year
		if _, ok := garage.ParseVehicleType(string(prev.Type)); ok {
			vtype = prev.Type
		}
	}
	if v.ID == "" {
		v.ID = env.NewID()
	}
	if len(v.Images) == 0 && prev == nil {
		v.Images = []string{garage.PlaceholderImage}
	}

	v.Name = d.get(VehicleName)
	v.Make = d.get(VehicleMake)
	v.Model = d.get(VehicleModel)
	v.Color = d.get(VehicleColor)
	v.Year = intOr(d.get(VehicleYear), year)
	if t, ok := garage.ParseVehicleType(strings.TrimSpace(d.get(VehicleType))); ok {
		vtype = t
	}
	v.Type = vtype

	var specs garage.Specs
	for _, k := range garage.SpecKeys() {
		specs = specs.With(k, d.get(k.Slug()))
	}
	v.Specs = specs

	return v
}

// Profile draft field names.
const (
	ProfileName     = "name"
	ProfileLocation = "location"
	ProfileBio      = "bio"
)

// ProfileDraft edits the text fields of a garage.Profile. Images, join date
// and counters are carried over from the previous profile.
type ProfileDraft struct {
	form
}

var _ Draft[garage.Profile] = (*ProfileDraft)(nil)

// NewProfileDraft returns an empty profile draft.
func NewProfileDraft() *ProfileDraft {
	return &ProfileDraft{form: newForm([]Field{
		{Name: ProfileName, Label: "Name", Placeholder: "Your name"},
		{Name: ProfileLocation, Label: "Location", Placeholder: "City, Country"},
		{Name: ProfileBio, Label: "Bio", Kind: FieldLongText, Placeholder: "Tell other riders about yourself"},
	})}
}

// Kind implements Draft.
func (d *ProfileDraft) Kind() garage.Kind { return garage.KindProfile }

// Seed implements Draft.
func (d *ProfileDraft) Seed(src *garage.Profile, _ time.Time) {
	d.clear()
	if src == nil {
		return
	}
	d.put(ProfileName, src.Name)
	d.put(ProfileLocation, src.Location)
	d.put(ProfileBio, src.Bio)
}

// Build implements Draft. A new profile gets a join date from the clock.
func (d *ProfileDraft) Build(prev *garage.Profile, env Env) garage.Profile {
	var p garage.Profile
	if prev != nil {
		p = *prev
	} else {
		p.JoinDate = env.Now.Format(garage.JoinDateLayout)
	}
	if p.ID == "" {
		p.ID = env.NewID()
	}

	p.Name = d.get(ProfileName)
	p.Location = d.get(ProfileLocation)
	p.Bio = d.get(ProfileBio)

	return p
}

// Settings draft field names.
const (
	SettingEmailNotifications = "email_notifications"
	SettingPushNotifications  = "push_notifications"
	SettingDarkMode           = "dark_mode"
	SettingPrivateProfile     = "private_profile"
)

// SettingsDraft edits the garage.Settings flags. Values are "true" or
// "false"; ParseBool spellings are accepted.
type SettingsDraft struct {
	form
}

var _ Draft[garage.Settings] = (*SettingsDraft)(nil)

// NewSettingsDraft returns a settings draft.
func NewSettingsDraft() *SettingsDraft {
	return &SettingsDraft{form: newForm([]Field{
		{Name: SettingEmailNotifications, Label: "Email Notifications", Kind: FieldToggle, Section: "Notifications"},
		{Name: SettingPushNotifications, Label: "Push Notifications", Kind: FieldToggle, Section: "Notifications"},
		{Name: SettingDarkMode, Label: "Dark Mode", Kind: FieldToggle, Section: "Appearance"},
		{Name: SettingPrivateProfile, Label: "Private Profile", Kind: FieldToggle, Section: "Privacy"},
	})}
}

// Kind implements Draft.
func (d *SettingsDraft) Kind() garage.Kind { return garage.KindSettings }

// Seed implements Draft.
func (d *SettingsDraft) Seed(src *garage.Settings, _ time.Time) {
	s := garage.DefaultSettings()
	if src != nil {
		s = *src
	}
	d.put(SettingEmailNotifications, formatBool(s.EmailNotifications))
	d.put(SettingPushNotifications, formatBool(s.PushNotifications))
	d.put(SettingDarkMode, formatBool(s.DarkMode))
	d.put(SettingPrivateProfile, formatBool(s.PrivateProfile))
}

// Build implements Draft.
func (d *SettingsDraft) Build(prev *garage.Settings, env Env) garage.Settings {
	s := garage.DefaultSettings()
	if prev != nil {
		s = *prev
	}
	if s.ID == "" {
		s.ID = env.NewID()
	}

	s.EmailNotifications = boolOr(d.get(SettingEmailNotifications), s.EmailNotifications)
	s.PushNotifications = boolOr(d.get(SettingPushNotifications), s.PushNotifications)
	s.DarkMode = boolOr(d.get(SettingDarkMode), s.DarkMode)
	s.PrivateProfile = boolOr(d.get(SettingPrivateProfile), s.PrivateProfile)

	return s
}

// Toggle flips a boolean field in place. Unparseable text becomes "true".
func Toggle(value string) string {
	b, _ := ParseBool(value)
	return formatBool(!b)
}
