package garage

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Entity is anything with a stable string identity.
type Entity interface {
	EntityID() string
}

// Kind names an entity type. It prefixes generated ids.
type Kind string

const (
	KindVehicle  Kind = "vehicle"
	KindProfile  Kind = "profile"
	KindSettings Kind = "settings"
)

// NewID returns a fresh timestamp-derived id such as
// "vehicle-0192f3c1-7b2a-7c4e-9f00-5d1e2a3b4c5d". UUIDv7 puts the
// millisecond timestamp in the leading bits.
func NewID(kind Kind) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the random source does
		id = uuid.New()
	}
	return fmt.Sprintf("%s-%s", kind, id)
}

// VehicleType is the vehicle category.
type VehicleType string

const (
	Motorcycle VehicleType = "motorcycle"
	Car        VehicleType = "car"
)

// VehicleTypes lists the accepted types in display order.
var VehicleTypes = []VehicleType{Motorcycle, Car}

// ParseVehicleType returns the type named by s.
func ParseVehicleType(s string) (VehicleType, bool) {
	for _, t := range VehicleTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label returns the display label ("Motorcycle", "Car").
func (t VehicleType) Label() string {
	switch t {
	case Motorcycle:
		return "Motorcycle"
	case Car:
		return "Car"
	default:
		return string(t)
	}
}

// PlaceholderImage is the image given to vehicles created without one.
const PlaceholderImage = "https://images.unsplash.com/photo-1558981806-ec527fa84c39?w=800&q=80"

// Vehicle is one entry in a rider's garage.
type Vehicle struct {
	ID     string      `yaml:"id" json:"id"`
	Name   string      `yaml:"name" json:"name"`
	Type   VehicleType `yaml:"type" json:"type"`
	Make   string      `yaml:"make" json:"make"`
	Model  string      `yaml:"model" json:"model"`
	Year   int         `yaml:"year" json:"year"`
	Color  string      `yaml:"color" json:"color"`
	Images []string    `yaml:"images,omitempty" json:"images"`
	Specs  Specs       `yaml:"specs,omitempty" json:"specs"`
}

// EntityID implements Entity.
func (v Vehicle) EntityID() string { return v.ID }

// Clone returns a copy sharing no slices with v.
func (v Vehicle) Clone() Vehicle {
	v.Images = slices.Clone(v.Images)
	v.Specs = v.Specs.Clone()
	return v
}

// Title returns "Make Model Year" as shown under the vehicle name.
func (v Vehicle) Title() string {
	return fmt.Sprintf("%s %s %d", v.Make, v.Model, v.Year)
}

// JoinDateLayout formats Profile.JoinDate.
const JoinDateLayout = "Joined January 2006"

// Profile is the rider's public profile card.
type Profile struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Bio        string `yaml:"bio" json:"bio"`
	Location   string `yaml:"location" json:"location"`
	Avatar     string `yaml:"avatar" json:"avatar"`
	CoverImage string `yaml:"cover_image" json:"coverImage"`
	JoinDate   string `yaml:"join_date" json:"joinDate"`
	Followers  int    `yaml:"followers" json:"followers"`
	Following  int    `yaml:"following" json:"following"`
}

// EntityID implements Entity.
func (p Profile) EntityID() string { return p.ID }

// Settings holds the account preference flags.
type Settings struct {
	ID                 string `yaml:"id" json:"id"`
	EmailNotifications bool   `yaml:"email_notifications" json:"emailNotifications"`
	PushNotifications  bool   `yaml:"push_notifications" json:"pushNotifications"`
	DarkMode           bool   `yaml:"dark_mode" json:"darkMode"`
	PrivateProfile     bool   `yaml:"private_profile" json:"privateProfile"`
}

// EntityID implements Entity.
func (s Settings) EntityID() string { return s.ID }

// DefaultSettings returns the settings a new account starts with.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  true,
	}
}
