package garage

import (
	"strconv"
	"time"
)

// SampleProfile returns the built-in demo profile.
func SampleProfile() Profile {
	return Profile{
		ID:         "profile-1",
		Name:       "Rahul Sharma",
		Bio:        "Passionate Royal Enfield rider exploring the highways and byways of India. Weekend warrior and photography enthusiast.",
		Location:   "Mumbai, Maharashtra",
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=user123",
		CoverImage: "https://images.unsplash.com/photo-1558981806-ec527fa84c39?w=1200&q=80",
		JoinDate:   time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC).Format(JoinDateLayout),
		Followers:  245,
		Following:  132,
	}
}

// SampleSettings returns the built-in demo settings.
func SampleSettings() Settings {
	s := DefaultSettings()
	s.ID = "settings-1"
	return s
}

// SampleVehicles returns the built-in demo garage.
func SampleVehicles() []Vehicle {
	return []Vehicle{
		{
			ID:    "1",
			Name:  "My Classic 350",
			Type:  Motorcycle,
			Make:  "Royal Enfield",
			Model: "Classic 350",
			Year:  2022,
			Color: "Stealth Black",
			Images: []string{
				"https://images.unsplash.com/photo-1558981806-ec527fa84c39?w=800&q=80",
				"https://images.unsplash.com/photo-1558981359-219d6364c9c8?w=800&q=80",
			},
			Specs: Specs{}.
				With(SpecEngine, "349cc, Single Cylinder, 4 Stroke").
				With(SpecPower, "20.2 bhp @ 6100 rpm").
				With(SpecTorque, "27 Nm @ 4000 rpm").
				With(SpecTransmission, "5-Speed").
				With(SpecFuelCapacity, "13 L").
				With(SpecMileage, "35 kmpl").
				With(SpecKerbWeight, "195 kg"),
		},
	}
}

// AlternateCoverImage is swapped in by the "change cover" action.
const AlternateCoverImage = "https://images.unsplash.com/photo-1511988617509-a57c8a288659?w=1200&q=80"

// AvatarURL returns a generated avatar URL for seed n.
func AvatarURL(n int) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=user" + strconv.Itoa(n)
}
