// Package garage defines the entities shown on a rider's profile: the
// profile itself, account settings, the vehicles in the rider's garage and
// the rider's posts.
//
// Entities are plain values. They are replaced whole, never patched, and
// carry a string identity that is generated once and never reassigned:
//
//	v := garage.Vehicle{Name: "My Classic 350", Type: garage.Motorcycle}
//	v.ID = garage.NewID(garage.KindVehicle) // "vehicle-0192f3c1-..."
//
// # Specs
//
// A vehicle's technical specifications are an ordered mapping over a fixed
// set of recognised keys (see SpecKeys). The set is closed so that seed files
// and edit forms can be checked: an unknown key is an error, a missing key
// reads as the empty string.
//
// # Sample Data
//
// SampleProfile, SampleSettings and SampleVehicles return fresh copies of the
// built-in sample data used when no seed file is configured.
package garage
