package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/motohub/internal/collection"
	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/logging"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// recorder captures callback order.
type recorder[E garage.Entity] struct {
	events []string
	saved  []E
}

func (r *recorder[E]) config() Config[E] {
	return Config[E]{
		OnSave: func(e E) {
			r.events = append(r.events, "save")
			r.saved = append(r.saved, e)
		},
		OnClose: func() { r.events = append(r.events, "close") },
		Now:     func() time.Time { return fixedNow },
		NewID:   func(k garage.Kind) string { return string(k) + "-generated" },
	}
}

func newVehicleController() (*Controller[garage.Vehicle], *recorder[garage.Vehicle]) {
	rec := &recorder[garage.Vehicle]{}
	return New[garage.Vehicle](NewVehicleDraft(), rec.config()), rec
}

func TestCancelLeavesSourceUnchanged(t *testing.T) {
	ctrl, rec := newVehicleController()
	src := garage.SampleVehicles()[0]
	orig := src.Clone()

	ctrl.Open(&src)
	require.NoError(t, ctrl.SetField(VehicleName, "Something else"))
	require.NoError(t, ctrl.SetField(garage.SpecEngine.Slug(), "500cc"))
	ctrl.Cancel()

	assert.Equal(t, orig, src)
	assert.Empty(t, rec.saved)
	assert.Equal(t, []string{"close"}, rec.events)
	assert.False(t, ctrl.IsOpen())
}

func TestCommitWithoutEditsEqualsOriginal(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"vehicle", func(t *testing.T) {
			ctrl, _ := newVehicleController()
			src := garage.SampleVehicles()[0]
			ctrl.Open(&src)
			got, err := ctrl.Commit()
			require.NoError(t, err)
			assert.Equal(t, src, got)
		}},
		{"profile", func(t *testing.T) {
			rec := &recorder[garage.Profile]{}
			ctrl := New[garage.Profile](NewProfileDraft(), rec.config())
			src := garage.SampleProfile()
			ctrl.Open(&src)
			got, err := ctrl.Commit()
			require.NoError(t, err)
			assert.Equal(t, src, got)
		}},
		{"settings", func(t *testing.T) {
			rec := &recorder[garage.Settings]{}
			ctrl := New[garage.Settings](NewSettingsDraft(), rec.config())
			src := garage.Settings{ID: "settings-1", DarkMode: true, PrivateProfile: true}
			ctrl.Open(&src)
			got, err := ctrl.Commit()
			require.NoError(t, err)
			assert.Equal(t, src, got)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestCreateModeDefaults(t *testing.T) {
	ctrl, _ := newVehicleController()

	ctrl.Open(nil)
	assert.True(t, ctrl.IsCreate())

	got, err := ctrl.Commit()
	require.NoError(t, err)

	assert.Equal(t, "vehicle-generated", got.ID)
	assert.Equal(t, garage.Motorcycle, got.Type)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, []string{garage.PlaceholderImage}, got.Images)
	assert.True(t, got.Specs.IsZero())
	assert.Empty(t, got.Name)
}

func TestCreateModeUsesRealIDGenerator(t *testing.T) {
	ctrl := New[garage.Vehicle](NewVehicleDraft(), Config[garage.Vehicle]{})

	ctrl.Open(nil)
	a, err := ctrl.Commit()
	require.NoError(t, err)
	ctrl.Open(nil)
	b, err := ctrl.Commit()
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, time.Now().Year(), a.Year)
}

func TestNonNumericYearFallsBack(t *testing.T) {
	t.Run("edit keeps previous", func(t *testing.T) {
		ctrl, _ := newVehicleController()
		src := garage.Vehicle{ID: "1", Year: 2022}

		ctrl.Open(&src)
		require.NoError(t, ctrl.SetField(VehicleYear, "abc"))
		got, err := ctrl.Commit()

		require.NoError(t, err)
		assert.Equal(t, 2022, got.Year)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("create uses current year", func(t *testing.T) {
		ctrl, _ := newVehicleController()

		ctrl.Open(nil)
		require.NoError(t, ctrl.SetField(VehicleYear, ""))
		got, err := ctrl.Commit()

		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year)
	})
}

func TestSetFieldAcceptsAnyText(t *testing.T) {
	ctrl, _ := newVehicleController()
	src := garage.SampleVehicles()[0]
	ctrl.Open(&src)

	require.NoError(t, ctrl.SetField(VehicleYear, "1999"))
	require.NoError(t, ctrl.SetField(VehicleType, "car"))
	require.NoError(t, ctrl.SetField(VehicleColor, ""))
	require.NoError(t, ctrl.SetField(garage.SpecMileage.Slug(), "40 kmpl"))

	v, ok := ctrl.Field(VehicleYear)
	assert.True(t, ok)
	assert.Equal(t, "1999", v)

	got, err := ctrl.Commit()
	require.NoError(t, err)
	assert.Equal(t, 1999, got.Year)
	assert.Equal(t, garage.Car, got.Type)
	assert.Empty(t, got.Color)
	assert.Equal(t, "40 kmpl", got.Specs.Get(garage.SpecMileage))
	assert.Equal(t, src.Images, got.Images)
}

func TestInvalidTypeFallsBack(t *testing.T) {
	ctrl, _ := newVehicleController()
	src := garage.Vehicle{ID: "1", Type: garage.Car}

	ctrl.Open(&src)
	require.NoError(t, ctrl.SetField(VehicleType, "boat"))
	got, err := ctrl.Commit()

	require.NoError(t, err)
	assert.Equal(t, garage.Car, got.Type)
}

func TestSetFieldErrors(t *testing.T) {
	ctrl, _ := newVehicleController()

	err := ctrl.SetField(VehicleName, "x")
	require.Error(t, err)
	assert.True(t, IsNotOpen(err))

	ctrl.Open(nil)
	err = ctrl.SetField("wheels", "3")
	require.Error(t, err)
	assert.True(t, IsUnknownField(err))
	assert.Contains(t, err.Error(), `"wheels"`)

	_, err = New[garage.Settings](NewSettingsDraft(), Config[garage.Settings]{}).Commit()
	assert.True(t, IsNotOpen(err))
}

func TestCallbackOrdering(t *testing.T) {
	ctrl, rec := newVehicleController()
	src := garage.SampleVehicles()[0]

	ctrl.Open(&src)
	_, err := ctrl.Commit()
	require.NoError(t, err)

	assert.Equal(t, []string{"save", "close"}, rec.events)

	// a second commit or cancel on a closed session fires nothing
	_, err = ctrl.Commit()
	assert.Error(t, err)
	ctrl.Cancel()
	assert.Equal(t, []string{"save", "close"}, rec.events)
}

func TestIdentityIsPreserved(t *testing.T) {
	ctrl, _ := newVehicleController()
	src := garage.SampleVehicles()[0]

	ctrl.Open(&src)
	require.NoError(t, ctrl.SetField(VehicleName, "Renamed"))
	got, err := ctrl.Commit()

	require.NoError(t, err)
	assert.Equal(t, src.ID, got.ID)
}

func TestReopenReseeds(t *testing.T) {
	ctrl, _ := newVehicleController()
	a := garage.Vehicle{ID: "a", Name: "first", Year: 2001}
	b := garage.Vehicle{ID: "b", Name: "second", Year: 2002}

	ctrl.Open(&a)
	require.NoError(t, ctrl.SetField(VehicleName, "dirty"))
	ctrl.Open(&b)

	name, _ := ctrl.Field(VehicleName)
	assert.Equal(t, "second", name)

	ctrl.Open(nil)
	name, _ = ctrl.Field(VehicleName)
	year, _ := ctrl.Field(VehicleYear)
	assert.Empty(t, name)
	assert.Equal(t, "2026", year)
}

func TestCommitDoesNotAliasSource(t *testing.T) {
	ctrl, _ := newVehicleController()
	src := garage.SampleVehicles()[0]

	ctrl.Open(&src)
	got, err := ctrl.Commit()
	require.NoError(t, err)

	got.Images[0] = "changed"
	assert.NotEqual(t, "changed", src.Images[0])
}

func TestAddThenEditKeepsLength(t *testing.T) {
	var list []garage.Vehicle
	ctrl := New[garage.Vehicle](NewVehicleDraft(), Config[garage.Vehicle]{
		OnSave: func(v garage.Vehicle) { list = collection.Merge(list, v) },
	})

	ctrl.Open(nil)
	require.NoError(t, ctrl.SetField(VehicleName, "Scrambler"))
	added, err := ctrl.Commit()
	require.NoError(t, err)
	require.Len(t, list, 1)

	ctrl.Open(&list[0])
	require.NoError(t, ctrl.SetField(VehicleColor, "Green"))
	_, err = ctrl.Commit()
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, added.ID, list[0].ID)
	assert.Equal(t, "Green", list[0].Color)
	assert.Equal(t, "Scrambler", list[0].Name)
}

func TestProfileCreateMode(t *testing.T) {
	rec := &recorder[garage.Profile]{}
	ctrl := New[garage.Profile](NewProfileDraft(), rec.config())

	ctrl.Open(nil)
	require.NoError(t, ctrl.SetField(ProfileName, "Asha"))
	got, err := ctrl.Commit()

	require.NoError(t, err)
	assert.Equal(t, "profile-generated", got.ID)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "Joined March 2026", got.JoinDate)
	assert.Zero(t, got.Followers)
}

func TestProfileEditCarriesUneditedFields(t *testing.T) {
	rec := &recorder[garage.Profile]{}
	ctrl := New[garage.Profile](NewProfileDraft(), rec.config())
	src := garage.SampleProfile()

	ctrl.Open(&src)
	require.NoError(t, ctrl.SetField(ProfileBio, "New bio"))
	got, err := ctrl.Commit()

	require.NoError(t, err)
	assert.Equal(t, "New bio", got.Bio)
	assert.Equal(t, src.Avatar, got.Avatar)
	assert.Equal(t, src.Followers, got.Followers)
	assert.Equal(t, src.JoinDate, got.JoinDate)
}

func TestSessionEventsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(nil) })

	ctrl, _ := newVehicleController()
	src := garage.SampleVehicles()[0]
	ctrl.Open(&src)
	require.NoError(t, ctrl.SetField(VehicleColor, "Gunmetal Grey"))
	assert.Error(t, ctrl.SetField("wheels", "3"))
	ctrl.Cancel()

	var events []string
	for _, e := range logs.FilterMessage("Edit session event").All() {
		events = append(events, e.ContextMap()["event"].(string))
	}
	assert.Equal(t, []string{"opened", "field_set", "cancelled"}, events)

	set := logs.FilterField(zap.String("event", "field_set")).All()
	require.Len(t, set, 1)
	assert.Equal(t, VehicleColor, set[0].ContextMap()["field"])
}
