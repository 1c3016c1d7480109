// Package session implements edit sessions: a transient draft of one entity
// that is seeded from the displayed value, edited field by field, and either
// committed as a complete replacement or discarded.
//
// # Lifecycle
//
//	Closed → Open(seeded) → SetField* → Commit → Closed
//	                                  → Cancel → Closed
//
// Open seeds the draft from the entity (or from per-field defaults when the
// entity is nil, i.e. create mode). SetField stores raw text; nothing is
// validated or coerced until Commit. Commit builds a total entity, calls
// OnSave exactly once and then OnClose exactly once. Cancel calls OnClose
// only. The draft is left as-is on close and is re-seeded by the next Open.
//
// # Usage
//
//	ctrl := session.New[garage.Vehicle](session.NewVehicleDraft(), session.Config[garage.Vehicle]{
//	    OnSave: func(v garage.Vehicle) {
//	        vehicles = collection.Merge(vehicles, v)
//	        notifier.Notify("Vehicle updated", "Your vehicle details have been updated successfully.")
//	    },
//	    OnClose: func() { dialogOpen = false },
//	})
//
//	ctrl.Open(&vehicles[0])
//	_ = ctrl.SetField("year", "2023")
//	committed, _ := ctrl.Commit()
//
// # Coercion
//
// Numeric, boolean and choice fields that do not parse at commit time fall
// back to the previous entity's value, or to the create-mode default when
// there is no previous entity. Commit never produces a partially filled
// entity.
//
// # Thread Safety
//
// A Controller is owned by one UI loop and is not safe for concurrent use.
package session
