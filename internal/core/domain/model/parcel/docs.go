// Package parcel contains the Parcel aggregate: a campus delivery record
// identified by a short opaque tracking ID that moves through a fixed,
// strictly linear status lifecycle.
//
// Lifecycle:
//
//	waiting_bus ──> en_route_campus ──> at_campus_hub ──> delivered
//
// Transitions are forward-only with no skipping or branching, and the
// terminal stage absorbs further advance attempts. The aggregate keeps its
// invariants through the NewParcel constructor and validated mutators.
package parcel
