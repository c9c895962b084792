package board

import "github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"

// Reservations is the per-phase set of coordinates claimed by agents that
// have already chosen a destination this phase. It is created at phase
// start and discarded at phase end; only the single scheduler task touches
// it, so no locking is needed.
type Reservations struct {
	claimed map[hex.Coord]struct{}
}

// NewReservations creates an empty reservation set.
func NewReservations() *Reservations {
	return &Reservations{claimed: make(map[hex.Coord]struct{})}
}

// Reserve claims a coordinate. Returns false if it was already claimed.
func (r *Reservations) Reserve(c hex.Coord) bool {
	if _, taken := r.claimed[c]; taken {
		return false
	}
	r.claimed[c] = struct{}{}
	return true
}

// Release drops the claim on a coordinate, if any.
func (r *Reservations) Release(c hex.Coord) {
	delete(r.claimed, c)
}

// Reserved reports whether a coordinate is currently claimed.
func (r *Reservations) Reserved(c hex.Coord) bool {
	_, taken := r.claimed[c]
	return taken
}

// Len returns the number of claimed coordinates.
func (r *Reservations) Len() int {
	return len(r.claimed)
}
