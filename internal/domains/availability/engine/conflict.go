package engine

import (
	"salon/shared/clock"
)

// Occupancy is one appointment as seen by the conflict detector: the service
// time plus the buffers snapshotted when it was booked.
type Occupancy struct {
	AppointmentID  string
	LocationID     string
	Service        clock.Interval
	SetupMinutes   int
	CleanupMinutes int
	TravelMinutes  int
}

// Window is the occupied time, setup before and cleanup after the service.
func (o Occupancy) Window() clock.Interval {
	return o.Service.Widen(o.SetupMinutes, o.CleanupMinutes)
}

// Conflicts reports whether o and other cannot both be kept by one team member.
// Between different locations the larger travel time of the two must separate them.
func (o Occupancy) Conflicts(other Occupancy) bool {
	a, b := o.Window(), other.Window()

	if o.LocationID != other.LocationID {
		gap := max(o.TravelMinutes, other.TravelMinutes)
		a = a.Widen(gap, gap)
	}

	return a.Overlaps(b)
}

// FirstConflict returns the first existing occupancy that collides with candidate.
// An entry with the candidate's own appointment id is skipped.
func FirstConflict(candidate Occupancy, existing []Occupancy) (Occupancy, bool) {
	for _, occ := range existing {
		if candidate.AppointmentID != "" && occ.AppointmentID == candidate.AppointmentID {
			continue
		}

		if candidate.Conflicts(occ) {
			return occ, true
		}
	}

	return Occupancy{}, false
}

func HasConflict(candidate Occupancy, existing []Occupancy) bool {
	_, found := FirstConflict(candidate, existing)

	return found
}
