package moment

import (
	"sync/atomic"
	"time"
)

var defaultLocation atomic.Pointer[time.Location]

// SetDefaultLocation sets the location used by constructors that do not
// receive one. nil restores time.Local.
func SetDefaultLocation(loc *time.Location) {
	defaultLocation.Store(loc)
}

// DefaultLocation returns the location used by Now, FromFields and Parse.
func DefaultLocation() *time.Location {
	if loc := defaultLocation.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// Zone returns the UTC offset in minutes, positive west of Greenwich
// (UTC-05:00 is 300).
func (m Moment) Zone() int {
	if !m.IsValid() {
		return 0
	}
	_, offset := m.t.Zone()
	return -offset / 60
}

// IsDST reports whether m's offset is ahead of the standard offset of its
// year, the smaller of the January and July offsets.
func (m Moment) IsDST() bool {
	if !m.IsValid() {
		return false
	}
	loc := m.t.Location()
	_, january := time.Date(m.Year(), time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, july := time.Date(m.Year(), time.July, 1, 0, 0, 0, 0, loc).Zone()
	_, offset := m.t.Zone()
	return offset > min(january, july)
}
