// Package history keeps the append-only record of fired events and
// the derived indices repeatability gates are answered from.
package history

// Entry records one fired event
type Entry struct {
	Year       int
	EventID    string
	LifeID     string
	ReceiverID string
}

// Log is the authoritative event history for a game. It is not safe
// for concurrent use; the orchestrator serializes access.
type Log struct {
	entries []Entry

	byYear      map[int][]Entry
	lastFired   map[string]int
	counts      map[string]int
	firedByLife map[string]map[string]bool
	countByLife map[string]int
}

// NewLog creates an empty history
func NewLog() *Log {
	l := &Log{}
	l.reset()
	return l
}

func (l *Log) reset() {
	l.entries = nil
	l.byYear = make(map[int][]Entry)
	l.lastFired = make(map[string]int)
	l.counts = make(map[string]int)
	l.firedByLife = make(map[string]map[string]bool)
	l.countByLife = make(map[string]int)
}

// Record appends an entry and updates the derived indices
func (l *Log) Record(entry Entry) {
	l.entries = append(l.entries, entry)
	l.byYear[entry.Year] = append(l.byYear[entry.Year], entry)
	l.lastFired[entry.EventID] = entry.Year
	l.counts[entry.EventID]++
	l.countByLife[entry.LifeID]++
	if l.firedByLife[entry.LifeID] == nil {
		l.firedByLife[entry.LifeID] = make(map[string]bool)
	}
	l.firedByLife[entry.LifeID][entry.EventID] = true
}

// HasFiredInLife reports whether the event fired during the given life
func (l *Log) HasFiredInLife(eventID, lifeID string) bool {
	return l.firedByLife[lifeID][eventID]
}

// HasFiredInGame reports whether the event ever fired this game
func (l *Log) HasFiredInGame(eventID string) bool {
	return l.counts[eventID] > 0
}

// LastFiredYear returns the most recent year the event fired
func (l *Log) LastFiredYear(eventID string) (int, bool) {
	year, ok := l.lastFired[eventID]
	return year, ok
}

// CountFired returns how many times the event fired this game
func (l *Log) CountFired(eventID string) int {
	return l.counts[eventID]
}

// CountInLife returns how many events fired during the given life
func (l *Log) CountInLife(lifeID string) int {
	return l.countByLife[lifeID]
}

// EventsForYear returns the entries recorded for a year
func (l *Log) EventsForYear(year int) []Entry {
	out := make([]Entry, len(l.byYear[year]))
	copy(out, l.byYear[year])
	return out
}

// Len returns the total number of recorded entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Reset clears the log for a new game. Once-per-game tracking starts
// over after this.
func (l *Log) Reset() {
	l.reset()
}
