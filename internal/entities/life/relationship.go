package life

import "github.com/KirkDiggler/lifesim-api/internal/errors"

// RelationshipStatus labels the player's connection to a person.
// Friendship statuses form a ladder that Upgrade/Downgrade walk;
// the remaining statuses are absolute and never shift on the ladder.
type RelationshipStatus string

// Relationship statuses
const (
	StatusStranger     RelationshipStatus = "stranger"
	StatusAcquaintance RelationshipStatus = "acquaintance"
	StatusFriend       RelationshipStatus = "friend"
	StatusGoodFriend   RelationshipStatus = "good_friend"
	StatusBestFriend   RelationshipStatus = "best_friend"
	StatusMom          RelationshipStatus = "mom"
	StatusDad          RelationshipStatus = "dad"
	StatusFamily       RelationshipStatus = "family"
	StatusDating       RelationshipStatus = "dating"
	StatusMarried      RelationshipStatus = "married"
	StatusEnemy        RelationshipStatus = "enemy"
)

// friendshipLadder orders the statuses Upgrade and Downgrade walk
var friendshipLadder = []RelationshipStatus{
	StatusStranger,
	StatusAcquaintance,
	StatusFriend,
	StatusGoodFriend,
	StatusBestFriend,
}

// IsFriendly reports whether the status counts as a friendship for
// eligibility gates (friend or better on the ladder).
func (s RelationshipStatus) IsFriendly() bool {
	return s == StatusFriend || s == StatusGoodFriend || s == StatusBestFriend
}

// IsFamily reports whether the status is a family tie
func (s RelationshipStatus) IsFamily() bool {
	return s == StatusMom || s == StatusDad || s == StatusFamily
}

// IsPartner reports whether the status is a romantic tie
func (s RelationshipStatus) IsPartner() bool {
	return s == StatusDating || s == StatusMarried
}

func (s RelationshipStatus) ladderIndex() (int, bool) {
	for i, rung := range friendshipLadder {
		if rung == s {
			return i, true
		}
	}
	return 0, false
}

// Upgraded returns the next rung on the friendship ladder. It returns
// false for absolute statuses and for the top rung.
func (s RelationshipStatus) Upgraded() (RelationshipStatus, bool) {
	i, ok := s.ladderIndex()
	if !ok || i == len(friendshipLadder)-1 {
		return s, false
	}
	return friendshipLadder[i+1], true
}

// Downgraded returns the previous rung on the friendship ladder. It
// returns false for absolute statuses and for the bottom rung.
func (s RelationshipStatus) Downgraded() (RelationshipStatus, bool) {
	i, ok := s.ladderIndex()
	if !ok || i == 0 {
		return s, false
	}
	return friendshipLadder[i-1], true
}

// Relationship ties a person to the player with a status and a
// numeric closeness level.
type Relationship struct {
	Person *Person
	Status RelationshipStatus
	Level  int
}

// RelationshipStore owns the player's relationship list. It keeps at
// most one relationship per person ID and preserves insertion order.
type RelationshipStore struct {
	entries []*Relationship
	byID    map[string]*Relationship
}

// NewRelationshipStore creates an empty store
func NewRelationshipStore() *RelationshipStore {
	return &RelationshipStore{
		byID: make(map[string]*Relationship),
	}
}

// Add registers a new relationship. It returns an AlreadyExists error
// when the person is already tracked.
func (s *RelationshipStore) Add(p *Person, status RelationshipStatus, level int) (*Relationship, error) {
	if p == nil {
		return nil, errors.InvalidArgument("person is required")
	}
	if _, ok := s.byID[p.ID]; ok {
		return nil, errors.AlreadyExistsf("relationship with person %s already exists", p.ID)
	}
	rel := &Relationship{Person: p, Status: status, Level: level}
	s.entries = append(s.entries, rel)
	s.byID[p.ID] = rel
	return rel, nil
}

// Set upserts a relationship: an existing entry for the person is
// updated in place, otherwise a new one is appended.
func (s *RelationshipStore) Set(p *Person, status RelationshipStatus, level int) *Relationship {
	if p == nil {
		return nil
	}
	if rel, ok := s.byID[p.ID]; ok {
		rel.Status = status
		rel.Level = level
		return rel
	}
	rel := &Relationship{Person: p, Status: status, Level: level}
	s.entries = append(s.entries, rel)
	s.byID[p.ID] = rel
	return rel
}

// Get looks up the relationship for a person ID
func (s *RelationshipStore) Get(personID string) (*Relationship, bool) {
	rel, ok := s.byID[personID]
	return rel, ok
}

// All returns the relationships in insertion order. The slice is a
// copy; the relationships are shared.
func (s *RelationshipStore) All() []*Relationship {
	out := make([]*Relationship, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByStatus returns the relationships matching any of the given
// statuses, in insertion order.
func (s *RelationshipStore) ByStatus(statuses ...RelationshipStatus) []*Relationship {
	var out []*Relationship
	for _, rel := range s.entries {
		for _, status := range statuses {
			if rel.Status == status {
				out = append(out, rel)
				break
			}
		}
	}
	return out
}

// Friends returns relationships at friend level or above
func (s *RelationshipStore) Friends() []*Relationship {
	return s.ByStatus(StatusFriend, StatusGoodFriend, StatusBestFriend)
}

// Family returns the family relationships
func (s *RelationshipStore) Family() []*Relationship {
	return s.ByStatus(StatusMom, StatusDad, StatusFamily)
}

// Partners returns the romantic relationships
func (s *RelationshipStore) Partners() []*Relationship {
	return s.ByStatus(StatusDating, StatusMarried)
}

// SetStatus replaces the status of an existing relationship
func (s *RelationshipStore) SetStatus(personID string, status RelationshipStatus) bool {
	rel, ok := s.byID[personID]
	if !ok {
		return false
	}
	rel.Status = status
	return true
}

// Upgrade moves a relationship one rung up the friendship ladder.
// Absolute statuses and the top rung are left unchanged.
func (s *RelationshipStore) Upgrade(personID string) bool {
	rel, ok := s.byID[personID]
	if !ok {
		return false
	}
	next, ok := rel.Status.Upgraded()
	if !ok {
		return false
	}
	rel.Status = next
	return true
}

// Downgrade moves a relationship one rung down the friendship ladder
func (s *RelationshipStore) Downgrade(personID string) bool {
	rel, ok := s.byID[personID]
	if !ok {
		return false
	}
	prev, ok := rel.Status.Downgraded()
	if !ok {
		return false
	}
	rel.Status = prev
	return true
}

// AdjustLevel adds delta to a relationship's closeness level
func (s *RelationshipStore) AdjustLevel(personID string, delta int) bool {
	rel, ok := s.byID[personID]
	if !ok {
		return false
	}
	rel.Level += delta
	return true
}

// AdjustLevelByStatus adds delta to every relationship matching one of
// the given statuses and returns how many were adjusted.
func (s *RelationshipStore) AdjustLevelByStatus(delta int, statuses ...RelationshipStatus) int {
	adjusted := 0
	for _, rel := range s.ByStatus(statuses...) {
		rel.Level += delta
		adjusted++
	}
	return adjusted
}

// Len returns the number of tracked relationships
func (s *RelationshipStore) Len() int {
	return len(s.entries)
}

// Clear drops every relationship
func (s *RelationshipStore) Clear() {
	s.entries = nil
	s.byID = make(map[string]*Relationship)
}
