// Package memorial persists the record of completed lives
package memorial

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=memorialmock github.com/KirkDiggler/lifesim-api/internal/repositories/memorial Repository

// Record summarizes one finished life
type Record struct {
	LifeID       string
	Name         string
	BornYear     int
	DiedYear     int
	Age          int
	CauseOfDeath string
	Achievements []string

	// RecordedAt is set by the repository on create
	RecordedAt time.Time
}

// CreateInput contains parameters for recording a finished life
type CreateInput struct {
	GameID string
	Record *Record
}

// CreateOutput contains the stored record
type CreateOutput struct {
	Record *Record
}

// ListInput contains parameters for listing a game's memorials
type ListInput struct {
	GameID string
}

// ListOutput contains the memorials in the order lives ended
type ListOutput struct {
	Records []*Record
}

// Repository persists memorial records
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
