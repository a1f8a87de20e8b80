package engine

import (
	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

// WeightedSelector draws one event from an eligible set,
// proportionally to weight. Events with non-positive weight are
// skipped rather than failing the draw.
type WeightedSelector struct {
	random *random.Source
}

// NewWeightedSelector creates a selector backed by the given source
func NewWeightedSelector(src *random.Source) (*WeightedSelector, error) {
	if src == nil {
		return nil, errors.InvalidArgument("random source is required")
	}
	return &WeightedSelector{random: src}, nil
}

// Select draws one event. Walking the slice in order keeps selection
// deterministic for a seeded source.
func (s *WeightedSelector) Select(eligible []*catalog.Event) (*catalog.Event, error) {
	total := 0
	for _, ev := range eligible {
		if ev.Weight > 0 {
			total += ev.Weight
		}
	}
	if total == 0 {
		return nil, NoEligibleEvent()
	}

	draw := s.random.Index(total)
	for _, ev := range eligible {
		if ev.Weight <= 0 {
			continue
		}
		if draw < ev.Weight {
			return ev, nil
		}
		draw -= ev.Weight
	}

	// unreachable with a well-behaved source
	return nil, errors.Internal("weighted draw fell off the end")
}
