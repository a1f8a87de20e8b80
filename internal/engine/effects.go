package engine

import (
	"github.com/KirkDiggler/lifesim-api/internal/catalog"
)

// Outcome summarizes what applying an event did to the player
type Outcome struct {
	Died         bool
	CauseOfDeath string
}

// EffectApplier applies an event's stat deltas and then runs its
// hook. Order matters: numeric deltas first, side effects second, so
// hooks observe the post-delta stats.
type EffectApplier struct{}

// NewEffectApplier creates an EffectApplier
func NewEffectApplier() *EffectApplier {
	return &EffectApplier{}
}

// Apply mutates the player state with the effect and hook, clamping
// stats to [0,100] and money to a zero floor.
func (a *EffectApplier) Apply(env *catalog.Env, effect catalog.Effect, hook catalog.Hook, data *catalog.EventData) *Outcome {
	state := env.State

	state.Stats.Happiness += effect.Happiness
	state.Stats.Health += effect.Health
	state.Stats.Smarts += effect.Smarts
	state.Stats.Looks += effect.Looks
	state.Stats.Clamp()
	state.AdjustMoney(effect.Money)

	if hook != nil {
		hook(env, data)
	}

	if !state.Alive() {
		return &Outcome{Died: true, CauseOfDeath: state.CauseOfDeath}
	}
	return &Outcome{}
}
