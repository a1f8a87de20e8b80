// Package sim implements the year-advance engine: one event per
// simulated year, chosen by weighted draw from the eligible catalog,
// applied to the player and recorded in history.
package sim

//go:generate mockgen -destination=mock/mock_service.go -package=simmock github.com/KirkDiggler/lifesim-api/internal/orchestrators/sim Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/lifesim-api/internal/catalog"
	"github.com/KirkDiggler/lifesim-api/internal/engine"
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/history"
	"github.com/KirkDiggler/lifesim-api/internal/people"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/idgen"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
	"github.com/KirkDiggler/lifesim-api/internal/receivers"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/counters"
	"github.com/KirkDiggler/lifesim-api/internal/repositories/memorial"
)

// DefaultTownSize is the starting population of each new life's town
const DefaultTownSize = 8

// Service defines the interface for running the simulation
type Service interface {
	// AdvanceYear plays one simulated year
	AdvanceYear(ctx context.Context, input *AdvanceYearInput) (*AdvanceYearOutput, error)
	// ResolveChoice applies the player's selection for a pending event
	ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error)
	// NewLife starts over with a fresh character, preserving the game
	NewLife(ctx context.Context, input *NewLifeInput) (*NewLifeOutput, error)
	// NewGame wipes history and counters and starts a fresh life
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
	// GetState reads the current life without mutating anything
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	Catalog     *catalog.Registry
	History     *history.Log
	Counters    counters.Repository
	Memorials   memorial.Repository
	Factory     people.Factory
	Random      *random.Source
	IDGenerator idgen.Generator

	GameID        string
	StartingMoney int
	// TownSize overrides DefaultTownSize when positive
	TownSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.History == nil {
		vb.RequiredField("History")
	}
	if c.Counters == nil {
		vb.RequiredField("Counters")
	}
	if c.Memorials == nil {
		vb.RequiredField("Memorials")
	}
	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRequired("GameID", c.GameID, vb)

	return vb.Build()
}

// pendingEvent is a fired choice event waiting on the player. The
// data bag carries generated people from the description into the
// choice hooks and result text.
type pendingEvent struct {
	event      *catalog.Event
	data       *catalog.EventData
	receiverID string
	// pre-effect snapshot for rollback when a choice hook panics
	stats life.StatBlock
	money int
}

type orchestrator struct {
	mu sync.Mutex

	catalog   *catalog.Registry
	hist      *history.Log
	counters  counters.Repository
	memorials memorial.Repository
	factory   people.Factory
	random    *random.Source
	idGen     idgen.Generator

	filter   *engine.EligibilityFilter
	selector *engine.WeightedSelector
	applier  *engine.EffectApplier
	resolver *receivers.Resolver

	gameID        string
	startingMoney int
	townSize      int

	state      *life.PlayerState
	lifeID     string
	bornYear   int
	phase      Phase
	pending    *pendingEvent
	yearSynced bool
}

// NewOrchestrator creates a simulation orchestrator and starts the
// first life. The global year is synced from the counter service on
// the first AdvanceYear call.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	selector, err := engine.NewWeightedSelector(cfg.Random)
	if err != nil {
		return nil, err
	}
	resolver, err := receivers.NewResolver(&receivers.Config{
		Factory: cfg.Factory,
		Random:  cfg.Random,
	})
	if err != nil {
		return nil, err
	}

	townSize := cfg.TownSize
	if townSize <= 0 {
		townSize = DefaultTownSize
	}

	o := &orchestrator{
		catalog:       cfg.Catalog,
		hist:          cfg.History,
		counters:      cfg.Counters,
		memorials:     cfg.Memorials,
		factory:       cfg.Factory,
		random:        cfg.Random,
		idGen:         cfg.IDGenerator,
		filter:        engine.NewEligibilityFilter(),
		selector:      selector,
		applier:       engine.NewEffectApplier(),
		resolver:      resolver,
		gameID:        cfg.GameID,
		startingMoney: cfg.StartingMoney,
		townSize:      townSize,
	}
	o.startLife(0)
	return o, nil
}

var _ Service = (*orchestrator)(nil)

// startLife replaces the current life with a newborn. Callers hold
// the mutex (or are inside construction).
func (o *orchestrator) startLife(year int) {
	person := o.factory.Generate(&people.GenerateOptions{Age: people.Age(0)})
	o.state = life.NewPlayerState(person, o.startingMoney)
	o.state.Year = year
	for _, resident := range o.factory.Town(o.townSize) {
		o.state.AddToTown(resident)
	}

	o.lifeID = o.idGen.Generate()
	o.bornYear = year
	o.phase = PhaseIdle
	o.pending = nil
}

// syncYear pulls the persisted global year once per process. Counter
// failures degrade to the in-memory year rather than blocking play.
func (o *orchestrator) syncYear(ctx context.Context) {
	if o.yearSynced {
		return
	}
	o.yearSynced = true

	out, err := o.counters.Get(ctx, counters.GetInput{GameID: o.gameID})
	if err != nil {
		slog.Warn("failed to load persisted counters",
			"game_id", o.gameID,
			"error", err)
		return
	}
	o.state.Year = int(out.Counters.GlobalYear)
	o.bornYear = o.state.Year
}

func (o *orchestrator) env() *catalog.Env {
	return &catalog.Env{
		State:  o.state,
		Random: o.random,
		People: o.factory,
	}
}

// AdvanceYear plays one simulated year: ages the world, bumps the
// persisted counters, selects an event and either resolves it or
// parks it awaiting a choice.
func (o *orchestrator) AdvanceYear(ctx context.Context, _ *AdvanceYearInput) (*AdvanceYearOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.phase {
	case PhaseAwaitingChoice:
		return nil, errors.FailedPrecondition("a choice is pending; resolve it before advancing")
	case PhaseDead:
		return nil, errors.FailedPrecondition("the character is dead; start a new life first")
	}

	o.syncYear(ctx)

	// evaluated before aging so a life's first turn is always birth
	birthTurn := o.state.Age == 0 && o.hist.CountInLife(o.lifeID) == 0

	o.state.AdvanceAges()
	o.state.Year++
	o.incrementCounter(ctx, counters.CounterGlobalYear)
	o.incrementCounter(ctx, counters.CounterYearsLived)

	event, receiver, err := o.selectEvent(birthTurn)
	if err != nil {
		if engine.IsNoEligibleEvent(err) {
			return &AdvanceYearOutput{Phase: o.phase, Payload: quietTurnPayload()}, nil
		}
		return nil, err
	}

	data := catalog.NewEventData()
	receiverID := ""
	if receiver != nil {
		data.SetPerson(catalog.KeyReceiver, receiver)
		receiverID = receiver.ID
	}

	stats, money := o.state.Stats, o.state.Money
	description, ok := o.resolveText(event.Description, data, event.ID, "description")
	if !ok {
		o.state.Stats, o.state.Money = stats, money
		return &AdvanceYearOutput{Phase: o.phase, Payload: quietTurnPayload()}, nil
	}

	if event.HasChoices() {
		o.pending = &pendingEvent{
			event:      event,
			data:       data,
			receiverID: receiverID,
			stats:      stats,
			money:      money,
		}
		o.phase = PhaseAwaitingChoice
		return &AdvanceYearOutput{
			EventID: event.ID,
			Phase:   o.phase,
			Payload: &RenderPayload{
				Title:       event.Title,
				Description: description,
				Choices:     choiceOptions(event),
			},
		}, nil
	}

	outcome, ok := o.applyEvent(event, event.Effect, event.OnTrigger, data)
	if !ok {
		o.state.Stats, o.state.Money = stats, money
		return &AdvanceYearOutput{Phase: o.phase, Payload: quietTurnPayload()}, nil
	}
	message, ok := o.resolveText(event.Message, data, event.ID, "message")
	if !ok {
		message = ""
	}

	o.recordTurn(event.ID, receiverID)
	payload := &RenderPayload{
		Title:       event.Title,
		Description: description,
		Message:     message,
	}
	o.finishTurn(ctx, outcome, payload)

	return &AdvanceYearOutput{EventID: event.ID, Phase: o.phase, Payload: payload}, nil
}

// ResolveChoice applies the selected branch of the pending event
func (o *orchestrator) ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.phase != PhaseAwaitingChoice {
		return nil, errors.FailedPreconditionf("no choice is pending in phase %q", o.phase)
	}

	pending := o.pending
	if input.ChoiceIndex < 0 || input.ChoiceIndex >= len(pending.event.Choices) {
		return nil, errors.OutOfRangef("choice index %d out of range [0,%d)",
			input.ChoiceIndex, len(pending.event.Choices))
	}

	choice := pending.event.Choices[input.ChoiceIndex]

	outcome, ok := o.applyEvent(pending.event, choice.Effect, choice.OnSelect, pending.data)
	if !ok {
		o.state.Stats, o.state.Money = pending.stats, pending.money
		o.pending = nil
		o.phase = PhaseIdle
		return &ResolveChoiceOutput{Phase: o.phase, Payload: quietTurnPayload()}, nil
	}
	result, ok := o.resolveText(choice.Result, pending.data, pending.event.ID, "result")
	if !ok {
		result = ""
	}

	o.recordTurn(pending.event.ID, pending.receiverID)
	o.pending = nil
	o.phase = PhaseIdle

	payload := &RenderPayload{
		Title:   pending.event.Title,
		Message: result,
	}
	o.finishTurn(ctx, outcome, payload)

	return &ResolveChoiceOutput{EventID: pending.event.ID, Phase: o.phase, Payload: payload}, nil
}

// NewLife starts a fresh character. Game history, counters and the
// global year carry over.
func (o *orchestrator) NewLife(_ context.Context, _ *NewLifeInput) (*NewLifeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.phase == PhaseAwaitingChoice {
		return nil, errors.FailedPrecondition("a choice is pending; resolve it before starting a new life")
	}

	o.startLife(o.state.Year)
	return &NewLifeOutput{Snapshot: o.snapshot()}, nil
}

// NewGame wipes all history and persisted counters and starts over
func (o *orchestrator) NewGame(ctx context.Context, _ *NewGameInput) (*NewGameOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.hist.Reset()
	if _, err := o.counters.Reset(ctx, counters.ResetInput{GameID: o.gameID}); err != nil {
		return nil, errors.Wrap(err, "failed to reset counters")
	}

	o.yearSynced = true
	o.startLife(0)
	return &NewGameOutput{Snapshot: o.snapshot()}, nil
}

// GetState returns a snapshot of the current life
func (o *orchestrator) GetState(_ context.Context, _ *GetStateInput) (*GetStateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetStateOutput{Snapshot: o.snapshot()}, nil
}

// selectEvent draws the turn's event and resolves its receiver.
// Events whose receiver cannot be found are excluded and the draw
// reruns until something resolves or the pool empties.
func (o *orchestrator) selectEvent(birthTurn bool) (*catalog.Event, *life.Person, error) {
	if birthTurn {
		event, ok := o.catalog.Get(catalog.EventIDBirth)
		if !ok {
			return nil, nil, errors.Internal("catalog has no birth event")
		}
		return event, nil, nil
	}

	excluded := make(map[string]bool)
	for {
		eligible := o.filter.Eligible(&engine.EligibilityInput{
			Events:  o.catalog.Events(),
			State:   o.state,
			History: o.hist,
			LifeID:  o.lifeID,
		})
		if len(excluded) > 0 {
			filtered := eligible[:0]
			for _, ev := range eligible {
				if !excluded[ev.ID] {
					filtered = append(filtered, ev)
				}
			}
			eligible = filtered
		}

		event, err := o.selector.Select(eligible)
		if err != nil {
			return nil, nil, err
		}

		receiver, err := o.resolver.Resolve(event.Receiver, o.state)
		if err != nil {
			if receivers.IsMissingReceiver(err) {
				slog.Debug("excluding event with no available receiver",
					"event_id", event.ID,
					"receiver", string(event.Receiver))
				excluded[event.ID] = true
				continue
			}
			return nil, nil, err
		}
		return event, receiver, nil
	}
}

// applyEvent runs the effect and hook with panic isolation. A panic
// inside a catalog hook is logged and reported as not-ok so the turn
// degrades to a quiet year instead of crashing the simulation.
func (o *orchestrator) applyEvent(event *catalog.Event, effect catalog.Effect, hook catalog.Hook, data *catalog.EventData) (outcome *engine.Outcome, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event hook panicked",
				"event_id", event.ID,
				"panic", r)
			outcome, ok = nil, false
		}
	}()
	return o.applier.Apply(o.env(), effect, hook, data), true
}

// resolveText renders a description with the same panic isolation
func (o *orchestrator) resolveText(desc catalog.Description, data *catalog.EventData, eventID, kind string) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event text generator panicked",
				"event_id", eventID,
				"kind", kind,
				"panic", r)
			text, ok = "", false
		}
	}()
	return desc.Resolve(o.env(), data), true
}

func (o *orchestrator) recordTurn(eventID, receiverID string) {
	o.hist.Record(history.Entry{
		Year:       o.state.Year,
		EventID:    eventID,
		LifeID:     o.lifeID,
		ReceiverID: receiverID,
	})
}

// finishTurn handles a possible death outcome and decorates the
// payload. Memorial and counter writes are best effort.
func (o *orchestrator) finishTurn(ctx context.Context, outcome *engine.Outcome, payload *RenderPayload) {
	if !outcome.Died {
		return
	}

	o.phase = PhaseDead
	payload.IsTerminal = true
	payload.CauseOfDeath = outcome.CauseOfDeath

	slog.Info("life ended",
		"life_id", o.lifeID,
		"age", o.state.Age,
		"year", o.state.Year,
		"cause", outcome.CauseOfDeath)

	o.incrementCounter(ctx, counters.CounterDeaths)
	if _, err := o.memorials.Create(ctx, memorial.CreateInput{
		GameID: o.gameID,
		Record: &memorial.Record{
			LifeID:       o.lifeID,
			Name:         o.state.Name,
			BornYear:     o.bornYear,
			DiedYear:     o.state.Year,
			Age:          o.state.Age,
			CauseOfDeath: outcome.CauseOfDeath,
			Achievements: o.state.Achievements,
		},
	}); err != nil {
		slog.Warn("failed to record memorial",
			"life_id", o.lifeID,
			"error", err)
	}
}

func (o *orchestrator) incrementCounter(ctx context.Context, counter counters.Counter) {
	if _, err := o.counters.Increment(ctx, counters.IncrementInput{
		GameID:  o.gameID,
		Counter: counter,
	}); err != nil {
		slog.Warn("failed to increment counter",
			"counter", string(counter),
			"error", err)
	}
}

func (o *orchestrator) snapshot() *Snapshot {
	rels := o.state.Relationships.All()
	views := make([]RelationshipView, 0, len(rels))
	for _, rel := range rels {
		views = append(views, RelationshipView{
			PersonID: rel.Person.ID,
			Name:     rel.Person.Name,
			Age:      rel.Person.Age,
			Status:   rel.Status,
			Level:    rel.Level,
		})
	}

	return &Snapshot{
		Phase:         o.phase,
		LifeID:        o.lifeID,
		Name:          o.state.Name,
		Gender:        o.state.Gender,
		Age:           o.state.Age,
		Year:          o.state.Year,
		Stats:         o.state.Stats,
		Money:         o.state.Money,
		Job:           o.state.Job,
		Traits:        o.state.Traits,
		Hobbies:       o.state.Hobbies,
		Achievements:  o.state.Achievements,
		Relationships: views,
		Alive:         o.state.Alive(),
		CauseOfDeath:  o.state.CauseOfDeath,
	}
}

func choiceOptions(event *catalog.Event) []ChoiceOption {
	opts := make([]ChoiceOption, len(event.Choices))
	for i, c := range event.Choices {
		opts[i] = ChoiceOption{Index: i, Text: c.Text}
	}
	return opts
}

func quietTurnPayload() *RenderPayload {
	return &RenderPayload{
		Title:       "A Quiet Year",
		Description: "Nothing of note happens this year.",
	}
}
