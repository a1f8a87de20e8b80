package people

import (
	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/errors"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/idgen"
	"github.com/KirkDiggler/lifesim-api/internal/pkg/random"
)

var firstNames = []string{
	"James", "Emma", "Oliver", "Sophia", "William",
	"Isabella", "Henry", "Charlotte", "Alexander", "Mia",
	"Benjamin", "Amelia", "Lucas", "Harper", "Theodore",
	"Evelyn", "Daniel", "Abigail", "Joseph", "Elizabeth",
	"Samuel", "Sofia", "David", "Victoria", "Andrew",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Anderson", "Taylor", "Thomas", "Moore", "Martin",
	"Jackson", "Thompson", "White", "Lopez", "Lee",
	"Harris", "Clark", "Lewis", "Robinson", "Walker",
}

var personalities = []string{
	"Shy", "Outgoing", "Funny", "Serious",
	"Creative", "Athletic", "Nerdy", "Dramatic",
}

var interests = []string{
	"Video Games", "Sports", "Art", "Music",
	"Reading", "Cooking", "Travel", "Science",
	"Photography", "Dancing", "Writing", "Fashion",
	"Technology", "Nature", "Movies", "Theater",
}

// RandomFactoryConfig holds the dependencies for a RandomFactory
type RandomFactoryConfig struct {
	Random      *random.Source
	IDGenerator idgen.Generator
}

// Validate ensures the config is complete
func (c *RandomFactoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// RandomFactory generates people from fixed name, personality and
// interest tables.
type RandomFactory struct {
	random *random.Source
	idGen  idgen.Generator
}

var _ Factory = (*RandomFactory)(nil)

// NewRandomFactory creates a RandomFactory
func NewRandomFactory(cfg *RandomFactoryConfig) (*RandomFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RandomFactory{
		random: cfg.Random,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Generate creates a person. Unpinned attributes roll from the tables:
// age 5-25, balanced stats in 40-60, a single random interest.
func (f *RandomFactory) Generate(opts *GenerateOptions) *life.Person {
	if opts == nil {
		opts = &GenerateOptions{}
	}

	p := &life.Person{
		ID:   f.idGen.Generate(),
		Name: f.randomName(),
		Age:  f.random.IntBetween(5, 25),
		Stats: life.StatBlock{
			Happiness: f.random.IntBetween(40, 60),
			Health:    f.random.IntBetween(40, 60),
			Smarts:    f.random.IntBetween(40, 60),
			Looks:     f.random.IntBetween(40, 60),
		},
		Gender:      life.GenderFemale,
		Personality: personalities[f.random.Index(len(personalities))],
		Interests:   []string{interests[f.random.Index(len(interests))]},
		Job:         opts.Job,
	}
	if f.random.Percent(50) {
		p.Gender = life.GenderMale
	}

	if opts.Age != nil {
		p.Age = *opts.Age
	}
	if opts.Gender != "" {
		p.Gender = opts.Gender
	}
	if opts.Personality != "" {
		p.Personality = opts.Personality
	}
	if len(opts.Interests) > 0 {
		p.Interests = append([]string(nil), opts.Interests...)
	}
	if len(opts.Traits) > 0 {
		p.Traits = append([]string(nil), opts.Traits...)
	}
	if opts.Stats != nil {
		p.Stats = *opts.Stats
	}

	return p
}

// Child creates a newborn with both parent IDs recorded
func (f *RandomFactory) Child(parent1, parent2 *life.Person) *life.Person {
	child := f.Generate(&GenerateOptions{Age: Age(0)})
	if parent1 != nil {
		child.Parents = append(child.Parents, parent1.ID)
	}
	if parent2 != nil {
		child.Parents = append(child.Parents, parent2.ID)
	}
	return child
}

// Enemy creates a hostile adult
func (f *RandomFactory) Enemy(opts *GenerateOptions) *life.Person {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	enemy := *opts
	if enemy.Personality == "" {
		enemy.Personality = "Aggressive"
	}
	if enemy.Age == nil {
		enemy.Age = Age(f.random.IntBetween(18, 40))
	}
	enemy.Traits = append(append([]string(nil), opts.Traits...), "Hostile")

	return f.Generate(&enemy)
}

// Town creates the starting pool of townsfolk
func (f *RandomFactory) Town(count int) []*life.Person {
	out := make([]*life.Person, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, f.Generate(nil))
	}
	return out
}

func (f *RandomFactory) randomName() string {
	first := firstNames[f.random.Index(len(firstNames))]
	last := lastNames[f.random.Index(len(lastNames))]
	return first + " " + last
}
