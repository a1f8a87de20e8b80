package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
)

// commonEvents apply across most of a life, plus the quiet fallback
// year that keeps selection from ever coming up empty.
func commonEvents() []*Event {
	return []*Event{
		{
			ID:             "new_hobby",
			Title:          "New Hobby",
			Type:           TypeRandom,
			Weight:         1,
			Repeatability:  RepeatCooldown,
			CooldownYears:  4,
			MaxOccurrences: 5,
			Requirements:   Requirements{MinAge: 12, MaxAge: 90, MinHappiness: 30},
			Description:    Static("You have some free time. What would you like to try?"),
			Choices: []Choice{
				{
					Text:   "Start collecting rare bugs",
					Effect: Effect{Happiness: 5, Smarts: 8, Health: -2},
					Result: Static("You've become fascinated with entomology! Your parents are less excited about the bugs in jars."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Bug collecting")
					},
				},
				{
					Text:   "Learn magic tricks",
					Effect: Effect{Happiness: 8, Looks: 5, Smarts: 3},
					Result: Static("You're becoming quite the entertainer! Your card tricks are actually impressive."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Magic tricks")
					},
				},
				{
					Text:   "Start a rock band",
					Effect: Effect{Happiness: 10, Health: -3, Looks: 5},
					Result: Static("Your garage band isn't great, but you're having the time of your life!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Playing music")
					},
				},
			},
		},
		{
			ID:            "feeling_sick",
			Title:         "Feeling Sick",
			Type:          TypeHealth,
			Weight:        1,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 16, MaxAge: 100, MinHealth: 40},
			Description:   Static("You're not feeling well. What do you do?"),
			Choices: []Choice{
				{
					Text:   "Ignore it and go to school/work anyway",
					Effect: Effect{Health: -15, Happiness: -10, Smarts: 2},
					Result: Static("You pushed through but got much sicker. Not your best decision."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddAchievement("Iron Will")
					},
				},
				{
					Text:   "Take medicine and rest",
					Effect: Effect{Health: -5, Happiness: -3},
					Result: Static("You recovered after a few days of rest."),
				},
				{
					Text:   "Try grandma's secret remedy",
					Effect: Effect{Health: -8, Happiness: 5},
					Result: Static("It tasted horrible but somehow made you feel better... eventually."),
				},
			},
		},
		{
			ID:            "difficult_exam",
			Title:         "Difficult Exam",
			Type:          TypeEducation,
			Weight:        2,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 16, MaxAge: 25, MinSmarts: 50, MinHappiness: 30},
			Description:   Static("You're struggling with a really important exam. What do you do?"),
			Choices: []Choice{
				{
					Text:   "Study all night",
					Effect: Effect{Smarts: 15, Health: -5, Happiness: -3},
					Result: Static("You aced the exam but you're exhausted!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddAchievement("Academic Excellence")
					},
				},
				{
					Text:   "Try to peek at your neighbor's answers",
					Effect: Effect{Smarts: -5, Happiness: -10},
					Result: Static("You got caught cheating. This will have consequences..."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddAchievement("Caught Cheating")
					},
				},
				{
					Text:   "Write answers on your water bottle",
					Effect: Effect{Happiness: -5},
					Result: Static("You got away with it, but the guilt is eating at you."),
				},
			},
		},
		{
			ID:            "crush_alert",
			Title:         "Crush Alert",
			Type:          TypeSocial,
			Weight:        1,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 13, MaxAge: 80, IsSingle: true, MinHappiness: 30},
			Description:   Static("Someone special has caught your eye. How do you approach them?"),
			Choices: []Choice{
				{
					Text:   "Write a romantic poem",
					Effect: Effect{Happiness: 10, Smarts: 5, Looks: -2},
					Result: Static("They were touched by your creativity! A beautiful relationship begins."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.Set(sameAgePerson(env), life.StatusDating, 50)
					},
				},
				{
					Text:   "Try to impress them with sports",
					Effect: Effect{Health: 8, Happiness: 5, Looks: 5},
					Result: Static("You showed off your athletic skills and caught their attention!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.Set(sameAgePerson(env), life.StatusDating, 50)
					},
				},
				{
					Text:   "Ask their friends about them",
					Effect: Effect{Happiness: -5},
					Result: Static("They found out you were asking about them. How embarrassing!"),
				},
			},
		},
		{
			ID:            "fitness_journey",
			Title:         "Fitness Journey",
			Type:          TypeHealth,
			Weight:        1,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 12, MaxAge: 80, MinHealth: 20, MinHappiness: 30},
			Description:   Static("You want to get in shape. Which unusual method do you try?"),
			Choices: []Choice{
				{
					Text:   "Underwater basket weaving aerobics",
					Effect: Effect{Health: 12, Looks: 8, Happiness: 5},
					Result: Static("This weird workout actually worked! You're in great shape!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Underwater Aerobics")
					},
				},
				{
					Text:   "Extreme dog walking",
					Effect: Effect{Health: 15, Happiness: 10, Looks: 3},
					Result: Static("Running with dogs through obstacle courses is surprisingly effective!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Extreme Dog Walking")
					},
				},
				{
					Text:   "Competitive office chair racing",
					Effect: Effect{Health: 5, Happiness: 15, Looks: -2},
					Result: Static("Not the best workout, but you're having a blast!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AddHobby("Chair Racing")
					},
				},
			},
		},
		{
			ID:            "new_connection",
			Title:         "New Connection",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatUnlimited,
			Requirements:  Requirements{MinAge: 5, MaxAge: 90, MinHappiness: 20},
			Description: Generated(func(env *Env, data *EventData) string {
				state := env.State

				// keep a small pool of strangers to meet
				if len(state.PotentialRelationships) < 3 {
					state.PotentialRelationships = append(state.PotentialRelationships, env.People.Generate(nil))
				}

				var available []*life.Person
				for _, p := range state.PotentialRelationships {
					if _, known := state.Relationships.Get(p.ID); !known {
						available = append(available, p)
					}
				}

				var selected *life.Person
				if len(available) == 0 {
					selected = env.People.Generate(nil)
					state.PotentialRelationships = append(state.PotentialRelationships, selected)
				} else {
					selected = available[env.Random.Index(len(available))]
				}
				data.SetPerson("selected", selected)

				interest := "long walks"
				if len(selected.Interests) > 0 {
					interest = strings.ToLower(selected.Interests[0])
				}
				return fmt.Sprintf("You meet %s, a %s person who loves %s. How do you approach them?", selected.Name, strings.ToLower(selected.Personality), interest)
			}),
			Choices: []Choice{
				{
					Text:   "Be friendly and open",
					Effect: Effect{Happiness: 5},
					Result: Generated(func(env *Env, data *EventData) string {
						person := data.Person("selected")
						if person == nil {
							return "You had a pleasant interaction with someone new."
						}
						return fmt.Sprintf("You had an amazing time with %s! Your friendship has grown stronger.", person.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if person := data.Person("selected"); person != nil {
							env.State.Relationships.Set(person, life.StatusAcquaintance, 20)
						}
					},
				},
				{
					Text:   "Share common interests",
					Effect: Effect{Happiness: 8, Smarts: 2},
					Result: Generated(func(env *Env, data *EventData) string {
						person := data.Person("selected")
						if person == nil {
							return "You had an engaging conversation about shared interests."
						}
						interest := "everything"
						if len(person.Interests) > 0 {
							interest = person.Interests[0]
						}
						return fmt.Sprintf("You and %s really hit it off talking about %s!", person.Name, interest)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if person := data.Person("selected"); person != nil {
							env.State.Relationships.Set(person, life.StatusFriend, 30)
						}
					},
				},
				{
					Text:   "Keep your distance",
					Effect: Effect{Happiness: -1},
					Result: Generated(func(env *Env, data *EventData) string {
						person := data.Person("selected")
						if person == nil {
							return "You decided to keep to yourself."
						}
						return fmt.Sprintf("You decide to avoid %s. They seem a bit hurt.", person.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if person := data.Person("selected"); person != nil {
							env.State.Relationships.Set(person, life.StatusStranger, -10)
						}
					},
				},
			},
		},
		{
			ID:            "deepening_friendship",
			Title:         "Deepening Friendship",
			Type:          TypeSocial,
			Weight:        5,
			Repeatability: RepeatCooldown,
			CooldownYears: 1,
			Requirements:  Requirements{MinAge: 5, MaxAge: 90, HasFriends: true, MinHappiness: 30},
			Description: Generated(func(env *Env, data *EventData) string {
				friends := env.State.Relationships.Friends()
				if len(friends) == 0 {
					return "You find yourself with no real friends. The loneliness weighs heavily on you."
				}
				friend := friends[env.Random.Index(len(friends))].Person
				data.SetPerson("friend", friend)

				activity := "hang out"
				if len(friend.Interests) > 0 {
					activity = strings.ToLower(friend.Interests[0])
				}
				return fmt.Sprintf("Your friend %s invites you to %s together. What do you do?", friend.Name, activity)
			}),
			Choices: []Choice{
				{
					Text:   "Enthusiastically join them",
					Effect: Effect{Happiness: 10},
					Result: Generated(func(env *Env, data *EventData) string {
						friend := data.Person("friend")
						if friend == nil {
							return "You had an amazing time with your friend! Your friendship has grown stronger."
						}
						return fmt.Sprintf("You had an amazing time with %s! Your friendship has grown stronger.", friend.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if friend := data.Person("friend"); friend != nil {
							env.State.Relationships.Upgrade(friend.ID)
						}
					},
				},
				{
					Text:   "Make an excuse",
					Effect: Effect{Happiness: -3},
					Result: Generated(func(env *Env, data *EventData) string {
						friend := data.Person("friend")
						if friend == nil {
							return "Your friend seems disappointed. Your friendship has cooled a bit."
						}
						return fmt.Sprintf("%s seems disappointed. Your friendship has cooled a bit.", friend.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if friend := data.Person("friend"); friend != nil {
							env.State.Relationships.Downgrade(friend.ID)
						}
					},
				},
				{
					Text:   "Suggest a different activity",
					Effect: Effect{Happiness: 5},
					Result: Generated(func(env *Env, data *EventData) string {
						friend := data.Person("friend")
						if friend == nil {
							return "Your friend appreciates your honesty and you find a compromise."
						}
						return fmt.Sprintf("%s appreciates your honesty and you find a compromise.", friend.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if friend := data.Person("friend"); friend != nil {
							env.State.Relationships.AdjustLevel(friend.ID, 5)
						}
					},
				},
			},
		},
		{
			ID:            EventIDQuietYear,
			Title:         "A Quiet Year",
			Type:          TypeRandom,
			Weight:        1,
			Repeatability: RepeatUnlimited,
			Description:   Static("Nothing remarkable happens this year. Life settles into a comfortable routine."),
			Effect:        Effect{Happiness: 1},
			Message:       Static("Sometimes an uneventful year is exactly what you need."),
		},
	}
}
