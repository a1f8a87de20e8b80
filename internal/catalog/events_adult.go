package catalog

import (
	"fmt"

	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
)

// adultEvents covers careers, higher education and married life. The
// married-life entries are the receiver-driven part of the catalog:
// they name an existing spouse, friend or family member rather than
// inventing someone new.
func adultEvents() []*Event {
	return []*Event{
		{
			ID:            "career_opportunity",
			Title:         "Career Opportunity",
			Type:          TypeCareer,
			Weight:        1,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 18, MaxAge: 65, MinHappiness: 30},
			Description:   Static("Multiple job offers! Which path do you choose?"),
			Choices: []Choice{
				{
					Text:   "Tech startup CEO",
					Effect: Effect{Happiness: 15, Smarts: 10, Health: -8},
					Result: Static("You're leading a promising startup! The stress is intense but so is the excitement."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Job = "Tech Startup CEO"
					},
				},
				{
					Text:   "Professional food critic",
					Effect: Effect{Happiness: 12, Health: -5, Looks: -3},
					Result: Static("You're living the dream, trying the best restaurants in town!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Job = "Food Critic"
					},
				},
				{
					Text:   "International spy",
					Effect: Effect{Happiness: 8, Health: -2, Smarts: 15},
					Result: Static("Your life is now filled with intrigue and adventure!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Job = "Government Agent"
					},
				},
			},
		},
		{
			ID:             "promotion_opportunity",
			Title:          "Promotion Opportunity",
			Type:           TypeCareer,
			Weight:         3,
			Repeatability:  RepeatCooldown,
			CooldownYears:  5,
			MaxOccurrences: 5,
			Requirements:   Requirements{MinAge: 18, MaxAge: 100, HasJob: true, MinSmarts: 60, MinHappiness: 20},
			Description:    Static("Your boss has noticed your hard work..."),
			Choices: []Choice{
				{
					Text:   "Work extra hours to prove yourself",
					Effect: Effect{Happiness: -5, Smarts: 10, Health: -5},
					Result: Static("Your dedication paid off! You got the promotion!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AdjustMoney(5000)
					},
				},
				{
					Text:   "Present your innovative ideas",
					Effect: Effect{Happiness: 5, Smarts: 5},
					Result: Static("Your creativity impressed everyone! Promotion granted!"),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.AdjustMoney(5000)
					},
				},
				{
					Text:   "Decline the opportunity",
					Effect: Effect{Happiness: -3},
					Result: Static("You decided to stay in your current position."),
				},
			},
		},
		{
			ID:            "college_opportunity",
			Title:         "College Opportunity",
			Type:          TypeEducation,
			Weight:        7,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 18, MaxAge: 25, HasHighSchool: true, MinSmarts: 50},
			Description:   Static("You have the opportunity to go to college. It's four more years of studying, but it could open doors."),
			Choices: []Choice{
				{
					Text:   "Enroll and hit the books",
					Effect: Effect{Smarts: 15, Happiness: 5, Money: -5000},
					Result: Static("Late nights, lectures, and instant noodles. Four years later you walk away with a degree."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Education.College = true
						env.State.AddAchievement("College Degree")
					},
				},
				{
					Text:   "Skip it and start working",
					Effect: Effect{Money: 3000, Happiness: 3},
					Result: Static("You take an entry-level office job. The paychecks are modest but they're yours."),
					OnSelect: func(env *Env, _ *EventData) {
						if env.State.Job == "" {
							env.State.Job = "Office Assistant"
						}
					},
				},
				{
					Text:   "Take a gap year to travel",
					Effect: Effect{Happiness: 8, Smarts: 3, Money: -2000},
					Result: Static("You see a bit of the world. College will still be there next year... probably."),
				},
			},
		},
		{
			ID:            "wedding_day",
			Title:         "Wedding Day",
			Type:          TypeSocial,
			Weight:        6,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 18, MaxAge: 80, HasPartner: true},
			Description: Generated(func(env *Env, data *EventData) string {
				partners := env.State.Relationships.Partners()
				if len(partners) == 0 {
					return "You dream about a wedding that isn't on the horizon yet."
				}
				partner := partners[0].Person
				data.SetPerson("partner", partner)
				return fmt.Sprintf("%s takes your hands, looks you in the eyes, and asks you to spend the rest of your life together.", partner.Name)
			}),
			Choices: []Choice{
				{
					Text:   "Say \"I do\"",
					Effect: Effect{Happiness: 20, Money: -3000},
					Result: Generated(func(env *Env, data *EventData) string {
						partner := data.Person("partner")
						if partner == nil {
							return "The wedding is beautiful, even if you can barely remember who you married."
						}
						return fmt.Sprintf("The ceremony is small but perfect. You and %s are married!", partner.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if partner := data.Person("partner"); partner != nil {
							env.State.Relationships.Set(partner, life.StatusMarried, 80)
						}
						env.State.AddAchievement("Married")
					},
				},
				{
					Text:   "Get cold feet and run",
					Effect: Effect{Happiness: -15, Looks: -5},
					Result: Generated(func(env *Env, data *EventData) string {
						partner := data.Person("partner")
						if partner == nil {
							return "You bolt. Some things you just aren't ready for."
						}
						return fmt.Sprintf("You bolt out the back door. %s will never forgive you, and honestly, you understand.", partner.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if partner := data.Person("partner"); partner != nil {
							env.State.Relationships.Set(partner, life.StatusEnemy, -50)
						}
					},
				},
			},
		},
		{
			ID:            "anniversary_getaway",
			Title:         "Anniversary Getaway",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 18, IsMarried: true, MinMoney: 500},
			Receiver:      ReceiverSpouse,
			Description: Generated(func(env *Env, data *EventData) string {
				spouse := data.Receiver()
				if spouse == nil {
					return "Your anniversary rolls around, and you plan a little celebration."
				}
				return fmt.Sprintf("Your anniversary is coming up, and %s has been dropping hints about a weekend away.", spouse.Name)
			}),
			Effect: Effect{Happiness: 12, Health: 3, Money: -500},
			Message: Generated(func(env *Env, data *EventData) string {
				spouse := data.Receiver()
				if spouse == nil {
					return "The getaway is exactly what you needed."
				}
				return fmt.Sprintf("Two days by the lake with %s. Worth every penny.", spouse.Name)
			}),
			OnTrigger: func(env *Env, data *EventData) {
				if spouse := data.Receiver(); spouse != nil {
					env.State.Relationships.AdjustLevel(spouse.ID, 10)
				}
			},
		},
		{
			ID:            "family_reunion",
			Title:         "Family Reunion",
			Type:          TypeSocial,
			Weight:        2,
			Repeatability: RepeatCooldown,
			CooldownYears: 4,
			Requirements:  Requirements{MinAge: 10},
			Receiver:      ReceiverFamily,
			Description: Generated(func(env *Env, data *EventData) string {
				relative := data.Receiver()
				if relative == nil {
					return "A family reunion is organized, but with your scattered family, hardly anyone shows up. You spend the afternoon with distant cousins you barely know."
				}
				return fmt.Sprintf("The whole family gathers for a reunion. %s corners you by the buffet with a year's worth of stories.", relative.Name)
			}),
			Effect:  Effect{Happiness: 8},
			Message: Static("Potato salad, old photo albums, and too many hugs. Family is family."),
			OnTrigger: func(env *Env, data *EventData) {
				if relative := data.Receiver(); relative != nil {
					env.State.Relationships.AdjustLevel(relative.ID, 10)
				}
			},
		},
		{
			ID:            "old_friend_road_trip",
			Title:         "Road Trip",
			Type:          TypeSocial,
			Weight:        2,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 16, MinHappiness: 20},
			Receiver:      ReceiverFriend,
			Description: Generated(func(env *Env, data *EventData) string {
				friend := data.Receiver()
				if friend == nil {
					return "A friend suggests a spontaneous road trip."
				}
				return fmt.Sprintf("%s shows up with a full tank of gas and a terrible playlist. \"Road trip?\"", friend.Name)
			}),
			Choices: []Choice{
				{
					Text:   "Pack a bag and go",
					Effect: Effect{Happiness: 15, Money: -200},
					Result: Generated(func(env *Env, data *EventData) string {
						friend := data.Receiver()
						if friend == nil {
							return "Three days of open road and bad diner food. You come back broke and happy."
						}
						return fmt.Sprintf("Three days of open road and bad diner food with %s. You come back broke and happy.", friend.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if friend := data.Receiver(); friend != nil {
							env.State.Relationships.AdjustLevel(friend.ID, 15)
						}
					},
				},
				{
					Text:   "Pass this time",
					Effect: Effect{Happiness: -3},
					Result: Static("You wave them off from the driveway. The photos they send all week don't help."),
					OnSelect: func(env *Env, data *EventData) {
						if friend := data.Receiver(); friend != nil {
							env.State.Relationships.AdjustLevel(friend.ID, -5)
						}
					},
				},
			},
		},
		{
			ID:            "random_encounter",
			Title:         "Unexpected Encounter",
			Type:          TypeRandom,
			Weight:        2,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 8},
			Receiver:      ReceiverAny,
			Description: Generated(func(env *Env, data *EventData) string {
				person := data.Receiver()
				if person == nil {
					return "You bump into someone on the street."
				}
				return fmt.Sprintf("You run into %s at the corner store. They seem eager to chat.", person.Name)
			}),
			Choices: []Choice{
				{
					Text:   "Stop and catch up",
					Effect: Effect{Happiness: 5},
					Result: Static("Twenty minutes of conversation later, you part ways smiling."),
					OnSelect: func(env *Env, data *EventData) {
						if person := data.Receiver(); person != nil {
							env.State.Relationships.AdjustLevel(person.ID, 5)
						}
					},
				},
				{
					Text:   "Pretend you didn't see them",
					Effect: Effect{Happiness: -2},
					Result: Static("You stare very hard at the cereal shelf until they leave. Smooth."),
					OnSelect: func(env *Env, data *EventData) {
						if person := data.Receiver(); person != nil {
							env.State.Relationships.AdjustLevel(person.ID, -5)
						}
					},
				},
			},
		},
	}
}
