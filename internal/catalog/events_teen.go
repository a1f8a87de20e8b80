package catalog

import (
	"fmt"

	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
)

// teenEvents covers the school drama years, including the one event
// that can end a young life early.
func teenEvents() []*Event {
	return []*Event{
		{
			ID:            "tragic_death",
			Title:         "Death",
			Type:          TypeRandom,
			Weight:        100,
			Repeatability: RepeatOncePerGame,
			Requirements:  Requirements{MinAge: 16, MaxAge: 25},
			Description:   Static("You're driving late at night after a party, feeling invincible. Suddenly, a deer jumps onto the road!"),
			Choices: []Choice{
				{
					Text:   "Swerve to avoid it",
					Effect: Effect{Health: -100},
					Result: Static("You swerve sharply to avoid the deer. Your car loses control and rolls several times. The world goes dark..."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.CauseOfDeath = "Car accident - lost control while swerving"
					},
				},
				{
					Text:   "Hit the brakes",
					Effect: Effect{Health: -100},
					Result: Static("You slam on the brakes, but it's too late. The car hits the deer then flips over, crashing into a tree. The world goes dark..."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.CauseOfDeath = "Car accident - collision with tree"
					},
				},
			},
		},
		{
			ID:            "love_triangle_drama",
			Title:         "Love Triangle Drama",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 13, MaxAge: 19},
			Description: Generated(func(env *Env, data *EventData) string {
				admirer1 := sameAgePerson(env)
				admirer2 := sameAgePerson(env)
				data.SetPerson("admirer1", admirer1)
				data.SetPerson("admirer2", admirer2)
				return fmt.Sprintf("Two classmates, %s and %s, both confess their feelings for you on the same day. Word spreads fast around school, and now everyone is watching to see what you'll do.", admirer1.Name, admirer2.Name)
			}),
			Choices: []Choice{
				{
					Text:   "Choose one and reject the other",
					Effect: Effect{Happiness: 10, Looks: 5},
					Result: Generated(func(env *Env, data *EventData) string {
						chosen := data.Person("admirer1")
						rejected := data.Person("admirer2")
						if chosen == nil || rejected == nil {
							return "You choose one admirer, breaking the other's heart. The school drama reaches new heights."
						}
						return fmt.Sprintf("You choose %s, breaking %s's heart. The school drama reaches new heights.", chosen.Name, rejected.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if chosen := data.Person("admirer1"); chosen != nil {
							env.State.Relationships.Set(chosen, life.StatusDating, 50)
						}
						if rejected := data.Person("admirer2"); rejected != nil {
							env.State.Relationships.Set(rejected, life.StatusEnemy, -20)
						}
					},
				},
				{
					Text:   "Turn them both down to avoid drama",
					Effect: Effect{Happiness: -5, Smarts: 5},
					Result: Static("You decide to avoid the drama and turn them both down. People respect your maturity, but your heart feels a bit empty."),
					OnSelect: func(env *Env, data *EventData) {
						if a := data.Person("admirer1"); a != nil {
							env.State.Relationships.Set(a, life.StatusAcquaintance, 10)
						}
						if a := data.Person("admirer2"); a != nil {
							env.State.Relationships.Set(a, life.StatusAcquaintance, 10)
						}
					},
				},
				{
					Text:   "Tell them you need time to think",
					Effect: Effect{Happiness: -10},
					Result: Static("Your indecision leads to weeks of awkward encounters and whispered rumors. Both admirers eventually move on, leaving you alone."),
					OnSelect: func(env *Env, data *EventData) {
						if a := data.Person("admirer1"); a != nil {
							env.State.Relationships.Set(a, life.StatusAcquaintance, -5)
						}
						if a := data.Person("admirer2"); a != nil {
							env.State.Relationships.Set(a, life.StatusAcquaintance, -5)
						}
					},
				},
			},
		},
		{
			ID:            "exposed_chat",
			Title:         "Exposed in Group Chat",
			Type:          TypeSocial,
			Weight:        4,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 13, MaxAge: 19, MinSmarts: 20},
			Description:   Static("Someone screenshots your private message complaining about a teacher and shares it in the school-wide group chat. The teacher has seen it."),
			Choices: []Choice{
				{
					Text:   "Own up and apologize sincerely",
					Effect: Effect{Happiness: -5, Smarts: 10},
					Result: Static("You apologize to the teacher and take responsibility. They appreciate your honesty, and your classmates respect your integrity."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Honest")
					},
				},
				{
					Text:   "Deny everything and blame the leaker",
					Effect: Effect{Happiness: -10, Smarts: -5},
					Result: Generated(func(env *Env, data *EventData) string {
						leaker := data.Person("leaker")
						if leaker == nil {
							return "You deny it all and blame someone else for fabricating the screenshot. Nobody believes you."
						}
						return fmt.Sprintf("You deny it all and blame %s for fabricating the screenshot. Nobody believes you, and now you've made a powerful enemy.", leaker.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						leaker := sameAgePerson(env)
						env.State.Relationships.Set(leaker, life.StatusEnemy, -30)
						data.SetPerson("leaker", leaker)
					},
				},
				{
					Text:   "Play it cool and ignore everything",
					Effect: Effect{Happiness: 5, Looks: 5},
					Result: Static("You act like it doesn't bother you at all. Your apparent confidence impresses some classmates, though the teacher remains unhappy."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Confident")
					},
				},
			},
		},
		{
			ID:            "public_breakup",
			Title:         "Public Breakup Drama",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 13, MaxAge: 19},
			Description: Generated(func(env *Env, data *EventData) string {
				person1 := sameAgePerson(env)
				person2 := sameAgePerson(env)
				data.SetPerson("person1", person1)
				data.SetPerson("person2", person2)
				return fmt.Sprintf("%s and %s are having a full-blown screaming match in the middle of the cafeteria over their messy breakup. Everyone's watching!", person1.Name, person2.Name)
			}),
			Choices: []Choice{
				{
					Text:   "Record it and share with friends",
					Effect: Effect{Happiness: 5, Looks: -5},
					Result: Static("Your video goes viral in the school. You gain some social clout, but both parties involved now hate you."),
					OnSelect: func(env *Env, data *EventData) {
						if p := data.Person("person1"); p != nil {
							env.State.Relationships.Set(p, life.StatusEnemy, -20)
						}
						if p := data.Person("person2"); p != nil {
							env.State.Relationships.Set(p, life.StatusEnemy, -20)
						}
					},
				},
				{
					Text:   "Try to calm them down",
					Effect: Effect{Happiness: -5, Smarts: 10},
					Result: Static("You manage to defuse the situation. Both parties appreciate your maturity and become your friends."),
					OnSelect: func(env *Env, data *EventData) {
						if p := data.Person("person1"); p != nil {
							env.State.Relationships.Set(p, life.StatusFriend, 20)
						}
						if p := data.Person("person2"); p != nil {
							env.State.Relationships.Set(p, life.StatusFriend, 20)
						}
					},
				},
				{
					Text:   "Keep eating and ignore it",
					Effect: Effect{},
					Result: Static("You focus on your lunch while chaos unfolds around you. Sometimes staying neutral is the best policy."),
				},
			},
		},
		{
			ID:            "vicious_rumors",
			Title:         "Vicious Rumors",
			Type:          TypeSocial,
			Weight:        4,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 13, MaxAge: 19, MinHappiness: 30},
			Description:   Static("A particularly nasty rumor about you is spreading through school like wildfire. Everyone's whispering and giving you strange looks."),
			Choices: []Choice{
				{
					Text:   "Investigate and confront the source",
					Effect: Effect{Happiness: -5, Smarts: 10},
					Result: Generated(func(env *Env, data *EventData) string {
						starter := data.Person("rumor_starter")
						if starter == nil {
							return "You never quite figure out who started the rumor, and it eventually dies down on its own."
						}
						if data.Value("befriended") != "" {
							return fmt.Sprintf("You find out %s started the rumor, but they sincerely apologize and you both end up becoming friends.", starter.Name)
						}
						return fmt.Sprintf("You discover %s started the rumor out of jealousy. The confrontation turns ugly, but at least you know the truth.", starter.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						starter := sameAgePerson(env)
						data.SetPerson("rumor_starter", starter)
						if env.Random.Percent(50) {
							data.SetValue("befriended", "yes")
							env.State.Relationships.Set(starter, life.StatusFriend, 20)
						} else {
							env.State.Relationships.Set(starter, life.StatusEnemy, -40)
						}
					},
				},
				{
					Text:   "Start a counter-rumor",
					Effect: Effect{Happiness: -10, Looks: -5},
					Result: Static("Your counter-rumor only makes things worse. Now there are multiple versions of the story circulating."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Vengeful")
					},
				},
				{
					Text:   "Rise above it and focus on yourself",
					Effect: Effect{Happiness: 10, Smarts: 5},
					Result: Static("You ignore the rumors and focus on your goals. People eventually forget about it, and you earn respect for your maturity."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Mature")
					},
				},
			},
		},
		{
			ID:            "cheating_ring",
			Title:         "The Cheating Ring",
			Type:          TypeEducation,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 13, MaxAge: 19, MinSmarts: 40},
			Description:   Static("You discover a sophisticated cheating ring at school. They offer to let you join, promising perfect grades with minimal effort."),
			Choices: []Choice{
				{
					Text:   "Join the ring",
					Effect: Effect{Smarts: 15, Happiness: -10},
					Result: Generated(func(env *Env, data *EventData) string {
						if data.Value("caught") != "" {
							return "The ring gets caught! You and several others face serious consequences. Your academic record is permanently damaged."
						}
						return "You successfully cheat your way to better grades, but the guilt weighs heavily on you."
					}),
					OnSelect: func(env *Env, data *EventData) {
						if env.Random.Percent(30) {
							data.SetValue("caught", "yes")
							env.State.Stats.Smarts -= 30
							env.State.Stats.Clamp()
						}
					},
				},
				{
					Text:   "Report them to the administration",
					Effect: Effect{Happiness: -5, Smarts: 10},
					Result: Generated(func(env *Env, data *EventData) string {
						cheater := data.Person("cheater")
						if cheater == nil {
							return "The ring is busted. Your conscience is clear, but you've made some dangerous enemies."
						}
						return fmt.Sprintf("The ring is busted, but %s figures out you were the whistleblower. Your conscience is clear, but you've made some dangerous enemies.", cheater.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						cheater := sameAgePerson(env)
						env.State.Relationships.Set(cheater, life.StatusEnemy, -50)
						data.SetPerson("cheater", cheater)
					},
				},
				{
					Text:   "Decline and study honestly",
					Effect: Effect{Happiness: 5, Smarts: 20},
					Result: Static("You choose the honest path. It's harder, but you actually learn the material and feel proud of your achievements."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Studious")
					},
				},
			},
		},
		{
			ID:            "major_test_cheating",
			Title:         "Final Exam Temptation",
			Type:          TypeEducation,
			Weight:        4,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 14, MaxAge: 18, MinSmarts: 30},
			Description:   Static("A friend offers you the answers to the final exam. They swear they got them legitimately from last year's test."),
			Choices: []Choice{
				{
					Text:   "Study honestly",
					Effect: Effect{Happiness: 5, Smarts: 15},
					Result: Static("You ace the test through hard work! Your teacher even comments on your impressive improvement."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Honest")
					},
				},
				{
					Text:   "Take the answers but study too",
					Effect: Effect{Happiness: -5, Smarts: 10},
					Result: Static("You use the answers as a study guide. Your conscience is slightly troubled, but you learn the material anyway."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Pragmatic")
					},
				},
				{
					Text:   "Share the answers with everyone",
					Effect: Effect{Happiness: 10, Smarts: -10},
					Result: Static("The whole class gets suspicious grades. An investigation begins..."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Risk-taker")
					},
				},
			},
		},
		{
			ID:            "friend_betrayal",
			Title:         "Backstabbed",
			Type:          TypeSocial,
			Weight:        4,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 13, MaxAge: 18, HasFriends: true},
			Description: Generated(func(env *Env, data *EventData) string {
				friends := env.State.Relationships.Friends()
				if len(friends) == 0 {
					return "You discover that someone you trusted has been spreading rumors about you."
				}
				betrayer := friends[env.Random.Index(len(friends))]
				data.SetPerson("betrayer", betrayer.Person)
				return fmt.Sprintf("You find out that %s, one of your closest friends, has been talking about you behind your back.", betrayer.Person.Name)
			}),
			Effect:  Effect{Happiness: -15, Looks: -5},
			Message: Static("The betrayal stings deeply. You start questioning who you can really trust."),
			OnTrigger: func(env *Env, data *EventData) {
				if betrayer := data.Person("betrayer"); betrayer != nil {
					env.State.Relationships.Downgrade(betrayer.ID)
				}
			},
		},
		{
			ID:            "party_raid",
			Title:         "Party Panic",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 15, MaxAge: 18},
			Description:   Static("You're at the biggest party of the year when suddenly the police show up! Everyone scatters in panic."),
			Effect:        Effect{Happiness: -10, Health: -5},
			Message:       Static("You barely make it out without getting caught. Your heart is racing from the adrenaline!"),
		},
		{
			ID:            "social_media_callout",
			Title:         "Social Media Meltdown",
			Type:          TypeSocial,
			Weight:        4,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 13, MaxAge: 18},
			Description: Generated(func(env *Env, data *EventData) string {
				ex := sameAgePerson(env)
				env.State.Relationships.Set(ex, life.StatusEnemy, -30)
				data.SetPerson("ex", ex)
				return fmt.Sprintf("%s, your ex, posts a lengthy rant about you on social media. The comments section is exploding with drama.", ex.Name)
			}),
			Effect:  Effect{Happiness: -20, Looks: -10},
			Message: Static("Your phone won't stop buzzing with notifications. This is not how you wanted to go viral."),
		},
		{
			ID:            "class_embarrassment",
			Title:         "Voice Crack Catastrophe",
			Type:          TypeRandom,
			Weight:        5,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 13, MaxAge: 16},
			Description:   Static("While giving an important presentation in class, your voice cracks horribly. The whole class erupts in laughter."),
			Effect:        Effect{Happiness: -15, Looks: -5},
			Message:       Static("You'll never live this down. At least it'll make a funny story... eventually."),
		},
		{
			ID:            "false_accusation",
			Title:         "Wrongly Accused",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 14, MaxAge: 18},
			Description:   Static("Someone's expensive headphones go missing from the locker room, and rumors start circulating that you took them."),
			Effect:        Effect{Happiness: -20, Looks: -10},
			Message:       Static("Being falsely accused is frustrating. You hope the truth comes out soon."),
			OnTrigger: func(env *Env, _ *EventData) {
				addTrait(env, "Resilient")
			},
		},
		{
			ID:            "high_school_graduation",
			Title:         "High School Graduation",
			Type:          TypeEducation,
			Weight:        50,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 18, MaxAge: 18},
			Description:   Static("Cap, gown, and a sea of proud families. You walk the stage and collect your high school diploma."),
			Effect:        Effect{Happiness: 15, Smarts: 5},
			Message:       Static("Thirteen years of school, done. Whatever comes next, nobody can take this away from you."),
			OnTrigger: func(env *Env, _ *EventData) {
				env.State.Education.HighSchool = true
				env.State.AddAchievement("High School Diploma")
				adjustFamilyLevels(env, 10)
			},
		},
	}
}
