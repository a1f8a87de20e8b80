package catalog

import (
	"fmt"

	"github.com/KirkDiggler/lifesim-api/internal/entities/life"
	"github.com/KirkDiggler/lifesim-api/internal/people"
)

// childhoodEvents covers birth through elementary school
func childhoodEvents() []*Event {
	return []*Event{
		{
			ID:            EventIDBirth,
			Title:         "Birth",
			Type:          TypeSocial,
			Weight:        100000,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 0, MaxAge: 1},
			Description: Generated(func(env *Env, data *EventData) string {
				mom := env.People.Generate(&people.GenerateOptions{
					Age:    people.Age(env.Random.IntBetween(20, 34)),
					Gender: life.GenderFemale,
				})
				dad := env.People.Generate(&people.GenerateOptions{
					Age:    people.Age(env.Random.IntBetween(22, 36)),
					Gender: life.GenderMale,
				})
				env.State.AddToTown(mom)
				env.State.AddToTown(dad)
				data.SetPerson("mom", mom)
				data.SetPerson("dad", dad)
				return "You are born into this world, your parents are overjoyed."
			}),
			Choices: []Choice{
				{
					Text:   "Cry",
					Effect: Effect{Happiness: 20, Smarts: 20, Health: 20},
					Result: Generated(func(env *Env, data *EventData) string {
						mom := data.Person("mom")
						dad := data.Person("dad")
						if mom == nil || dad == nil {
							return "You are born into this world."
						}
						return fmt.Sprintf("You are born into this world, your parents are overjoyed. Your mom is %s and your dad is %s.", mom.Name, dad.Name)
					}),
					OnSelect: func(env *Env, data *EventData) {
						if mom := data.Person("mom"); mom != nil {
							env.State.Relationships.Set(mom, life.StatusMom, 80)
						}
						if dad := data.Person("dad"); dad != nil {
							env.State.Relationships.Set(dad, life.StatusDad, 80)
						}
					},
				},
			},
		},
		{
			ID:            "first_laugh",
			Title:         "First Laugh",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 1, MaxAge: 2},
			Description:   Static("Your parents make funny faces at you, and suddenly, you let out your very first laugh!"),
			Effect:        Effect{Happiness: 15},
			Message:       Static("Your parents cheer and keep doing silly things to make you giggle more. They're delighted!"),
			OnTrigger: func(env *Env, _ *EventData) {
				adjustFamilyLevels(env, 10)
			},
		},
		{
			ID:            "teething_trouble",
			Title:         "Teething Trouble",
			Type:          TypeHealth,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 1, MaxAge: 2},
			Description:   Static("Your first teeth are starting to come in, and it's miserable! You chew on everything in sight."),
			Effect:        Effect{Happiness: -10, Health: -5},
			Message:       Static("You cry at night from the discomfort. Your parents try everything to soothe you."),
		},
		{
			ID:            "first_crawl",
			Title:         "Crawling for the First Time",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 1, MaxAge: 1},
			Description:   Static("After weeks of trying, you finally manage to crawl across the floor!"),
			Effect:        Effect{Happiness: 15, Health: 5},
			Message:       Static("Your parents cheer and record a video to show the family. You're on the move now!"),
			OnTrigger: func(env *Env, _ *EventData) {
				adjustFamilyLevels(env, 10)
				addTrait(env, "Developing Motor Skills")
			},
		},
		{
			ID:            "grabbing_everything",
			Title:         "Grabbing Everything",
			Type:          TypeRandom,
			Weight:        4,
			Repeatability: RepeatCooldown,
			CooldownYears: 10,
			Requirements:  Requirements{MinAge: 1, MaxAge: 1},
			Description:   Static("You've developed a habit of grabbing whatever is in reach: your parents' glasses, their phone, and even their food!"),
			Choices: []Choice{
				{
					Text:   "Grab and hold onto your parent's finger",
					Effect: Effect{Happiness: 10},
					Result: Static("Your parent smiles as you grip their finger tightly. This sweet moment strengthens your bond."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 15)
					},
				},
				{
					Text:   "Yank your parent's glasses off their face",
					Effect: Effect{Happiness: 5},
					Result: Static("You grab their glasses with surprising strength! They're a bit annoyed but also impressed."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, -5)
						addTrait(env, "Developing Strength")
					},
				},
				{
					Text:   "Throw their phone to the ground",
					Effect: Effect{Happiness: 3, Health: -2},
					Result: Static("CRASH! Their phone hits the floor. Your parents are upset, but you find it hilarious."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, -15)
						addTrait(env, "Chaotic")
					},
				},
			},
		},
		{
			ID:            "refusing_sleep",
			Title:         "Refusing to Sleep",
			Type:          TypeRandom,
			Weight:        4,
			Repeatability: RepeatCooldown,
			CooldownYears: 1,
			Requirements:  Requirements{MinAge: 1, MaxAge: 3},
			Description:   Static("Your parents rock you back and forth, hoping to lull you to sleep. But you don't feel tired at all!"),
			Choices: []Choice{
				{
					Text:   "Give in and sleep",
					Effect: Effect{Health: 15, Happiness: 5},
					Result: Static("You drift off to sleep peacefully. Your parents are relieved and get some much-needed rest too."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 10)
					},
				},
				{
					Text:   "Cry until they stay up with you",
					Effect: Effect{Health: -5, Happiness: 3},
					Result: Static("Your parents take turns staying up with you. They're exhausted, but you get extra attention."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, -10)
						addTrait(env, "Brave")
					},
				},
				{
					Text:   "Wail at the top of your lungs for an hour",
					Effect: Effect{Health: -10, Happiness: -5},
					Result: Static("You scream until you're red in the face. Your parents try everything but nothing works."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, -20)
						addTrait(env, "Stubborn")
					},
				},
			},
		},
		{
			ID:            "first_words",
			Title:         "First Words",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 2, MaxAge: 3, MinSmarts: 5},
			Description:   Static("You are about to say your first word! What will it be?"),
			Choices: []Choice{
				{
					Text:   "\"Mama\"",
					Effect: Effect{Happiness: 10, Smarts: 5},
					Result: Static("Your mother is overjoyed! This strengthens your bond with her."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.AdjustLevelByStatus(25, life.StatusMom)
					},
				},
				{
					Text:   "\"Dada\"",
					Effect: Effect{Happiness: 10, Smarts: 5},
					Result: Static("Your father beams with pride! This strengthens your bond with him."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.AdjustLevelByStatus(25, life.StatusDad)
					},
				},
				{
					Text:   "\"No!\"",
					Effect: Effect{Happiness: 5, Smarts: 8},
					Result: Static("Your parents are surprised by your assertiveness! You're developing quite the personality."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Independent")
					},
				},
			},
		},
		{
			ID:            "sharing_is_caring",
			Title:         "Sharing is Caring",
			Type:          TypeSocial,
			Weight:        4,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 2, MaxAge: 4, MinHappiness: 20},
			Description:   Static("At daycare, another child asks to borrow your favorite toy. What do you do?"),
			Choices: []Choice{
				{
					Text:   "Share the toy",
					Effect: Effect{Happiness: 8, Smarts: 5},
					Result: Static("The other child is happy! You've made your first friend at daycare!"),
					OnSelect: func(env *Env, _ *EventData) {
						befriend(env, 20)
						addTrait(env, "Generous")
					},
				},
				{
					Text:   "Politely say no",
					Effect: Effect{Happiness: -2, Smarts: 3},
					Result: Static("You kept your toy but missed a chance to make a friend."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Reserved")
					},
				},
				{
					Text:   "Have a tantrum",
					Effect: Effect{Happiness: -5, Health: -2, Looks: -1},
					Result: Static("The teachers had to calm you down. Your parents were called."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Temperamental")
					},
				},
			},
		},
		{
			ID:            "school_play",
			Title:         "School Play Opportunity",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 4, MaxAge: 6, MinHappiness: 30, MinSmarts: 20},
			Description:   Static("Your preschool is putting on a play! The teacher asks if you want to participate."),
			Choices: []Choice{
				{
					Text:   "Enthusiastically join",
					Effect: Effect{Happiness: 10, Smarts: 5, Looks: 3},
					Result: Static("You had so much fun performing! Everyone loved your role as a dancing tree!"),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Outgoing")
						env.State.Relationships.Set(sameAgePerson(env), life.StatusFriend, 15)
						env.State.Relationships.Set(sameAgePerson(env), life.StatusFriend, 15)
					},
				},
				{
					Text:   "Nervously decline",
					Effect: Effect{Happiness: -3, Smarts: 2},
					Result: Static("You watched from the audience. Maybe next time you'll be braver."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Shy")
					},
				},
				{
					Text:   "Hide in the bathroom",
					Effect: Effect{Happiness: -5, Smarts: -2},
					Result: Static("The teacher found you eventually. Your anxiety about performing is noted."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Anxious")
						env.State.Stats.Happiness -= 5
						env.State.Stats.Clamp()
					},
				},
			},
		},
		{
			ID:            "imaginary_friend",
			Title:         "Imaginary Friend Appears",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 5, MaxAge: 10},
			Description: Generated(func(env *Env, data *EventData) string {
				names := []string{"Bloo", "Sparkles", "Mr. Whiskers", "Captain Awesome", "Fluffy", "Zap", "Bubbles"}
				name := names[env.Random.Index(len(names))]
				data.SetValue("friend_name", name)
				return fmt.Sprintf("You start spending a lot of time talking to your imaginary friend, %s. Your parents are amused but a little concerned.", name)
			}),
			Effect: Effect{Happiness: 15, Smarts: -3},
			Message: Generated(func(_ *Env, data *EventData) string {
				return fmt.Sprintf("%s becomes your constant companion, taking you on amazing adventures in your mind.", data.Value("friend_name"))
			}),
			OnTrigger: func(env *Env, _ *EventData) {
				addTrait(env, "Creative")
			},
		},
		{
			ID:            "first_day_school",
			Title:         "First Day of School Jitters",
			Type:          TypeEducation,
			Weight:        30,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 5, MaxAge: 6},
			Description:   Static("You feel nervous on your first day of school, avoiding eye contact and keeping to yourself. By the end of the day, you manage to say a few words to a classmate."),
			Effect:        Effect{Happiness: -5, Smarts: 5},
			Message:       Static("Despite your nervousness, you made it through your first day of school. This is a big milestone!"),
			OnTrigger: func(env *Env, _ *EventData) {
				env.State.Relationships.Set(sameAgePerson(env), life.StatusAcquaintance, 10)
				addTrait(env, "Developing Social Skills")
			},
		},
		{
			ID:            "bedtime_monster",
			Title:         "Bedtime Monster Panic",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 5, MaxAge: 10},
			Description:   Static("You wake up in the middle of the night convinced there's a monster under your bed. After hiding under the covers for what feels like hours, you finally fall back asleep."),
			Effect:        Effect{Happiness: -8, Health: -3},
			Message:       Static("The monster under your bed seemed so real! You're tired from lack of sleep the next day."),
			OnTrigger: func(env *Env, _ *EventData) {
				adjustFamilyLevels(env, 5)
				addTrait(env, "Fearful")
			},
		},
		{
			ID:            "lost_in_grocery_store",
			Title:         "Lost in the Grocery Store",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 5, MaxAge: 10},
			Description:   Static("While shopping with your parents, you look away for a second, and suddenly they're gone!"),
			Choices: []Choice{
				{
					Text:   "Stay calm and look for them.",
					Effect: Effect{Happiness: -3, Smarts: 5},
					Result: Static("You remain calm and walk through the aisles looking for your parents. After a few minutes, you find them looking worried."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 5)
					},
				},
				{
					Text:   "Ask a store employee for help.",
					Effect: Effect{Happiness: -2, Smarts: 10},
					Result: Static("You find a store employee and explain that you're lost. They make an announcement, and your parents quickly come to find you. They praise your maturity."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 15)
						addTrait(env, "Mature")
					},
				},
				{
					Text:   "Panic and start crying.",
					Effect: Effect{Happiness: -10, Health: -2},
					Result: Static("You burst into tears, attracting the attention of nearby shoppers. Your parents hear you crying and quickly find you."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 10)
						addTrait(env, "Fearful")
					},
				},
			},
		},
		{
			ID:            "school_prize",
			Title:         "Winning a School Prize",
			Type:          TypeEducation,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 6, MaxAge: 10, MinSmarts: 30},
			Description: Generated(func(env *Env, data *EventData) string {
				achievements := []string{
					"your creative writing story",
					"your science project",
					"your math skills",
					"your artwork",
					"your reading progress",
					"your kindness to others",
				}
				achievement := achievements[env.Random.Index(len(achievements))]
				data.SetValue("achievement", achievement)
				return fmt.Sprintf("You win a small award at school for %s! Your teacher praises you, and your parents proudly hang the certificate on the fridge.", achievement)
			}),
			Effect: Effect{Happiness: 20, Smarts: 10},
			Message: Generated(func(_ *Env, data *EventData) string {
				return fmt.Sprintf("Your achievement in %s has boosted your confidence and made your parents proud!", data.Value("achievement"))
			}),
			OnTrigger: func(env *Env, _ *EventData) {
				adjustFamilyLevels(env, 10)
				addTrait(env, "Accomplished")
			},
		},
		{
			ID:            "classroom_talent_show",
			Title:         "Classroom Talent Show",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 5, MaxAge: 12},
			Description:   Static("Your teacher announces a class talent show! Everyone is encouraged to perform something."),
			Choices: []Choice{
				{
					Text:   "Sing a song!",
					Effect: Effect{Happiness: 10, Looks: 5},
					Result: Generated(func(env *Env, data *EventData) string {
						if friend := data.Person("new_friend"); friend != nil {
							return fmt.Sprintf("Your singing impresses everyone! A classmate named %s compliments your performance, and you become friends.", friend.Name)
						}
						return "Your singing impresses everyone! You feel more confident after your performance."
					}),
					OnSelect: func(env *Env, data *EventData) {
						addTrait(env, "Confident")
						if env.Random.Percent(50) {
							data.SetPerson("new_friend", befriend(env, 25))
						}
					},
				},
				{
					Text:   "Do a silly dance!",
					Effect: Effect{Happiness: 15, Health: 3},
					Result: Generated(func(env *Env, data *EventData) string {
						if data.Value("teased") != "" {
							return "Your dance makes most people laugh, but a few kids tease you afterward. Still, you had fun!"
						}
						return "Your dance makes everyone laugh! You have a great time, though some kids might be laughing at you rather than with you."
					}),
					OnSelect: func(env *Env, data *EventData) {
						if env.Random.Percent(30) {
							data.SetValue("teased", "yes")
							env.State.Stats.Happiness -= 5
							env.State.Stats.Clamp()
						}
					},
				},
				{
					Text:   "Refuse to participate.",
					Effect: Effect{Happiness: -5},
					Result: Static("You sit out while everyone else performs. You feel a bit left out."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Shy")
					},
				},
			},
		},
		{
			ID:            "playground_trouble",
			Title:         "Trouble on the Playground",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 5, MaxAge: 12},
			Description:   Static("A bigger kid is pushing other students around on the playground. You witness them shoving a classmate to the ground."),
			Choices: []Choice{
				{
					Text:   "Stand up to them.",
					Effect: Effect{Happiness: 5, Health: -3},
					Result: Generated(func(env *Env, data *EventData) string {
						if friend := data.Person("new_friend"); friend != nil {
							return fmt.Sprintf("You bravely confront the bully. The kid who was pushed, %s, is grateful and becomes your friend.", friend.Name)
						}
						if data.Value("in_trouble") != "" {
							return "You stand up to the bully, but a teacher sees you arguing and you both get in trouble. Still, you feel good about doing the right thing."
						}
						return "You stand up to the bully, who backs down. The other kids look at you with newfound respect."
					}),
					OnSelect: func(env *Env, data *EventData) {
						addTrait(env, "Brave")
						if env.Random.Percent(50) {
							data.SetPerson("new_friend", befriend(env, 30))
						} else if env.Random.Percent(30) {
							data.SetValue("in_trouble", "yes")
						}
					},
				},
				{
					Text:   "Tell the teacher.",
					Effect: Effect{Happiness: 3},
					Result: Generated(func(env *Env, data *EventData) string {
						if data.Value("targeted") != "" {
							return "You tell the teacher, who stops the bullying. However, the bully figures out it was you who told and gives you mean looks."
						}
						return "You tell the teacher, who quickly intervenes. The bullied student gives you a grateful smile."
					}),
					OnSelect: func(env *Env, data *EventData) {
						addTrait(env, "Moral")
						if env.Random.Percent(20) {
							data.SetValue("targeted", "yes")
							env.State.Stats.Happiness -= 5
							env.State.Stats.Clamp()
						}
					},
				},
				{
					Text:   "Ignore it and keep playing.",
					Effect: Effect{},
					Result: Static("You pretend not to see and continue playing. You feel a little guilty, but at least you stayed out of trouble."),
					OnSelect: func(env *Env, _ *EventData) {
						addTrait(env, "Cautious")
					},
				},
			},
		},
		{
			ID:            "birthday_party_invite",
			Title:         "Birthday Party Invite",
			Type:          TypeSocial,
			Weight:        3,
			Repeatability: RepeatCooldown,
			CooldownYears: 2,
			Requirements:  Requirements{MinAge: 5, MaxAge: 12},
			Description:   Static("A classmate invites you to their birthday party, but you don't know them very well."),
			Choices: []Choice{
				{
					Text:   "Go and try to make new friends!",
					Effect: Effect{Happiness: 15},
					Result: Generated(func(env *Env, data *EventData) string {
						if friend := data.Person("new_friend"); friend != nil {
							return fmt.Sprintf("You have a great time at the party! You meet %s and become friends.", friend.Name)
						}
						return "You have a fun time at the party! The cake was delicious, and the games were exciting."
					}),
					OnSelect: func(env *Env, data *EventData) {
						addTrait(env, "Social")
						if env.Random.Percent(70) {
							data.SetPerson("new_friend", befriend(env, 20))
						}
					},
				},
				{
					Text:   "Politely decline.",
					Effect: Effect{},
					Result: Static("You politely tell your classmate you can't make it. They seem a little disappointed but understand."),
				},
				{
					Text:   "Tell your parents you don't want to go because you think it will be boring.",
					Effect: Effect{Happiness: -5},
					Result: Static("Your parents try to convince you to go, but you refuse. Later, you hear about how fun the party was and feel a bit left out."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.Set(sameAgePerson(env), life.StatusAcquaintance, -5)
					},
				},
			},
		},
		{
			ID:            "drawing_on_walls",
			Title:         "Drawing on the Walls",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 5, MaxAge: 8},
			Description:   Static("You get the urge to create a masterpiece… on the living room wall."),
			Choices: []Choice{
				{
					Text:   "Use paper instead!",
					Effect: Effect{Happiness: 5, Smarts: 5},
					Result: Static("You resist the temptation and draw on paper instead. Your parents praise your good decision."),
					OnSelect: func(env *Env, _ *EventData) {
						adjustFamilyLevels(env, 10)
						addTrait(env, "Creative")
					},
				},
				{
					Text:   "Do it and try to blame your sibling.",
					Effect: Effect{Happiness: 3, Smarts: -5},
					Result: Generated(func(env *Env, data *EventData) string {
						if sibling := data.Person("sibling"); sibling != nil {
							if data.Value("caught") != "" {
								return fmt.Sprintf("You draw on the wall and blame %s, but your parents don't believe you. You get in trouble for both drawing and lying.", sibling.Name)
							}
							return fmt.Sprintf("You draw on the wall and blame %s. They get in trouble, and you feel a mix of guilt and relief.", sibling.Name)
						}
						return "You draw on the wall and try to blame an imaginary sibling. Your parents are not amused by your creativity in this case."
					}),
					OnSelect: func(env *Env, data *EventData) {
						var sibling *life.Relationship
						for _, rel := range env.State.Relationships.ByStatus(life.StatusFamily) {
							if rel.Person.Age > 0 && rel.Person.Age < 18 {
								sibling = rel
								break
							}
						}
						if sibling == nil {
							adjustFamilyLevels(env, -20)
							return
						}
						data.SetPerson("sibling", sibling.Person)
						if env.Random.Percent(50) {
							data.SetValue("caught", "yes")
							env.State.Relationships.AdjustLevelByStatus(-15, life.StatusMom, life.StatusDad)
						} else {
							sibling.Level += 5
						}
					},
				},
				{
					Text:   "Go all out with crayons and markers!",
					Effect: Effect{Happiness: 10, Smarts: -3},
					Result: Static("Your wall masterpiece is impressive but short-lived. Your parents are not happy about the cleanup."),
					OnSelect: func(env *Env, _ *EventData) {
						env.State.Relationships.AdjustLevelByStatus(-25, life.StatusMom, life.StatusDad)
						if env.State.Money >= 50 {
							env.State.AdjustMoney(-50)
						}
						addTrait(env, "Artistic")
					},
				},
			},
		},
		{
			ID:            "paper_route",
			Title:         "Paper Route",
			Type:          TypeCareer,
			Weight:        3,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 6, MaxAge: 16, MinMoney: 100},
			Description:   Static("You get a paper route and earn $50 a week."),
			Choices: []Choice{
				{
					Text:   "Accept the paper route",
					Effect: Effect{Money: 2500},
					Result: Static("You earned $2,500 from your paper route. You're a paper route legend!"),
				},
			},
		},
		{
			ID:            "grandma_legacy",
			Title:         "Grandma's Legacy",
			Type:          TypeRandom,
			Weight:        3,
			Repeatability: RepeatOncePerGame,
			Requirements:  Requirements{MinAge: 2, MaxAge: 35, MaxMoney: 50000},
			Description:   Static("Your grandma died and left you $5,000."),
			Choices: []Choice{
				{
					Text:   "Invest it in the stock market",
					Effect: Effect{Money: 8000},
					Result: Static("You invested in the stock market and made $8,000."),
				},
				{
					Text:   "Donate it to charity in Grannies Honor",
					Effect: Effect{Happiness: 15, Health: 5},
					Result: Static("You donated the money to charity in Grannies Honor. You feel good about yourself."),
				},
				{
					Text:   "Buy a new car",
					Effect: Effect{},
					Result: Static("You bought a used car. Thanks Grandma!"),
				},
			},
		},
		{
			ID:            "spelling_bee",
			Title:         "Spelling Bee",
			Type:          TypeEducation,
			Weight:        2,
			Repeatability: RepeatCooldown,
			CooldownYears: 3,
			Requirements:  Requirements{MinAge: 6, MaxAge: 11, MinSmarts: 20},
			Description:   Static("You're participating in a spelling bee! Which of these words is spelled correctly?"),
			Choices: []Choice{
				{
					Text:   "Spell 'Antidisestablishmentarianism'",
					Effect: Effect{Smarts: 10, Happiness: 5},
					Result: Static("You spelled it correctly! Everyone is impressed by your vocabulary."),
				},
				{
					Text:   "Spell 'Floccinaucinihilipilification'",
					Effect: Effect{Smarts: -5, Happiness: -2},
					Result: Static("Oops, that's not quite right. Better luck next time!"),
				},
				{
					Text:   "Spell 'Pneumonoultramicroscopicsilicovolcanoconiosis'",
					Effect: Effect{Smarts: -5, Happiness: -2},
					Result: Static("That's a tough one! Don't worry, you'll get it next time."),
				},
			},
		},
		{
			ID:            "perfect_attendance",
			Title:         "Perfect Attendance",
			Type:          TypeEducation,
			Weight:        1,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 6, MaxAge: 11},
			Description:   Static("You've achieved perfect attendance this year!"),
			Effect:        Effect{Happiness: 10, Smarts: 5},
			Message:       Static("Your dedication to school is commendable. Keep it up!"),
		},
		{
			ID:            "travel_soccer",
			Title:         "Travel Soccer Team",
			Type:          TypeHealth,
			Weight:        2,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 6, MaxAge: 11, MinHealth: 30},
			Description:   Static("The travel soccer team is looking for new players. Do you want to join?"),
			Choices: []Choice{
				{
					Text:   "Join the team",
					Effect: Effect{Health: 10, Happiness: 10},
					Result: Static("You joined the team and made new friends while staying active!"),
					OnSelect: func(env *Env, _ *EventData) {
						befriend(env, 20)
					},
				},
				{
					Text:   "Focus on studies instead",
					Effect: Effect{Smarts: 5},
					Result: Static("You decided to focus on your studies. Your grades improved!"),
				},
			},
		},
		{
			ID:            "learn_bicycle",
			Title:         "Learn to Ride a Bicycle",
			Type:          TypeHealth,
			Weight:        1,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 6, MaxAge: 11},
			Description:   Static("You learned to ride a bicycle!"),
			Effect:        Effect{Happiness: 15, Health: 5},
			Message:       Static("Riding a bike is so much fun! You feel a sense of freedom."),
		},
		{
			ID:            "science_club",
			Title:         "School Science Club",
			Type:          TypeEducation,
			Weight:        2,
			Repeatability: RepeatOncePerLife,
			Requirements:  Requirements{MinAge: 6, MaxAge: 11, MinSmarts: 20},
			Description:   Static("The science club is looking for new members. Do you want to join?"),
			Choices: []Choice{
				{
					Text:   "Join the science club",
					Effect: Effect{Smarts: 10, Happiness: 5},
					Result: Static("You joined the science club and made a new friend!"),
					OnSelect: func(env *Env, _ *EventData) {
						befriend(env, 20)
					},
				},
				{
					Text:   "Not interested",
					Effect: Effect{Happiness: -2},
					Result: Static("You decided not to join the science club. Maybe next time!"),
				},
			},
		},
	}
}
