package handler

import "math/rand"

// scienceFacts feeds the landing-page banner; one is picked per request.
var scienceFacts = []string{
	"Quantum particles can be in multiple states simultaneously until observed (superposition).",
	"The human brain contains approximately 86 billion neurons connected by trillions of synapses.",
	"DNA from a single human cell would be about 2 meters long if stretched end-to-end.",
	"The Earth's inner core is as hot as the surface of the sun (about 5700 K).",
	"There are more trees on Earth than stars in the Milky Way galaxy (3 trillion vs 100-400 billion).",
	"The Great Red Spot on Jupiter has been raging for at least 400 years.",
	"A teaspoon of neutron star material would weigh about 6 billion tons.",
	"Plants can communicate with each other through underground fungal networks.",
	"The human body contains about 0.2 milligrams of gold, mostly in the blood.",
	"Light takes approximately 8 minutes and 20 seconds to travel from the Sun to Earth.",
	"There are more possible iterations of a game of chess than atoms in the observable universe.",
	"The smell of fresh rain (petrichor) comes from bacteria in the soil.",
	"A single lightning bolt contains enough energy to toast 100,000 slices of bread.",
	"The Moon is slowly moving away from Earth at about 3.8 cm per year.",
	"Water can exist in at least 18 different solid phases (types of ice).",
	"The average cloud weighs about 1.1 million pounds (500,000 kg).",
	"Your stomach produces a new lining every 3-4 days to prevent digesting itself.",
	"A day on Venus is longer than a year on Venus (243 vs 225 Earth days).",
	"The deepest part of the ocean (Mariana Trench) is deeper than Mount Everest is tall.",
	"The placebo effect can trigger real physiological healing responses in the body.",
	"A single human chromosome may contain over 500 million base pairs of DNA.",
	"The universe has no center - every point is expanding away from every other point.",
}

func randomFact() string {
	return scienceFacts[rand.Intn(len(scienceFacts))]
}
