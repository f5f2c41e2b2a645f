package traits

import "github.com/rcliao/companion/internal/text"

// indicators holds the disjoint high and low keyword lists for one trait.
type indicators struct {
	high text.Lexicon
	low  text.Lexicon
}

var traitIndicators = map[Trait]indicators{
	Openness: {
		high: text.NewLexicon(
			// creativity and imagination
			"creative", "imagine", "artistic", "innovative", "original",
			"abstract", "theoretical", "philosophical", "metaphor",
			"possibility", "potential", "explore", "discover",
			// intellectual curiosity
			"wonder", "curious", "fascinating", "intriguing", "complex",
			"analyze", "understand", "learn", "study", "research",
			// openness to experience
			"adventure", "travel", "culture", "different", "unique",
			"experiment", "try", "experience", "new", "novel",
		),
		low: text.NewLexicon(
			"traditional", "conventional", "normal", "standard", "typical",
			"practical", "realistic", "concrete", "simple", "basic",
			"always", "never", "same", "routine", "habit", "usual",
			"predictable", "stable", "consistent", "reliable",
		),
	},
	Conscientiousness: {
		high: text.NewLexicon(
			"organize", "plan", "schedule", "prepare", "arrange",
			"systematic", "methodical", "structured", "ordered",
			"goal", "achieve", "accomplish", "complete", "finish",
			"success", "work", "effort", "discipline", "focus",
			"responsible", "duty", "obligation", "commitment", "promise",
			"reliable", "dependable", "punctual", "thorough",
		),
		low: text.NewLexicon(
			"messy", "chaotic", "disorganized", "scattered", "random",
			"spontaneous", "impulsive", "careless", "lazy",
			"later", "tomorrow", "eventually", "postpone", "delay",
			"forget", "ignore", "skip", "avoid", "procrastinate",
		),
	},
	Extraversion: {
		high: text.NewLexicon(
			"people", "friends", "party", "social", "group", "team",
			"together", "meet", "talk", "chat", "conversation",
			"excited", "energetic", "enthusiastic", "confident", "bold",
			"outgoing", "talkative", "loud", "active", "lively",
			"lead", "direct", "manage", "control", "influence", "persuade",
		),
		low: text.NewLexicon(
			"quiet", "alone", "solitude", "private", "reserved", "shy",
			"introverted", "withdrawn", "isolated", "independent",
			"few", "small", "intimate", "close", "personal", "individual",
			"think", "reflect", "consider", "ponder", "contemplate",
		),
	},
	Agreeableness: {
		high: text.NewLexicon(
			"help", "support", "care", "kind", "compassionate", "empathy",
			"understanding", "sympathetic", "considerate", "thoughtful",
			"trust", "believe", "faith", "harmony", "peace", "cooperation",
			"agree", "compromise", "collaborate", "share", "give",
			"love", "like", "appreciate", "respect", "admire", "value",
		),
		low: text.NewLexicon(
			"compete", "win", "beat", "defeat", "superior", "better",
			"skeptical", "doubt", "suspicious", "distrust", "question",
			// "me", "my" and "i" never survive the length filter
			"myself", "my", "me", "i", "selfish", "independent",
			"wrong", "stupid", "annoying", "irritating", "hate", "dislike",
		),
	},
	Neuroticism: {
		high: text.NewLexicon(
			"anxious", "worried", "nervous", "stress", "tension", "fear",
			"panic", "overwhelmed", "pressure", "burden", "struggle",
			"sad", "depressed", "upset", "angry", "frustrated", "irritated",
			"disappointed", "hurt", "pain", "suffering", "miserable",
			"emotional", "sensitive", "moody", "unstable", "volatile",
			"dramatic", "intense", "extreme", "overreact",
		),
		low: text.NewLexicon(
			"calm", "relaxed", "peaceful", "stable", "steady", "balanced",
			"composed", "controlled", "even", "consistent", "secure",
			"happy", "content", "satisfied", "pleased", "comfortable",
			"confident", "optimistic", "positive", "cheerful", "joyful",
			"cope", "handle", "manage", "deal", "overcome", "resilient",
		),
	},
}

var (
	// Scored over tokens longer than two characters, so only "myself" and
	// "mine" ever count.
	firstPerson   = text.NewLexicon("i", "me", "my", "myself", "mine")
	positiveWords = text.NewLexicon(
		"good", "great", "awesome", "amazing", "wonderful", "excellent",
		"fantastic", "love", "like", "enjoy", "happy", "pleased",
	)
	negativeWords = text.NewLexicon(
		"bad", "terrible", "awful", "horrible", "hate", "dislike",
		"angry", "sad", "upset", "frustrated", "annoyed",
	)
)
