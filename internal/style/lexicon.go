package style

import "github.com/rcliao/companion/internal/text"

var (
	sophisticatedWords = text.NewLexicon(
		"analyze", "synthesize", "conceptualize", "methodology", "paradigm",
		"hypothesis", "empirical", "theoretical", "philosophical", "psychological",
		"furthermore", "consequently", "nevertheless", "moreover", "therefore",
	)

	excitementWords  = text.NewLexicon("amazing", "awesome", "incredible", "fantastic", "wow", "omg")
	enthusiasmWords  = text.NewLexicon("love", "excited", "can't wait", "looking forward", "thrilled")
	concernWords     = text.NewLexicon("worried", "concerned", "anxious", "nervous", "unsure", "confused")
	affectionWords   = text.NewLexicon("love", "care", "appreciate", "grateful", "thankful", "sweet")
	frustrationWords = text.NewLexicon("frustrated", "annoying", "irritating", "ugh", "seriously", "ridiculous")

	sarcasmWords   = text.NewLexicon("obviously", "clearly", "sure", "right", "totally", "absolutely")
	sarcasmPhrases = []string{"oh great", "just perfect", "how wonderful", "that's just"}

	selfDeprecatingWords = text.NewLexicon("stupid", "dumb", "idiot", "fail", "mess", "disaster")
	humorFirstPerson     = text.NewLexicon("i", "me", "my", "myself")
	laughterMarkers      = []string{"😄", "😂", "🤣", "😆", "lol", "haha"}

	sarcasmIndicators = text.NewLexicon(
		"obviously", "clearly", "sure", "right", "totally", "absolutely",
		"perfect", "wonderful", "great", "fantastic", "amazing",
	)
	sarcasmPositive = text.NewLexicon("great", "perfect", "wonderful", "amazing", "fantastic")
	negations       = text.NewLexicon("not", "never", "can't", "won't", "don't", "isn't", "aren't")

	formalWords = text.NewLexicon(
		"please", "thank you", "would", "could", "should", "might",
		"perhaps", "possibly", "certainly", "indeed", "furthermore",
		"however", "therefore", "consequently",
	)
	informalWords = text.NewLexicon(
		"gonna", "wanna", "gotta", "yeah", "yep", "nope", "ok", "okay",
		"cool", "awesome", "dude", "guys", "stuff", "things", "kinda",
		"sorta", "pretty", "really", "super", "totally",
	)
	contractions = text.NewLexicon(
		"don't", "can't", "won't", "isn't", "aren't", "wasn't",
		"weren't", "haven't", "hasn't", "hadn't",
	)

	yesNoStarters = text.NewLexicon(
		"do", "does", "did", "is", "are", "was", "were",
		"can", "could", "will", "would", "should",
	)
	whWords           = text.NewLexicon("what", "how", "why", "when", "where", "who")
	rhetoricalPhrases = []string{"right?", "you know?", "don't you think?"}

	// "i" never survives Tokenize.
	firstPersonWords  = text.NewLexicon("i", "me", "my", "myself", "mine")
	secondPersonWords = text.NewLexicon("you", "your", "yours", "yourself")
	thirdPersonWords  = text.NewLexicon("he", "she", "they", "them", "his", "her", "their")
)

// topic is a named category with its keyword list.
type topic struct {
	name     string
	keywords text.Lexicon
}

// Topic categories in reporting order.
var topics = []topic{
	{"technology", text.NewLexicon("computer", "software", "app", "tech", "digital", "online", "internet", "ai", "programming")},
	{"work", text.NewLexicon("job", "work", "career", "office", "business", "meeting", "project", "deadline")},
	{"relationships", text.NewLexicon("friend", "family", "relationship", "dating", "marriage", "love", "partner")},
	{"hobbies", text.NewLexicon("music", "movie", "book", "game", "sport", "art", "cooking", "travel")},
	{"health", text.NewLexicon("health", "exercise", "diet", "sleep", "stress", "mental", "physical")},
	{"education", text.NewLexicon("school", "college", "university", "study", "learn", "class", "degree")},
}
