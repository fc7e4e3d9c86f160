// Package intent resolves a fixed set of conversational requests locally,
// before any call to the remote recommendation service. Matching is an
// ordered table of keyword rules evaluated top to bottom; the first rule
// that matches wins.
package intent

import "strings"

// Category identifies which local intent matched.
type Category string

const (
	CategoryLanguageChange Category = "language-change"
	CategoryCreator        Category = "creator"
	CategoryIdentity       Category = "identity"
	CategoryPurpose        Category = "purpose"
	CategoryGratitude      Category = "gratitude"
	CategoryGreeting       Category = "greeting"
	CategoryHowAreYou      Category = "how-are-you"
	CategoryFarewell       Category = "farewell"
)

type matchMode int

const (
	matchContains matchMode = iota
	matchPrefix
)

type rule struct {
	category Category
	mode     matchMode
	keywords []string
	response string
}

// rules is evaluated in priority order. A "change language" request outranks
// everything, so text containing both a language keyword and, say, a thanks
// keyword still reopens the language picker.
var rules = []rule{
	{
		category: CategoryLanguageChange,
		mode:     matchContains,
		keywords: []string{
			"change language", "update language", "select language",
			"change preference", "update preference",
			"choose new language", "pick different music",
		},
		// no canned response: the session state machine emits the
		// language-selection prompt and clears the gate instead
	},
	{
		category: CategoryCreator,
		mode:     matchContains,
		keywords: []string{
			"who built", "who created", "who developed", "who made",
			"your creator", "your developer", "prabjot singh", "prabjot",
		},
		response: "🌟 Sonic.AI was conceptualized and developed by Mr. Prabjot Singh, a visionary who believes in combining technology and art to support emotional well-being. His goal is to make music discovery a more intuitive and emotionally connected experience for everyone. 🎵",
	},
	{
		category: CategoryIdentity,
		mode:     matchContains,
		keywords: []string{"who are you", "what are you", "who r u", "introduce yourself"},
		response: "🎵 Hi! I'm SONIC.AI - your personal music companion! I use AI to understand your feelings and find the perfect songs to match your mood. My purpose is to enhance your emotional well-being through music. Just tell me how you're feeling, and let's 'Feel the Magic in Every Beat'! ✨",
	},
	{
		category: CategoryPurpose,
		mode:     matchContains,
		keywords: []string{
			"what is your purpose", "your purpose", "what do you do",
			"what can you do", "app purpose", "why were you created",
		},
		response: "🎯 My purpose is to enhance emotional well-being through the power of music. I achieve this by:\n\n🤖 Using advanced AI to understand the nuances of your mood.\n🎵 Curating personalized song recommendations to resonate with how you feel.\n💚 Creating a space where music can be a tool for relaxation, motivation, and reflection.\n\nUltimately, I'm here to make music discovery a more intuitive and emotionally connected experience. Feel the Magic in Every Beat! ✨",
	},
	{
		category: CategoryGratitude,
		mode:     matchContains,
		keywords: []string{"thank", "thanks", "appreciate"},
		response: "😊 You're welcome! I'm happy to help brighten your day with music! Keep feeling the magic in every beat! 🎵💫",
	},
	{
		// greetings match on prefix only so "hi" buried in a mood
		// sentence does not short-circuit a recommendation
		category: CategoryGreeting,
		mode:     matchPrefix,
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
		response: "Hello there! It's wonderful to see you. How are you feeling today? Tell me, and I'll find the perfect soundtrack for your moment.",
	},
	{
		category: CategoryHowAreYou,
		mode:     matchContains,
		keywords: []string{"how are you", "how's it going", "what's up", "hw r u"},
		response: "I'm doing wonderfully, thank you for asking! I'm here and ready to find the perfect music for you. How are you feeling right now?",
	},
	{
		category: CategoryFarewell,
		mode:     matchContains,
		keywords: []string{"bye", "goodbye", "see you", "cya", "take care"},
		response: "Goodbye for now! I hope the music brought you some joy. Feel free to return whenever you need a song for your mood. Take care! 🎵",
	},
}

// Result describes a matched local intent. Response is empty for
// CategoryLanguageChange, which is handled as a state transition rather
// than a canned reply.
type Result struct {
	Category Category
	Response string
}

// Match tests the user's raw text against the rule table. It returns the
// first matching category, or ok=false when the text should go to the
// remote recommendation service.
func Match(text string) (Result, bool) {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return Result{}, false
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			var hit bool
			switch r.mode {
			case matchPrefix:
				hit = strings.HasPrefix(input, kw)
			default:
				hit = strings.Contains(input, kw)
			}
			if hit {
				return Result{Category: r.category, Response: r.response}, true
			}
		}
	}
	return Result{}, false
}
