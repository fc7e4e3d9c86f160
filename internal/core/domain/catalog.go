package domain

// LanguageOptions is the picker catalog of music languages/industries. The
// label format is "Industry - Language"; the part after the separator is the
// display form used in selection summaries.
var LanguageOptions = []string{
	"Bollywood - Hindi",
	"Pollywood - Punjabi",
	"Hollywood - English",
	"Tollywood - Telugu",
	"Kollywood - Tamil",
	"Mollywood - Malayalam",
	"Sandalwood - Kannada",
	"K-Pop - Korean",
}

// QuickMoods are the one-tap mood shortcuts shown under the chat input.
var QuickMoods = []string{"happy", "sad", "romantic", "energetic", "calm"}

// MoodTheme carries the gradient pair the presentation layer uses to tint
// the page for a mood.
type MoodTheme struct {
	Gradient string `json:"gradient"`
	Primary  string `json:"primary"`
}

// MoodThemes maps every known mood to its theme. Unknown moods render with
// the neutral theme.
var MoodThemes = map[string]MoodTheme{
	"happy":       {Gradient: "from-yellow-400 via-orange-400 to-pink-500", Primary: "from-yellow-500 to-orange-500"},
	"sad":         {Gradient: "from-blue-400 via-indigo-400 to-purple-500", Primary: "from-blue-500 to-indigo-500"},
	"romantic":    {Gradient: "from-pink-400 via-rose-400 to-red-500", Primary: "from-pink-500 to-rose-500"},
	"energetic":   {Gradient: "from-orange-500 via-red-500 to-pink-600", Primary: "from-orange-500 to-red-500"},
	"stressed":    {Gradient: "from-indigo-400 via-purple-400 to-pink-500", Primary: "from-indigo-500 to-purple-500"},
	"anxious":     {Gradient: "from-violet-400 via-purple-500 to-fuchsia-500", Primary: "from-violet-500 to-purple-500"},
	"calm":        {Gradient: "from-green-400 via-teal-400 to-blue-500", Primary: "from-green-500 to-teal-500"},
	"angry":       {Gradient: "from-red-500 via-pink-500 to-purple-600", Primary: "from-red-500 to-pink-500"},
	"lonely":      {Gradient: "from-slate-400 via-gray-400 to-zinc-500", Primary: "from-slate-500 to-gray-500"},
	"tired":       {Gradient: "from-cyan-400 via-sky-400 to-blue-500", Primary: "from-cyan-500 to-sky-500"},
	"motivated":   {Gradient: "from-amber-500 via-orange-500 to-red-600", Primary: "from-amber-500 to-orange-500"},
	"peaceful":    {Gradient: "from-emerald-400 via-teal-400 to-cyan-500", Primary: "from-emerald-500 to-teal-500"},
	"excited":     {Gradient: "from-fuchsia-500 via-pink-500 to-rose-600", Primary: "from-fuchsia-500 to-pink-500"},
	"reflective":  {Gradient: "from-gray-400 via-cyan-400 to-blue-500", Primary: "from-gray-500 to-cyan-500"},
	"nostalgic":   {Gradient: "from-orange-300 via-amber-400 to-yellow-500", Primary: "from-orange-400 to-amber-400"},
	"adventurous": {Gradient: "from-lime-400 via-green-500 to-emerald-600", Primary: "from-lime-500 to-green-500"},
	"confused":    {Gradient: "from-slate-500 via-violet-500 to-indigo-600", Primary: "from-slate-500 to-violet-500"},
	"grateful":    {Gradient: "from-rose-300 via-pink-400 to-fuchsia-400", Primary: "from-rose-400 to-pink-400"},
	"hopeful":     {Gradient: "from-sky-300 via-cyan-300 to-teal-400", Primary: "from-sky-400 to-cyan-400"},
	"playful":     {Gradient: "from-fuchsia-400 via-pink-500 to-orange-400", Primary: "from-fuchsia-500 to-pink-500"},
	"proud":       {Gradient: "from-amber-400 via-yellow-400 to-orange-400", Primary: "from-amber-500 to-yellow-500"},
	"surprised":   {Gradient: "from-yellow-300 via-cyan-400 to-lime-400", Primary: "from-yellow-400 to-cyan-400"},
	"loved":       {Gradient: "from-red-500 via-rose-500 to-pink-500", Primary: "from-red-500 to-rose-500"},
	"neutral":     {Gradient: "from-purple-500 via-pink-500 to-orange-500", Primary: "from-purple-500 to-pink-500"},
}

// ThemeForMood returns the theme for a mood, defaulting to neutral.
func ThemeForMood(mood string) MoodTheme {
	if theme, ok := MoodThemes[mood]; ok {
		return theme
	}
	return MoodThemes[DefaultMood]
}
