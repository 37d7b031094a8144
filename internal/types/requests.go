package types

// RecipeSearchRequest is the body of POST /api/recipes. Ingredients is either
// a comma separated string or an array; decoding into any keeps both shapes.
type RecipeSearchRequest struct {
	Ingredients any `json:"ingredients"`
}

// SpeechRequest is the body of POST /api/tts.
type SpeechRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
	Format  string `json:"format"`
	Style   string `json:"style"`
}
