// ABOUTME: Narrator voice catalog
// ABOUTME: Curated prebuilt voices offered in the setup screen
package speech

// Voice is one selectable narrator.
type Voice struct {
	Name        string
	Description string
}

// DefaultVoice is used when no selection is made.
const DefaultVoice = "Kore"

// Voices lists the offered narrators in display order.
var Voices = []Voice{
	{Name: "Kore", Description: "firm, neutral"},
	{Name: "Puck", Description: "upbeat"},
	{Name: "Charon", Description: "informative"},
	{Name: "Fenrir", Description: "excitable"},
	{Name: "Aoede", Description: "breezy"},
}

// VoiceNames returns just the selectable names.
func VoiceNames() []string {
	names := make([]string, len(Voices))
	for i, v := range Voices {
		names[i] = v.Name
	}
	return names
}
