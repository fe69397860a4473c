// Package request builds provider request payloads for each feature
// endpoint. Builders are pure: no I/O, fully deterministic for a given
// input, so the exact prompt and schema contract is unit-testable.
package request

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genai"

	"tripmate/internal/location"
	"tripmate/internal/travel"
)

// ErrLocationRequired is returned when a builder's location precondition
// is violated. No request may be issued in that case.
var ErrLocationRequired = errors.New("location is required")

// Style is the translation tone option.
type Style string

const (
	StyleNone     Style = ""
	StyleFormal   Style = "formal"
	StyleInformal Style = "informal"
)

// DefaultLensPrompt is used when the user asks nothing specific about
// the picked image.
const DefaultLensPrompt = "What is this? Describe what you see and identify its name if it's a known place."

// Request is a ready-to-send generate-content payload.
type Request struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// ImageRequest is a ready-to-send image-generation payload.
type ImageRequest struct {
	Model  string
	Prompt string
	Config *genai.GenerateImagesConfig
}

// formatCoord renders a coordinate the shortest way that round-trips,
// so prompts carry "48.8566" rather than "48.856600".
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// locationClause renders the fixed-format contextual clause. When the
// location is unknown the clause is omitted entirely; placeholder
// coordinates are never emitted.
func locationClause(loc *location.Info) string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("\nFor context, my current location is latitude: %s, longitude: %s.",
		formatCoord(loc.Latitude), formatCoord(loc.Longitude))
}

// HomeData builds the structured weather/tip/city request.
func HomeData(model string, loc *location.Info) (Request, error) {
	if loc == nil {
		return Request{}, ErrLocationRequired
	}
	prompt := fmt.Sprintf(
		"Based on the location latitude: %s, longitude: %s, provide the current weather, a useful travel tip for a tourist, and the city name.",
		formatCoord(loc.Latitude), formatCoord(loc.Longitude))

	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   homeDataSchema(),
		},
	}, nil
}

// Chat builds a streamed conversation turn. The new user content is
// appended after the supplied history; when an image is attached it is
// placed before the text part.
func Chat(model string, history []*genai.Content, prompt string, image *genai.Part, loc *location.Info) Request {
	parts := []*genai.Part{genai.NewPartFromText(prompt + locationClause(loc))}
	if image != nil {
		parts = append([]*genai.Part{image}, parts...)
	}

	contents := make([]*genai.Content, len(history)+1)
	copy(contents, history)
	contents[len(contents)-1] = genai.NewContentFromParts(parts, genai.RoleUser)

	return Request{Model: model, Contents: contents}
}

// TripPlan builds the structured day-plan request.
func TripPlan(model string, loc *location.Info, preferences string) (Request, error) {
	if loc == nil {
		return Request{}, ErrLocationRequired
	}
	prompt := fmt.Sprintf(
		"Create a detailed travel plan of duration based on user's number of days for a tourist from the city at latitude: %s, longitude: %s. "+
			"The tourist's preferences are: %q. The plan should include a title and a list of activities with time, description, and optional details "+
			"including the best mode of transport to the place if the user is not already at or very near to the location. "+
			"Write plain text only, no markup.",
		formatCoord(loc.Latitude), formatCoord(loc.Longitude), preferences)

	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   dayPlanSchema(),
		},
	}, nil
}

// summaryImageActivities is how many plan activities seed the collage.
const summaryImageActivities = 4

// SummaryImage builds the best-effort trip collage request from the
// first few activity descriptions of a received plan.
func SummaryImage(model string, plan *travel.DayPlan) ImageRequest {
	n := len(plan.Activities)
	if n > summaryImageActivities {
		n = summaryImageActivities
	}
	scenes := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			scenes += ", "
		}
		scenes += plan.Activities[i].Description
	}

	prompt := fmt.Sprintf(
		"Create a vibrant travel collage representing a trip titled %q. Include small, artistic scenes depicting: %s. "+
			"The style should be like a beautiful, modern travel scrapbook or a mood board.",
		plan.Title, scenes)

	return ImageRequest{
		Model:  model,
		Prompt: prompt,
		Config: &genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    "16:9",
		},
	}
}

// Analyze builds the image-analysis request. The image part always
// precedes the text part.
func Analyze(model string, prompt string, image *genai.Part, loc *location.Info) Request {
	parts := []*genai.Part{
		image,
		genai.NewPartFromText(prompt + locationClause(loc)),
	}
	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
	}
}

// Translate builds a plain-text translation request. An empty style
// omits the tone instruction.
func Translate(model string, text, targetLanguage string, style Style) Request {
	styleClause := ""
	if style != StyleNone {
		styleClause = fmt.Sprintf(" in a %s tone", style)
	}
	prompt := fmt.Sprintf(
		"Translate the following text to %s%s. Only return the translated text, with no extra formatting or explanations: %q",
		targetLanguage, styleClause, text)

	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
	}
}

// Speech builds a text-to-speech request for the given prebuilt voice.
// The response carries raw 24 kHz mono PCM samples.
func Speech(model, voice, text string) Request {
	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
				},
			},
		},
	}
}

// Emergency builds the structured local emergency info request. A
// missing location is a precondition violation, not a provider call.
func Emergency(model string, loc *location.Info) (Request, error) {
	if loc == nil {
		return Request{}, ErrLocationRequired
	}
	prompt := fmt.Sprintf(
		"For the location at latitude: %s, longitude: %s, provide the local emergency phone numbers for police, ambulance, and fire services. "+
			"Also, find the name and address of the nearest hospital.",
		formatCoord(loc.Latitude), formatCoord(loc.Longitude))

	return Request{
		Model:    model,
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   emergencyInfoSchema(),
		},
	}, nil
}
