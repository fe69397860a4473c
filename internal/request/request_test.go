package request

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"tripmate/internal/location"
	"tripmate/internal/travel"
)

var paris = &location.Info{Latitude: 48.8566, Longitude: 2.3522}

func TestLocationClauseFormat(t *testing.T) {
	got := locationClause(paris)
	require.Equal(t, "\nFor context, my current location is latitude: 48.8566, longitude: 2.3522.", got)
}

func TestLocationClauseOmittedWhenUnknown(t *testing.T) {
	require.Empty(t, locationClause(nil))
}

func TestFormatCoordShortestRoundTrip(t *testing.T) {
	require.Equal(t, "48.8566", formatCoord(48.8566))
	require.Equal(t, "0", formatCoord(0))
	require.Equal(t, "-73.98", formatCoord(-73.98))
}

func TestHomeDataRequiresLocation(t *testing.T) {
	_, err := HomeData("m", nil)
	require.ErrorIs(t, err, ErrLocationRequired)
}

func TestHomeDataStructuredOutput(t *testing.T) {
	req, err := HomeData("m", paris)
	require.NoError(t, err)
	require.Equal(t, "m", req.Model)
	require.Equal(t, "application/json", req.Config.ResponseMIMEType)
	require.ElementsMatch(t, []string{"weather", "tip", "city"}, req.Config.ResponseSchema.Required)

	text := req.Contents[0].Parts[0].Text
	require.Contains(t, text, "latitude: 48.8566, longitude: 2.3522")
}

func TestChatAppendsUserTurnWithLocation(t *testing.T) {
	history := []*genai.Content{
		genai.NewContentFromText("earlier question", genai.RoleUser),
		genai.NewContentFromText("earlier answer", genai.RoleModel),
	}

	req := Chat("m", history, "what should I see?", nil, paris)
	require.Len(t, req.Contents, 3)
	require.Same(t, history[0], req.Contents[0])
	require.Same(t, history[1], req.Contents[1])

	last := req.Contents[2]
	require.Equal(t, string(genai.RoleUser), string(last.Role))
	require.Equal(t, "what should I see?\nFor context, my current location is latitude: 48.8566, longitude: 2.3522.", last.Parts[0].Text)
}

func TestChatWithoutLocationSendsBarePrompt(t *testing.T) {
	req := Chat("m", nil, "hello", nil, nil)
	require.Equal(t, "hello", req.Contents[0].Parts[0].Text)
}

func TestChatImagePartPrecedesText(t *testing.T) {
	image := genai.NewPartFromBytes([]byte{1, 2, 3}, "image/png")
	req := Chat("m", nil, "what is this?", image, nil)

	parts := req.Contents[0].Parts
	require.Len(t, parts, 2)
	require.Same(t, image, parts[0])
	require.Equal(t, "what is this?", parts[1].Text)
}

func TestTripPlanRequiresLocation(t *testing.T) {
	_, err := TripPlan("m", nil, "museums")
	require.ErrorIs(t, err, ErrLocationRequired)
}

func TestTripPlanCarriesPreferencesAndSchema(t *testing.T) {
	req, err := TripPlan("m", paris, "museums and street food")
	require.NoError(t, err)

	text := req.Contents[0].Parts[0].Text
	require.Contains(t, text, `"museums and street food"`)
	require.Contains(t, text, "latitude: 48.8566, longitude: 2.3522")
	require.ElementsMatch(t, []string{"title", "activities"}, req.Config.ResponseSchema.Required)
}

func TestSummaryImageUsesFirstFourActivities(t *testing.T) {
	plan := &travel.DayPlan{
		Title: "A Day in Paris",
		Activities: []travel.Activity{
			{Description: "Louvre"}, {Description: "Seine walk"},
			{Description: "Le Marais lunch"}, {Description: "Eiffel Tower"},
			{Description: "never included"},
		},
	}

	req := SummaryImage("img", plan)
	require.Equal(t, "img", req.Model)
	require.Contains(t, req.Prompt, `"A Day in Paris"`)
	require.Contains(t, req.Prompt, "Louvre, Seine walk, Le Marais lunch, Eiffel Tower")
	require.NotContains(t, req.Prompt, "never included")
	require.Equal(t, int32(1), req.Config.NumberOfImages)
	require.Equal(t, "16:9", req.Config.AspectRatio)
}

func TestAnalyzeImageFirst(t *testing.T) {
	image := genai.NewPartFromBytes([]byte{9}, "image/jpeg")
	req := Analyze("m", DefaultLensPrompt, image, paris)

	parts := req.Contents[0].Parts
	require.Same(t, image, parts[0])
	require.Contains(t, parts[1].Text, DefaultLensPrompt)
	require.Contains(t, parts[1].Text, "For context, my current location is")
}

func TestTranslateStyleClause(t *testing.T) {
	formal := Translate("m", "hello", "Spanish", StyleFormal)
	require.Equal(t,
		`Translate the following text to Spanish in a formal tone. Only return the translated text, with no extra formatting or explanations: "hello"`,
		formal.Contents[0].Parts[0].Text)

	plain := Translate("m", "hello", "Spanish", StyleNone)
	require.Equal(t,
		`Translate the following text to Spanish. Only return the translated text, with no extra formatting or explanations: "hello"`,
		plain.Contents[0].Parts[0].Text)
}

func TestSpeechRequestsAudioModality(t *testing.T) {
	req := Speech("tts", "Kore", "hola")
	require.Equal(t, []string{"AUDIO"}, req.Config.ResponseModalities)
	require.Equal(t, "Kore", req.Config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
	require.Equal(t, "hola", req.Contents[0].Parts[0].Text)
}

func TestEmergencyRequiresLocation(t *testing.T) {
	_, err := Emergency("m", nil)
	require.ErrorIs(t, err, ErrLocationRequired)
}

func TestEmergencySchema(t *testing.T) {
	req, err := Emergency("m", paris)
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"police", "ambulance", "fire", "hospitalName", "hospitalAddress"},
		req.Config.ResponseSchema.Required)
}
