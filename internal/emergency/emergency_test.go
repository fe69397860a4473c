package emergency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripmate/internal/client/clienttest"
	"tripmate/internal/emergency"
	"tripmate/internal/location"
	"tripmate/internal/request"
	"tripmate/internal/travel"
)

var testLoc = &location.Info{Latitude: 41.9028, Longitude: 12.4964}

func testInfo() *travel.EmergencyInfo {
	return &travel.EmergencyInfo{
		Police:          "113",
		Ambulance:       "118",
		Fire:            "115",
		HospitalName:    "Policlinico Umberto I",
		HospitalAddress: "Viale del Policlinico 155, Rome",
	}
}

func TestFetchInfoWithoutLocationIssuesNoCall(t *testing.T) {
	stub := &clienttest.Stub{}
	c := emergency.NewController(stub, nil, "+15550100", nil, nil)

	require.False(t, c.FetchInfo(context.Background()))
	require.NotEmpty(t, c.Snapshot().InfoErr)
	require.Zero(t, stub.Calls("EmergencyInfo"))
}

func TestFetchInfoPopulatesRecord(t *testing.T) {
	stub := &clienttest.Stub{
		EmergencyInfoFunc: func(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error) {
			require.Equal(t, testLoc, loc)
			return testInfo(), nil
		},
	}
	c := emergency.NewController(stub, func() *location.Info { return testLoc }, "+15550100", nil, nil)

	require.True(t, c.FetchInfo(context.Background()))
	require.Eventually(t, func() bool {
		st := c.Snapshot()
		return !st.LoadingInfo && st.Info != nil
	}, 2*time.Second, 10*time.Millisecond)

	st := c.Snapshot()
	require.Equal(t, "113", st.Info.Police)
	require.Empty(t, st.InfoErr)
}

func TestFetchInfoBusyGate(t *testing.T) {
	release := make(chan struct{})
	stub := &clienttest.Stub{
		EmergencyInfoFunc: func(ctx context.Context, loc *location.Info) (*travel.EmergencyInfo, error) {
			<-release
			return testInfo(), nil
		},
	}
	c := emergency.NewController(stub, func() *location.Info { return testLoc }, "+15550100", nil, nil)

	require.True(t, c.FetchInfo(context.Background()))
	require.False(t, c.FetchInfo(context.Background()))

	close(release)
	require.Eventually(t, func() bool { return !c.Snapshot().LoadingInfo },
		2*time.Second, 10*time.Millisecond)
	require.Equal(t, 1, stub.Calls("EmergencyInfo"))
}

func TestTranslatePhraseShowsOriginalAndTranslation(t *testing.T) {
	stub := &clienttest.Stub{
		TranslateFunc: func(ctx context.Context, text, lang string, style request.Style) (string, error) {
			require.Equal(t, "I need help.", text)
			require.Equal(t, request.StyleNone, style)
			return "Ho bisogno di aiuto.", nil
		},
	}
	c := emergency.NewController(stub, func() *location.Info { return testLoc }, "+15550100", nil, nil)

	require.True(t, c.TranslatePhrase(context.Background(), "I need help."))
	require.Eventually(t, func() bool { return !c.Snapshot().Translating },
		2*time.Second, 10*time.Millisecond)

	got := c.Snapshot().TranslatedPhrase
	require.Contains(t, got, `"I need help."`)
	require.Contains(t, got, "Ho bisogno di aiuto.")
}

func TestTranslatePhraseFailure(t *testing.T) {
	stub := &clienttest.Stub{
		TranslateFunc: func(ctx context.Context, text, lang string, style request.Style) (string, error) {
			return "", errors.New("provider down")
		},
	}
	c := emergency.NewController(stub, func() *location.Info { return testLoc }, "+15550100", nil, nil)

	require.True(t, c.TranslatePhrase(context.Background(), emergency.Phrases[0]))
	require.Eventually(t, func() bool { return !c.Snapshot().Translating },
		2*time.Second, 10*time.Millisecond)
	require.Equal(t, "Translation failed.", c.Snapshot().TranslatedPhrase)
}

func TestCallDialsHelpline(t *testing.T) {
	var dialed string
	c := emergency.NewController(&clienttest.Stub{}, nil, "+16199600598",
		func(number string) error {
			dialed = number
			return nil
		}, nil)

	require.NoError(t, c.Call())
	require.Equal(t, "+16199600598", dialed)
}
