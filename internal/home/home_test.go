package home_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripmate/internal/client/clienttest"
	"tripmate/internal/home"
	"tripmate/internal/location"
	"tripmate/internal/travel"
)

var testLoc = &location.Info{Latitude: 48.8566, Longitude: 2.3522}

func TestLocationFixTriggersSingleFetch(t *testing.T) {
	stub := &clienttest.Stub{
		HomeDataFunc: func(ctx context.Context, loc *location.Info) (*travel.HomeData, error) {
			require.Equal(t, testLoc, loc)
			return &travel.HomeData{Weather: "Sunny, 22C", Tip: "Validate metro tickets.", City: "Paris"}, nil
		},
	}
	c := home.NewController(stub, nil)

	c.OnLocation(context.Background(), location.State{Location: testLoc})
	require.Eventually(t, func() bool { return !c.Snapshot().Loading },
		2*time.Second, 10*time.Millisecond)

	st := c.Snapshot()
	require.Equal(t, "Paris", st.Data.City)

	// Repeated notifications never refetch.
	c.OnLocation(context.Background(), location.State{Location: testLoc})
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, stub.Calls("HomeData"))
}

func TestPendingLocationIsIgnored(t *testing.T) {
	stub := &clienttest.Stub{}
	c := home.NewController(stub, nil)

	c.OnLocation(context.Background(), location.State{Loading: true})
	st := c.Snapshot()
	require.True(t, st.Loading)
	require.False(t, st.Unavailable)
	require.Zero(t, stub.Calls("HomeData"))
}

func TestFailedFixSettlesUnavailable(t *testing.T) {
	stub := &clienttest.Stub{}
	c := home.NewController(stub, nil)

	c.OnLocation(context.Background(), location.State{Err: errors.New("lookup failed")})

	st := c.Snapshot()
	require.False(t, st.Loading)
	require.True(t, st.Unavailable)
	require.Equal(t, "lookup failed", st.LocationErr)
	require.Zero(t, stub.Calls("HomeData"))
}

func TestFetchFailureSurfacesError(t *testing.T) {
	stub := &clienttest.Stub{
		HomeDataFunc: func(ctx context.Context, loc *location.Info) (*travel.HomeData, error) {
			return nil, errors.New("provider down")
		},
	}
	c := home.NewController(stub, nil)

	c.OnLocation(context.Background(), location.State{Location: testLoc})
	require.Eventually(t, func() bool { return !c.Snapshot().Loading },
		2*time.Second, 10*time.Millisecond)

	st := c.Snapshot()
	require.Nil(t, st.Data)
	require.NotEmpty(t, st.Err)
}
