package travel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeDataValidate(t *testing.T) {
	full := HomeData{Weather: "Sunny", Tip: "Carry cash.", City: "Rome"}
	require.NoError(t, full.Validate())

	missing := HomeData{Weather: "Sunny", City: "Rome"}
	err := missing.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `"tip"`)
}

func TestDayPlanValidate(t *testing.T) {
	full := DayPlan{
		Title:      "A Day in Rome",
		Activities: []Activity{{Time: "09:00", Description: "Colosseum"}},
	}
	require.NoError(t, full.Validate())

	require.Error(t, (&DayPlan{Activities: []Activity{}}).Validate())
	require.Error(t, (&DayPlan{Title: "x"}).Validate())

	// An empty activity list is still a valid plan shape.
	require.NoError(t, (&DayPlan{Title: "x", Activities: []Activity{}}).Validate())

	bad := DayPlan{Title: "x", Activities: []Activity{{Description: "no time"}}}
	err := bad.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `"time"`)
}

func TestEmergencyInfoValidate(t *testing.T) {
	full := EmergencyInfo{
		Police: "113", Ambulance: "118", Fire: "115",
		HospitalName: "Policlinico", HospitalAddress: "Rome",
	}
	require.NoError(t, full.Validate())

	missing := full
	missing.HospitalAddress = ""
	err := missing.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `"hospitalAddress"`)
}
