// Package travel defines the data model shared by the feature
// orchestrators and the provider client.
package travel

// HomeData is the structured summary shown on the home screen.
type HomeData struct {
	Weather string `json:"weather"`
	Tip     string `json:"tip"`
	City    string `json:"city"`
}

// Activity is a single entry in a day plan.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

// DayPlan is produced atomically by one plan request and treated as
// immutable once received.
type DayPlan struct {
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// EmergencyInfo holds local emergency contacts. No partial-field state
// is valid: either the full record decoded or the request failed.
type EmergencyInfo struct {
	Police          string `json:"police"`
	Ambulance       string `json:"ambulance"`
	Fire            string `json:"fire"`
	HospitalName    string `json:"hospitalName"`
	HospitalAddress string `json:"hospitalAddress"`
}
