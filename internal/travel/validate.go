package travel

import "fmt"

// The provider declares required fields on every structured request, so
// a hole in a decoded record means the response is unusable. Validation
// failures surface as feature-level errors, never partial records.

// Validate reports the first missing required field.
func (h *HomeData) Validate() error {
	switch {
	case h.Weather == "":
		return fmt.Errorf("home data missing required field %q", "weather")
	case h.Tip == "":
		return fmt.Errorf("home data missing required field %q", "tip")
	case h.City == "":
		return fmt.Errorf("home data missing required field %q", "city")
	}
	return nil
}

// Validate reports the first missing required field.
func (p *DayPlan) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("day plan missing required field %q", "title")
	}
	if p.Activities == nil {
		return fmt.Errorf("day plan missing required field %q", "activities")
	}
	for i, a := range p.Activities {
		if a.Time == "" {
			return fmt.Errorf("day plan activity %d missing required field %q", i, "time")
		}
		if a.Description == "" {
			return fmt.Errorf("day plan activity %d missing required field %q", i, "description")
		}
	}
	return nil
}

// Validate reports the first missing required field.
func (e *EmergencyInfo) Validate() error {
	fields := map[string]string{
		"police":          e.Police,
		"ambulance":       e.Ambulance,
		"fire":            e.Fire,
		"hospitalName":    e.HospitalName,
		"hospitalAddress": e.HospitalAddress,
	}
	for _, name := range []string{"police", "ambulance", "fire", "hospitalName", "hospitalAddress"} {
		if fields[name] == "" {
			return fmt.Errorf("emergency info missing required field %q", name)
		}
	}
	return nil
}
