package request

import "google.golang.org/genai"

// Structured output schemas. Declaring the schema on the request
// guarantees the response is parseable; a missing required field in a
// response is a decode failure at the client boundary.

func homeDataSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"weather": {
				Type:        genai.TypeString,
				Description: "A brief description of the current weather.",
			},
			"tip": {
				Type:        genai.TypeString,
				Description: "A useful travel tip for a tourist in this location.",
			},
			"city": {
				Type:        genai.TypeString,
				Description: "The name of the city for the given coordinates.",
			},
		},
		Required: []string{"weather", "tip", "city"},
	}
}

func dayPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"activities": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"time":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"details":     {Type: genai.TypeString},
					},
					Required: []string{"time", "description"},
				},
			},
		},
		Required: []string{"title", "activities"},
	}
}

func emergencyInfoSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"police":          {Type: genai.TypeString},
			"ambulance":       {Type: genai.TypeString},
			"fire":            {Type: genai.TypeString},
			"hospitalName":    {Type: genai.TypeString},
			"hospitalAddress": {Type: genai.TypeString},
		},
		Required: []string{"police", "ambulance", "fire", "hospitalName", "hospitalAddress"},
	}
}
