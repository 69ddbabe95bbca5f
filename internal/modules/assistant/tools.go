package assistant

// ToolDescriptor describes one callable tool to a language-model client.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

const (
	ToolGetRecommendedItinerary = "get_recommended_itinerary"
	ToolListAvailableDurations  = "list_available_durations"
)

// Tools is the read-only registry exposed at GET /assistant/tools.
var Tools = []ToolDescriptor{
	{
		Name:        ToolGetRecommendedItinerary,
		Description: "Get a recommended itinerary for the specified number of nights (2-8). Falls back to any recommended itinerary when no exact match exists.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"nights": map[string]any{
					"type":        "integer",
					"description": "Number of nights for the trip (2-8)",
				},
			},
			"required": []string{"nights"},
		},
	},
	{
		Name:        ToolListAvailableDurations,
		Description: "List all night durations that have a recommended itinerary.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	},
}
