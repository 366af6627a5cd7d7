package entity

// Insight is a single actionable business observation produced by the
// insight generator.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high | medium | low
	Icon        string `json:"icon"`
}

// InsightReport bundles the generated insights for the dashboard.
type InsightReport struct {
	Insights []Insight `json:"insights"`
}
