package metrics

// Usage captures how much input a summarization run consumed and produced.
type Usage struct {
	Points    int `json:"points"`
	Weeks     int `json:"weeks"`
	Groups    int `json:"groups"`
	Summaries int `json:"summaries"`
}

// IsZero reports whether usage data is absent.
func (u Usage) IsZero() bool {
	return u.Points == 0 && u.Weeks == 0 && u.Groups == 0 && u.Summaries == 0
}

// Add merges two usage records, used when several metrics share one report.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		Points:    u.Points + other.Points,
		Weeks:     u.Weeks + other.Weeks,
		Groups:    u.Groups + other.Groups,
		Summaries: u.Summaries + other.Summaries,
	}
}
