package models

// Category labels
const (
	CategoryFood          = "food"
	CategoryHealth        = "health"
	CategoryFashion       = "fashion"
	CategoryMotivation    = "motivation"
	CategoryEducation     = "education"
	CategoryComedy        = "comedy"
	CategoryEntertainment = "entertainment"
	CategoryGeneral       = "general"
)

// Classification is the outcome of category rule matching.
// Matched is false when no rule fired and Category fell back to "general".
type Classification struct {
	Category string `json:"category"`
	Matched  bool   `json:"matched"`
	Keyword  string `json:"keyword,omitempty"`
}

// ContentBundle holds the generated posting material
type ContentBundle struct {
	Hashtags     []string `json:"hashtags"`
	PostingTimes []string `json:"posting_times"`
	Caption      string   `json:"caption,omitempty"`
	Description  string   `json:"description,omitempty"`
	Keywords     string   `json:"keywords,omitempty"`
	Feedback     []string `json:"feedback"`
}
