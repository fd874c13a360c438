package models

import "time"

// Analysis is the full result of one analysis request.
// Engagement and BestPostTime are only set by the classic profile.
type Analysis struct {
	ID             string         `json:"id"`
	Profile        string         `json:"profile"`
	SourceFilename string         `json:"source_filename"`
	Transcript     string         `json:"transcript,omitempty"`
	Topic          string         `json:"topic"`
	Classification Classification `json:"classification"`
	Metrics        MetricSet      `json:"metrics"`
	Content        ContentBundle  `json:"content"`
	Engagement     string         `json:"engagement,omitempty"`
	BestPostTime   string         `json:"best_post_time,omitempty"`
	NextSlots      []time.Time    `json:"next_slots,omitempty"`
	ReportTitle    string         `json:"report_title"`
	ReportFilename string         `json:"report_filename"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewAnalysis creates an analysis shell for a source file
func NewAnalysis(profile, filename string) *Analysis {
	return &Analysis{
		Profile:        profile,
		SourceFilename: filename,
		Topic:          "general",
		Classification: Classification{Category: CategoryGeneral},
		Metrics:        MetricSet{},
		CreatedAt:      time.Now(),
	}
}

// Category returns the classified category label
func (a *Analysis) Category() string {
	return a.Classification.Category
}
