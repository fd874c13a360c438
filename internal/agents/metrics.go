package agents

import "github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"

// MetricSpec names a metric and its inclusive range
type MetricSpec struct {
	Name string
	Min  int
	Max  int
}

var (
	classicMetrics = []MetricSpec{
		{Name: "Virality Score", Min: 60, Max: 100},
	}

	coreMetrics = []MetricSpec{
		{Name: "Hook Strength", Min: 50, Max: 100},
		{Name: "Visual Appeal", Min: 55, Max: 100},
		{Name: "Audio Quality", Min: 50, Max: 100},
		{Name: "Trend Alignment", Min: 40, Max: 100},
		{Name: "Shareability", Min: 50, Max: 100},
		{Name: "Overall Virality Score", Min: 60, Max: 100},
	}

	extendedMetrics = []MetricSpec{
		{Name: "Hook Strength", Min: 50, Max: 100},
		{Name: "Visual Appeal", Min: 55, Max: 100},
		{Name: "Audio Quality", Min: 50, Max: 100},
		{Name: "Pacing", Min: 45, Max: 100},
		{Name: "Caption Clarity", Min: 40, Max: 100},
		{Name: "Trend Alignment", Min: 40, Max: 100},
		{Name: "Shareability", Min: 50, Max: 100},
		{Name: "Overall Virality Score", Min: 65, Max: 100},
	}
)

// MetricsGenerator samples every metric independently. No correlation
// between metrics is computed.
type MetricsGenerator struct {
	rng RandomSource
}

func NewMetricsGenerator(rng RandomSource) *MetricsGenerator {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &MetricsGenerator{rng: rng}
}

func (g *MetricsGenerator) Generate(specs []MetricSpec) models.MetricSet {
	set := make(models.MetricSet, 0, len(specs))
	for _, spec := range specs {
		set = append(set, models.Metric{
			Name:  spec.Name,
			Value: between(g.rng, spec.Min, spec.Max),
			Min:   spec.Min,
			Max:   spec.Max,
		})
	}
	return set
}
