package models

// Metric is one randomized score with its inclusive range
type Metric struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// MetricSet keeps metrics in display order
type MetricSet []Metric

// Value returns the value of the named metric
func (m MetricSet) Value(name string) (int, bool) {
	for _, metric := range m {
		if metric.Name == name {
			return metric.Value, true
		}
	}
	return 0, false
}

// Names returns metric names in order
func (m MetricSet) Names() []string {
	names := make([]string, 0, len(m))
	for _, metric := range m {
		names = append(names, metric.Name)
	}
	return names
}
