package server

import dto "github.com/prometheus/client_model/go"

// LookupCount returns the cumulative number of lookups with the given
// result ("hit" or "miss").
func (m *Metrics) LookupCount(result string) float64 {
	pb := &dto.Metric{}
	if err := m.lookups.WithLabelValues(result).Write(pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}
