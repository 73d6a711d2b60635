package monitoring

// Stats is the JSON view of the running totals.
type Stats struct {
	Snapshot
	AvgLatencyMs  float64 `json:"avgLatencyMs"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// Snapshot returns a copy of the running totals.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Stats returns the running totals with derived averages.
func (m *Metrics) Stats() Stats {
	snap := m.Snapshot()
	stats := Stats{
		Snapshot:      snap,
		UptimeSeconds: m.Uptime().Seconds(),
	}
	if snap.TotalRequests > 0 {
		stats.AvgLatencyMs = snap.TotalDuration / float64(snap.TotalRequests) * 1000
	}
	return stats
}
