package trace

// History collects generation records in the order they finish.
type History struct {
	Seed    int64              `json:"seed"`
	Records []GenerationRecord `json:"records"`
}

// NewHistory creates an empty History for a run seeded with seed.
func NewHistory(seed int64) *History {
	return &History{
		Seed:    seed,
		Records: make([]GenerationRecord, 0),
	}
}

// Record appends a generation record.
func (h *History) Record(r GenerationRecord) {
	h.Records = append(h.Records, r)
}

// Ticks returns the tick counts of all records as float64, for statistics
// and plotting.
func (h *History) Ticks() []float64 {
	out := make([]float64, len(h.Records))
	for i, r := range h.Records {
		out[i] = float64(r.Ticks)
	}
	return out
}
