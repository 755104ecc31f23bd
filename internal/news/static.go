package news

import "context"

// defaultHeadlines is the built-in sample feed used when no headline
// list is configured. Stands in for a real news integration.
var defaultHeadlines = []string{
	"Cardano Surges After Positive Development Updates",
	"Experts Warn Of Possible Correction in Cardano",
	"Major Financial Institution to Begin Holding ADA Reserves",
	"Bearish Signals Emerge Despite Cardano's Strong Performance",
	"Investors Show Growing Interest in Cardano's Future",
}

// StaticSource serves a fixed, ordered headline list.
type StaticSource struct {
	headlines []string
}

// NewStaticSource creates a static source. With an empty list it falls
// back to the built-in sample headlines.
func NewStaticSource(headlines []string) *StaticSource {
	if len(headlines) == 0 {
		headlines = defaultHeadlines
	}
	return &StaticSource{headlines: headlines}
}

// Headlines returns up to limit headlines in their configured order.
// The query is ignored; a static list has nothing to search.
func (s *StaticSource) Headlines(_ context.Context, _ string, limit int) ([]string, error) {
	n := len(s.headlines)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, n)
	copy(out, s.headlines[:n])
	return out, nil
}
