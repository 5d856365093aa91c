package store

// DayCount is one bucket of the weekday histogram.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// OverviewStats are the aggregate dashboard metrics derived from the query
// log history.
type OverviewStats struct {
	NumDocuments      int            `json:"num_documents"`
	NumChunks         int            `json:"num_chunks"`
	NumQuestions      int            `json:"num_questions"`
	GroundedRatio     float64        `json:"grounded_ratio"`
	ModeCounts        map[string]int `json:"mode_counts"`
	QuestionsOverTime []DayCount     `json:"questions_over_time"`
}

var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Overview computes the aggregate usage statistics on demand. With zero
// logged queries the grounded ratio is 0.0, never a division error.
func (s *Store) Overview() OverviewStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := OverviewStats{
		NumDocuments: len(s.documents),
		NumChunks:    len(s.chunks),
		NumQuestions: len(s.logs),
		ModeCounts:   make(map[string]int),
	}

	if len(s.logs) > 0 {
		grounded := 0
		for _, log := range s.logs {
			if log.Grounded {
				grounded++
			}
		}
		stats.GroundedRatio = float64(grounded) / float64(len(s.logs))
	}

	dayCounts := make(map[string]int)
	for _, log := range s.logs {
		stats.ModeCounts[log.Mode]++
		dayCounts[log.Timestamp.Format("Mon")]++
	}

	stats.QuestionsOverTime = make([]DayCount, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		stats.QuestionsOverTime = append(stats.QuestionsOverTime, DayCount{
			Day:   day,
			Count: dayCounts[day],
		})
	}

	return stats
}
