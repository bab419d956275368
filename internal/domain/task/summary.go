package task

// Summary holds task counts per status and overall.
type Summary struct {
	ByStatus map[Status]int64
	Total    int64
}

// Reconciles reports whether the per-status counts add up to Total.
func (s Summary) Reconciles() bool {
	var sum int64
	for _, n := range s.ByStatus {
		sum += n
	}
	return sum == s.Total
}
