package get_dashboard_stats

// Response carries the manager dashboard counters. Counts cover
// non-cancelled appointments only; OccupancyRate is today's count as a
// rounded percentage of the active slot catalog.
type Response struct {
	TodayCount    int
	WeekCount     int
	MonthCount    int
	OccupancyRate int
}
