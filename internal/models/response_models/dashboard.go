package response_models

// DashboardReport is the aggregate block for the landing page, computed
// under the acting user's scope.
type DashboardReport struct {
	TotalMembers      int64   `json:"total_members"`
	ActiveMembers     int64   `json:"active_members"`
	InactiveMembers   int64   `json:"inactive_members"`
	NewMembers30Days  int64   `json:"new_members_30_days"`
	Camps             int64   `json:"camps"`
	UpcomingEvents    int64   `json:"upcoming_events"`
	OpenFollowUps     int64   `json:"open_follow_ups"`
	OverdueFollowUps  int64   `json:"overdue_follow_ups"`
	AttendanceRate4Wk float64 `json:"attendance_rate_4wk"`
}
