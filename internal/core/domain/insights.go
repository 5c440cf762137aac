package domain

// Read-only aggregate views served by the simulated data-fetch façade. The
// core does not own or validate these beyond carrying them to the caller.

// WellnessDimension is one axis of a student's wellness breakdown.
type WellnessDimension struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// WellnessReport aggregates a student's overall score and its dimensions.
type WellnessReport struct {
	Overall    int                 `json:"overall"`
	Dimensions []WellnessDimension `json:"dimensions"`
}

// Appointment is an upcoming booking shown on the student dashboard.
type Appointment struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Color    string `json:"color"`
}

// PlatformMetrics is the admin-facing usage snapshot.
type PlatformMetrics struct {
	ActiveStudents     int     `json:"active_students"`
	WeeklyActiveUsers  int     `json:"weekly_active_users"`
	AppointmentsToday  int     `json:"appointments_today"`
	AppointmentsMonth  int     `json:"appointments_month"`
	SatisfactionRate   int     `json:"satisfaction_rate"`
	AvgWellnessScore   float64 `json:"avg_wellness_score"`
	TotalEnrollments   int     `json:"total_enrollments"`
	ResourcesPublished int     `json:"resources_published"`
}

// UsagePoint is one week in the platform usage trend.
type UsagePoint struct {
	Week         string `json:"week"`
	Users        int    `json:"users"`
	Appointments int    `json:"appointments"`
}

// TopResource is one row in the most-viewed resources ranking.
type TopResource struct {
	Title    string   `json:"title"`
	Views    int      `json:"views"`
	Category Category `json:"category"`
	AvgTime  string   `json:"avg_time"`
}

// Announcement is a campus-wide notice managed by admins.
type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}
