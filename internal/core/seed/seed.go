// Package seed holds the demo dataset the portal boots with: two credential
// records, the resource library, the program catalog, and the fixture payloads
// behind the simulated data-fetch façade. Test fixtures depend on these exact
// values.
package seed

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/vitality-edu/wellness-hub/internal/core/domain"
)

// Identities returns the seeded credential table: one student and one admin.
// Passwords (student123 / admin123) are hashed at call time so plaintext never
// lives in a record.
func Identities() ([]*domain.Identity, error) {
	studentHash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []*domain.Identity{
		{
			ID:            "stu-001",
			Name:          "Jordan Smith",
			Email:         "student@vitality.edu",
			PasswordHash:  string(studentHash),
			Role:          domain.RoleStudent,
			Avatar:        "JS",
			JoinDate:      "2024-09-01",
			WellnessScore: 70,
			Enrolled:      []string{"prog-003"},
		},
		{
			ID:           "adm-001",
			Name:         "Dr. Admin Park",
			Email:        "admin@vitality.edu",
			PasswordHash: string(adminHash),
			Role:         domain.RoleAdmin,
			Avatar:       "AP",
			JoinDate:     "2023-01-15",
		},
	}, nil
}

// Resources returns the nine seeded library items.
func Resources() []*domain.Resource {
	return []*domain.Resource{
		{ID: "res-001", Emoji: "🧠", Title: "Understanding Anxiety in College", Category: domain.CategoryMentalHealth, ReadTime: "5 min", Description: "Evidence-based strategies to recognize and manage academic anxiety before it escalates.", Author: "Dr. Sarah Park", Date: "2024-12-10", Views: 1240, Status: domain.ResourceActive},
		{ID: "res-002", Emoji: "🍎", Title: "Eating Well on a Student Budget", Category: domain.CategoryNutrition, ReadTime: "7 min", Description: "Simple, affordable meal ideas to fuel your brain and body throughout the semester.", Author: "Dietitian Chen", Date: "2024-11-22", Views: 892, Status: domain.ResourceActive},
		{ID: "res-003", Emoji: "💪", Title: "15-Minute Dorm Room Workouts", Category: domain.CategoryFitness, ReadTime: "4 min", Description: "No equipment needed. Science-backed micro-workouts that actually fit your schedule.", Author: "Coach Marcus", Date: "2025-01-05", Views: 764, Status: domain.ResourceActive},
		{ID: "res-004", Emoji: "🌙", Title: "Sleep Hygiene for Exam Season", Category: domain.CategoryWellness, ReadTime: "6 min", Description: "How to protect your sleep even when deadlines loom and stress peaks.", Author: "Dr. Patel", Date: "2025-01-18", Views: 583, Status: domain.ResourceActive},
		{ID: "res-005", Emoji: "🤝", Title: "Building Social Connections on Campus", Category: domain.CategoryMentalHealth, ReadTime: "8 min", Description: "Loneliness is common. Here's how to build meaningful relationships from scratch.", Author: "Counseling Team", Date: "2024-10-30", Views: 421, Status: domain.ResourceActive},
		{ID: "res-006", Emoji: "🌿", Title: "Nature & Mental Well-being", Category: domain.CategoryWellness, ReadTime: "5 min", Description: "The science behind green spaces and why stepping outside matters for your health.", Author: "Dr. Rivera", Date: "2024-12-01", Views: 340, Status: domain.ResourceActive},
		{ID: "res-007", Emoji: "📚", Title: "Managing Academic Stress Effectively", Category: domain.CategoryMentalHealth, ReadTime: "9 min", Description: "Practical frameworks for balancing workload without burning out.", Author: "Dr. Sarah Park", Date: "2025-02-01", Views: 2100, Status: domain.ResourceActive},
		{ID: "res-008", Emoji: "🏊", Title: "Swimming & Aquatic Wellness", Category: domain.CategoryFitness, ReadTime: "5 min", Description: "Benefits of swimming for mental and physical health - plus how to access the campus pool.", Author: "Coach Marcus", Date: "2025-01-28", Views: 215, Status: domain.ResourcePending},
		{ID: "res-009", Emoji: "🥦", Title: "Plant-Based Eating for Beginners", Category: domain.CategoryNutrition, ReadTime: "6 min", Description: "Transition to plant-based eating without sacrificing taste, convenience, or nutrients.", Author: "Dietitian Chen", Date: "2025-02-10", Views: 0, Status: domain.ResourcePending},
	}
}

// Programs returns the six seeded wellness programs.
func Programs() []*domain.Program {
	return []*domain.Program{
		{ID: "prog-001", Emoji: "🧘", Title: "Mindfulness & Stress Relief", Description: "8-week program combining meditation, breathwork, and journaling to lower cortisol and improve focus.", Category: domain.CategoryMentalHealth, Duration: "8 weeks", Sessions: 24, Level: "Beginner", EnrolledCount: 312, Progress: 0, Color: "#9b89b415", ColorSolid: "#9b89b4", Status: domain.ProgramActive},
		{ID: "prog-002", Emoji: "🏃", Title: "Campus Fitness Challenge", Description: "30-day movement challenge with guided workouts designed for dorm-room and campus gym settings.", Category: domain.CategoryFitness, Duration: "30 days", Sessions: 30, Level: "Intermediate", EnrolledCount: 527, Progress: 0, Color: "#c4824a15", ColorSolid: "#c4824a", Status: domain.ProgramActive},
		{ID: "prog-003", Emoji: "🥗", Title: "Balanced Nutrition for Students", Description: "Practical meal-planning on a budget: campus dining hacks, grocery guides, and easy dorm recipes.", Category: domain.CategoryNutrition, Duration: "4 weeks", Sessions: 12, Level: "Beginner", EnrolledCount: 198, Progress: 80, Color: "#4a7c5915", ColorSolid: "#4a7c59", Status: domain.ProgramActive},
		{ID: "prog-004", Emoji: "😴", Title: "Sleep Optimization Program", Description: "Science-backed strategies to improve sleep quality and consistency, especially during exam season.", Category: domain.CategoryWellness, Duration: "2 weeks", Sessions: 10, Level: "All Levels", EnrolledCount: 144, Progress: 0, Color: "#6aaccc15", ColorSolid: "#6aaccc", Status: domain.ProgramActive},
		{ID: "prog-005", Emoji: "🤸", Title: "Flexibility & Recovery", Description: "Daily stretching and mobility routines to prevent injury, reduce muscle tension, and aid recovery.", Category: domain.CategoryFitness, Duration: "3 weeks", Sessions: 15, Level: "Beginner", EnrolledCount: 89, Progress: 0, Color: "#c4824a15", ColorSolid: "#c4824a", Status: domain.ProgramActive},
		{ID: "prog-006", Emoji: "🧠", Title: "Cognitive Wellness Bootcamp", Description: "Brain-training exercises, focus protocols, and digital detox strategies for peak academic performance.", Category: domain.CategoryMentalHealth, Duration: "6 weeks", Sessions: 18, Level: "Advanced", EnrolledCount: 76, Progress: 0, Color: "#9b89b415", ColorSolid: "#9b89b4", Status: domain.ProgramActive},
	}
}

// WellnessReport returns the fixture wellness breakdown.
func WellnessReport() domain.WellnessReport {
	return domain.WellnessReport{
		Overall: 70,
		Dimensions: []domain.WellnessDimension{
			{Label: "Mental", Value: 72, Color: "#9b89b4"},
			{Label: "Physical", Value: 58, Color: "#4a7c59"},
			{Label: "Social", Value: 84, Color: "#6aaccc"},
			{Label: "Sleep", Value: 64, Color: "#c4824a"},
			{Label: "Nutrition", Value: 70, Color: "#7fb99a"},
		},
	}
}

// Appointments returns the fixture upcoming appointments list.
func Appointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "apt-1", Provider: "Dr. Emily Park", Type: "Counseling", Date: "Tomorrow", Time: "10:00 AM", Color: "#9b89b4"},
		{ID: "apt-2", Provider: "Nurse Rivera", Type: "Check-up", Date: "Mar 2", Time: "2:30 PM", Color: "#6aaccc"},
		{ID: "apt-3", Provider: "Dr. Chen", Type: "Nutrition", Date: "Mar 8", Time: "11:00 AM", Color: "#4a7c59"},
	}
}

// PlatformMetrics returns the fixture admin usage snapshot.
func PlatformMetrics() domain.PlatformMetrics {
	return domain.PlatformMetrics{
		ActiveStudents:     2847,
		WeeklyActiveUsers:  1832,
		AppointmentsToday:  38,
		AppointmentsMonth:  286,
		SatisfactionRate:   91,
		AvgWellnessScore:   68.4,
		TotalEnrollments:   1204,
		ResourcesPublished: 134,
	}
}

// Usage returns the fixture weekly usage trend.
func Usage() []domain.UsagePoint {
	return []domain.UsagePoint{
		{Week: "Jan W1", Users: 1420, Appointments: 62},
		{Week: "Jan W2", Users: 1580, Appointments: 71},
		{Week: "Jan W3", Users: 1690, Appointments: 68},
		{Week: "Jan W4", Users: 1750, Appointments: 74},
		{Week: "Feb W1", Users: 1832, Appointments: 80},
	}
}

// TopResources returns the fixture most-viewed ranking.
func TopResources() []domain.TopResource {
	return []domain.TopResource{
		{Title: "Managing Academic Stress", Views: 2100, Category: domain.CategoryMentalHealth, AvgTime: "9 min"},
		{Title: "Understanding Anxiety in College", Views: 1240, Category: domain.CategoryMentalHealth, AvgTime: "6 min"},
		{Title: "Eating Well on a Student Budget", Views: 892, Category: domain.CategoryNutrition, AvgTime: "7 min"},
		{Title: "Sleep Hygiene for Exam Season", Views: 583, Category: domain.CategoryWellness, AvgTime: "6 min"},
		{Title: "15-Minute Dorm Room Workouts", Views: 764, Category: domain.CategoryFitness, AvgTime: "4 min"},
	}
}

// Announcements returns the two seeded campus notices.
func Announcements() []*domain.Announcement {
	return []*domain.Announcement{
		{ID: "ann-001", Title: "New Peer Support Group Starting", Body: "A new anxiety support group meets every Wednesday at 5 PM in the Counseling Center.", Date: "2025-02-18", Priority: "high"},
		{ID: "ann-002", Title: "Wellness Week — Feb 24–28", Body: "Join us for a week of free yoga, nutrition workshops, and mindfulness sessions on campus.", Date: "2025-02-20", Priority: "medium"},
	}
}
