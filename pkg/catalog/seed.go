package catalog

import (
	"time"

	"github.com/agentstation/utc"
)

// Seed data: the fixed fallback lists used when the store has nothing
// persisted (or the persisted document is corrupt). Each function returns a
// fresh slice so callers can mutate freely.

// seedMaterials returns the eight-item starter collection.
func seedMaterials() []Material {
	return []Material{
		{
			ID:          "1",
			Title:       "Class of 2023 Yearbook",
			Description: "Complete yearbook featuring graduates, campus events, and memorable moments from AY 2022-2023.",
			Category:    "Yearbooks",
			Date:        "2023-12-15",
			AccessLevel: AccessPublic,
			Views:       245,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Graduates", "Campus Life", "2023"},
		},
		{
			ID:          "2",
			Title:       "Campus Centennial Photo Collection",
			Description: "A curated collection of photographs documenting the institution's growth over 75 years.",
			Category:    "Photographs",
			Date:        "2023-11-20",
			AccessLevel: AccessPublic,
			Views:       120,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Campus", "History", "Centennial"},
		},
		{
			ID:          "3",
			Title:       "Research Journal Volume 15",
			Description: "Latest volume featuring faculty and student research papers across various disciplines.",
			Category:    "Publications",
			Date:        "2023-10-01",
			AccessLevel: AccessPublic,
			Views:       89,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Research", "Academic", "Faculty"},
		},
		{
			ID:          "4",
			Title:       "Founding Charter Documents",
			Description: "Original founding documents and correspondence from the institution's establishment.",
			Category:    "Documents",
			Date:        "1950-01-15",
			AccessLevel: AccessRestricted,
			Views:       34,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"History", "Founding", "Charter"},
		},
		{
			ID:          "5",
			Title:       "Class of 2022 Yearbook",
			Description: "Yearbook commemorating the achievements and memories of the Class of 2022.",
			Category:    "Yearbooks",
			Date:        "2022-12-15",
			AccessLevel: AccessPublic,
			Views:       156,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Graduates", "Campus Life", "2022"},
		},
		{
			ID:          "6",
			Title:       "Sports Championship Gallery",
			Description: "Photos and memorabilia from institutional sports championships throughout the decades.",
			Category:    "Photographs",
			Date:        "2023-08-10",
			AccessLevel: AccessPublic,
			Views:       92,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Sports", "Athletics", "Championships"},
		},
		{
			ID:          "7",
			Title:       "Student Newspaper Archives 1980-1990",
			Description: "Digitized collection of student newspapers from the 1980s decade.",
			Category:    "Publications",
			Date:        "1990-12-31",
			AccessLevel: AccessPublic,
			Views:       67,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Students", "Newspaper", "1980s"},
		},
		{
			ID:          "8",
			Title:       "Administrative Records 1960-1970",
			Description: "Administrative correspondence and meeting minutes from the early institutional period.",
			Category:    "Documents",
			Date:        "1970-12-31",
			AccessLevel: AccessRestricted,
			Views:       41,
			Thumbnail:   "/placeholder.svg",
			Subjects:    []string{"Administration", "Records", "1960s"},
		},
	}
}

// seedUsers returns the starter accounts.
func seedUsers() []User {
	return []User{
		{ID: 1, Name: "Admin User", Email: "admin@gmail.com", Role: "Admin", Status: StatusActive, Joined: "2023-01-10"},
		{ID: 2, Name: "Maria Santos", Email: "maria@email.com", Role: "Archivist", Status: StatusActive, Joined: "2023-05-15"},
		{ID: 3, Name: "Jose Garcia", Email: "jose@email.com", Role: "Researcher", Status: StatusInactive, Joined: "2023-08-20"},
		{ID: 4, Name: "Ana Reyes", Email: "ana@email.com", Role: "Student", Status: StatusActive, Joined: "2023-10-05"},
		{ID: 5, Name: "Juan Dela Cruz", Email: "juan@email.com", Role: "Student", Status: StatusActive, Joined: "2023-11-12"},
	}
}

// seedCategories returns the starter categories. Count is informational and
// not reconciled against the materials collection.
func seedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Yearbooks", Count: 45, Items: "Graduation photos, student lists", LastUpdated: "2023-12-15"},
		{ID: 2, Name: "Photographs", Count: 1250, Items: "Campus events, historical landmarks", LastUpdated: "2023-11-20"},
		{ID: 3, Name: "Publications", Count: 85, Items: "Research journals, newsletters", LastUpdated: "2023-10-01"},
		{ID: 4, Name: "Documents", Count: 320, Items: "Administrative records, charters", LastUpdated: "2023-09-15"},
		{ID: 5, Name: "Memorabilia", Count: 120, Items: "Institutional artifacts, awards", LastUpdated: "2023-08-10"},
	}
}

// seedRequests returns the starter access requests.
func seedRequests() []Request {
	return []Request{
		{ID: 1, User: "Maria Santos", Email: "maria@email.com", Material: "Administrative Records 1960-1970", Date: "2024-01-15", Status: RequestPending, Purpose: "Graduate thesis on institutional history."},
		{ID: 2, User: "Jose Garcia", Email: "jose@email.com", Material: "Founding Charter Documents", Date: "2024-01-14", Status: RequestPending, Purpose: "Legal verification for land titling research."},
		{ID: 3, User: "Ana Reyes", Email: "ana@email.com", Material: "Board Meeting Minutes 1980", Date: "2024-01-14", Status: RequestApproved, Purpose: "Student organization anniversary research."},
		{ID: 4, User: "Mark Ramos", Email: "mark@email.com", Material: "Restricted Personnel Records", Date: "2024-01-13", Status: RequestDenied, Purpose: "Personal curiosity."},
	}
}

// seedActivity returns the starter audit trail.
func seedActivity() []Activity {
	return []Activity{
		{ID: 1, Action: "New material uploaded", Item: "Class of 2024 Yearbook", Time: seedTime(2024, 1, 20, 14, 30), User: "Admin", Type: ActivityCreation},
		{ID: 2, Action: "Access request approved", Item: "Historical Documents 1950-1960", Time: seedTime(2024, 1, 20, 14, 15), User: "Archivist", Type: ActivityAuthorization},
		{ID: 3, Action: "Settings modified", Item: "User Role Permissions", Time: seedTime(2024, 1, 20, 13, 45), User: "Admin", Type: ActivitySystem},
		{ID: 4, Action: "User registered", Item: "john.doe@email.com", Time: seedTime(2024, 1, 20, 12, 30), User: "System", Type: ActivityAuth},
		{ID: 5, Action: "Material downloaded", Item: "Research Journal Vol. 14", Time: seedTime(2024, 1, 20, 11, 20), User: "Researcher", Type: ActivityInteraction},
		{ID: 6, Action: "Log-in attempt failed", Item: "IP 192.168.1.45", Time: seedTime(2024, 1, 20, 10, 5), User: "Guest", Type: ActivitySecurity},
		{ID: 7, Action: "User role changed", Item: "aria.santos@email.com", Time: seedTime(2024, 1, 19, 16, 20), User: "Admin", Type: ActivitySystem},
	}
}

func seedTime(year int, month time.Month, day, hour, min int) utc.Time {
	return utc.Time{Time: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}
