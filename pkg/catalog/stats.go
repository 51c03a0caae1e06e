package catalog

import "github.com/agentstation/utc"

// Stats is a derived dashboard view over the live collections. Per-category
// material counts are computed here on every call; the stored Category.Count
// field is informational only and deliberately left alone.
type Stats struct {
	TotalMaterials      int            `json:"totalMaterials" yaml:"total_materials"`
	TotalViews          int            `json:"totalViews" yaml:"total_views"`
	PublicMaterials     int            `json:"publicMaterials" yaml:"public_materials"`
	RestrictedMaterials int            `json:"restrictedMaterials" yaml:"restricted_materials"`
	TotalUsers          int            `json:"totalUsers" yaml:"total_users"`
	ActiveUsers         int            `json:"activeUsers" yaml:"active_users"`
	PendingRequests     int            `json:"pendingRequests" yaml:"pending_requests"`
	MaterialsByCategory map[string]int `json:"materialsByCategory" yaml:"materials_by_category"`
	GeneratedAt         utc.Time       `json:"generatedAt" yaml:"generated_at"`
}

// Stats computes the dashboard view from the current collections.
func (c *catalog) Stats() Stats {
	stats := Stats{
		MaterialsByCategory: make(map[string]int),
		GeneratedAt:         utc.Now(),
	}

	c.materials.ForEach(func(m Material) bool {
		stats.TotalMaterials++
		stats.TotalViews += m.Views
		switch m.AccessLevel {
		case AccessRestricted:
			stats.RestrictedMaterials++
		default:
			stats.PublicMaterials++
		}
		stats.MaterialsByCategory[m.Category]++
		return true
	})

	c.users.ForEach(func(u User) bool {
		stats.TotalUsers++
		if u.Status == StatusActive {
			stats.ActiveUsers++
		}
		return true
	})

	c.requests.ForEach(func(r Request) bool {
		if r.Status == RequestPending {
			stats.PendingRequests++
		}
		return true
	})

	return stats
}
