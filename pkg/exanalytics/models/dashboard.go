package models

// DashboardStats counts the user's resources.
type DashboardStats struct {
	ProjectsCount int `json:"projectsCount"`
	UploadsCount  int `json:"uploadsCount"`
	ChartsCount   int `json:"chartsCount"`
}

// Dashboard is the user's overview page.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentUploads  []Upload       `json:"recentUploads"`
	RecentProjects []Project      `json:"recentProjects"`
}
