package dto

// CreateAnnouncementRequest posts a notice
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"required,oneof=ALL STUDENTS FACULTY"`
}

// UpdateAnnouncementRequest edits a notice
type UpdateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"required,oneof=ALL STUDENTS FACULTY"`
}

// CreateEventRequest schedules a campus event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	StartsAt    string `json:"startsAt" binding:"required" example:"2024-09-10T10:00:00Z"`
	EndsAt      string `json:"endsAt" binding:"required" example:"2024-09-10T16:00:00Z"`
}

// EventFilterRequest filters the event list
type EventFilterRequest struct {
	UpcomingOnly bool `form:"upcoming"`
}
