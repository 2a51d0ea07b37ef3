package entities

// Personnel is a team member assigned to a site.
type Personnel struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Position  string  `json:"position,omitempty"`
	ProjectID string  `json:"project_id,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	DailyRate float64 `json:"daily_rate,omitempty"`
	Active    bool    `json:"active"`
}

func (p Personnel) RecordID() string { return p.ID }
