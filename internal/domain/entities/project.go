package entities

import "time"

// Project statuses.
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
)

type Project struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Client     string     `json:"client,omitempty"`
	Location   string     `json:"location,omitempty"`
	Budget     float64    `json:"budget,omitempty"`
	Status     string     `json:"status,omitempty"`
	StartDate  string     `json:"start_date,omitempty"`
	EndDate    string     `json:"end_date,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"` // nil = active
}

func (p Project) RecordID() string { return p.ID }

func (p Project) IsArchived() bool { return p.ArchivedAt != nil }
