package employee

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Employee is a directory record. Avatar images arrive from the client as
// data URLs and are stored opaquely.
type Employee struct {
	ID             int
	Name           string
	CPF            string
	RG             string
	BirthDate      time.Time
	Email          string
	Phone          string
	Role           string
	Department     string
	HireDate       time.Time
	EmploymentType string
	AvatarURL      string
	Status         Status
}

// Snapshot is the denormalized employee copy embedded in leave requests and
// performance reviews. Later edits to the directory record do not propagate
// into existing snapshots.
type Snapshot struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (e Employee) Snapshot() Snapshot {
	return Snapshot{ID: e.ID, Name: e.Name, AvatarURL: e.AvatarURL}
}
