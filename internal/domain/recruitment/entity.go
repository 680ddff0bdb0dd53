package recruitment

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// Job is an open or closed position in the hiring pipeline.
type Job struct {
	ID          int
	Title       string
	Department  string
	Description string
	Status      JobStatus
}

// Stage is a column of the recruitment kanban board. Order is the board
// position, lowest first.
type Stage struct {
	ID    int
	Name  string
	Order int
}

// Candidate is an applicant. Avatar and resume arrive as data URLs and are
// stored opaquely; ResumeSummary is free text.
type Candidate struct {
	ID            int
	Name          string
	JobID         int
	StageID       int
	ResumeSummary string
	AvatarURL     string
	ResumeDataURL string
}
