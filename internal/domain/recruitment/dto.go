package recruitment

import "github.com/rh-war/hr-console-backend-go/internal/pkg/validator"

type JobResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Description string    `json:"description,omitempty"`
	Status      JobStatus `json:"status"`
}

type StageResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type CandidateResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	JobID         int    `json:"job_id"`
	StageID       int    `json:"stage_id"`
	ResumeSummary string `json:"resume_summary,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	ResumeDataURL string `json:"resume_data_url,omitempty"`
}

// BoardColumnResponse is one kanban column with the candidates currently in
// that stage, for the hiring process view.
type BoardColumnResponse struct {
	Stage      StageResponse       `json:"stage"`
	Candidates []CandidateResponse `json:"candidates"`
}

type CreateJobRequest struct {
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Description string    `json:"description,omitempty"`
	Status      JobStatus `json:"status"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Open or Closed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID int `json:"-"` // From URL
	CreateJobRequest
}

func (r *UpdateJobRequest) Validate() error {
	return r.CreateJobRequest.Validate()
}

type CreateStageRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order,omitempty"`
}

func (r *CreateStageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStageRequest struct {
	ID    int     `json:"-"` // From URL
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}

func (r *UpdateStageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateCandidateRequest struct {
	Name          string `json:"name"`
	JobID         int    `json:"job_id"`
	StageID       int    `json:"stage_id"`
	ResumeSummary string `json:"resume_summary,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	ResumeDataURL string `json:"resume_data_url,omitempty"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.JobID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "job_id",
			Message: "job_id must be a positive integer",
		})
	}

	if r.StageID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stage_id",
			Message: "stage_id must be a positive integer",
		})
	}

	if r.AvatarURL != "" && !validator.IsValidDataURL(r.AvatarURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "avatar_url",
			Message: "avatar_url must be a data URL",
		})
	}

	if r.ResumeDataURL != "" && !validator.IsValidDataURL(r.ResumeDataURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "resume_data_url",
			Message: "resume_data_url must be a data URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCandidateRequest struct {
	ID int `json:"-"` // From URL
	CreateCandidateRequest
}

func (r *UpdateCandidateRequest) Validate() error {
	return r.CreateCandidateRequest.Validate()
}

// MoveCandidateRequest is the kanban drag-and-drop transition.
type MoveCandidateRequest struct {
	CandidateID int `json:"candidate_id"`
	StageID     int `json:"stage_id"`
}

func (r *MoveCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CandidateID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_id",
			Message: "candidate_id must be a positive integer",
		})
	}

	if r.StageID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stage_id",
			Message: "stage_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
