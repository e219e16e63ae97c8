package staff

import (
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *CreateStaffRequest) Validate() error {
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

type StaffResponse struct {
	Name         string `json:"name"`
	Regime       string `json:"regime"`
	WorkWeekdays []int  `json:"work_weekdays"`
}

func ToStaffResponse(s Staff) StaffResponse {
	weekdays := make([]int, 0, len(s.WorkWeekdays))
	for _, w := range s.WorkWeekdays {
		weekdays = append(weekdays, int(w))
	}
	return StaffResponse{
		Name:         s.Name,
		Regime:       string(s.Regime),
		WorkWeekdays: weekdays,
	}
}

type ListStaffResponse struct {
	Staff         []StaffResponse `json:"staff"`
	InternalCount int             `json:"internal_count"`
	ExternalCount int             `json:"external_count"`
}
