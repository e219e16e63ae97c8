package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
	staffsvc "github.com/cmlabs-hris/attendance-report-go/internal/service/staff"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	directory *staffsvc.Directory
}

func NewStaffHandler(directory *staffsvc.Directory) StaffHandler {
	return &staffHandlerImpl{
		directory: directory,
	}
}

// List handles GET /staff
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members := h.directory.All()

	resp := staff.ListStaffResponse{
		Staff: make([]staff.StaffResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Staff = append(resp.Staff, staff.ToStaffResponse(m))
	}
	resp.InternalCount, resp.ExternalCount = h.directory.Counts()

	response.Success(w, resp)
}

// Create handles POST /staff
func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	member := staff.NewStaff(req.Name, staff.ParseRegime(req.Type))
	if err := h.directory.Add(ctx, member); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member registered", staff.ToStaffResponse(member))
}
