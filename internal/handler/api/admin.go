package api

import (
	"net/http"

	reqdto "boat-reservation/internal/handler/dto/request"
	resdto "boat-reservation/internal/handler/dto/response"
	"boat-reservation/internal/handler/httperr"
	"boat-reservation/internal/usecase/assignment"
	"boat-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves fleet, schedule and batch operations. Routes are
// guarded by the admin role; the commands check it again.
type AdminHandler struct {
	boats    commands.BoatCommands
	schedule commands.ScheduleCommands
	runner   assignment.Runner
}

func NewAdminHandler(boats commands.BoatCommands, schedule commands.ScheduleCommands, runner assignment.Runner) *AdminHandler {
	return &AdminHandler{boats: boats, schedule: schedule, runner: runner}
}

// @Summary Set boat availability
// @Description Taking a boat out of service cancels its reservations from today on
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Boat ID"
// @Param request body reqdto.SetBoatAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.BoatAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /boats/{id}/availability [patch]
func (h *AdminHandler) SetBoatAvailability(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathIDOrAbort(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetBoatAvailabilityRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	result, err := h.boats.SetAvailability(c.Request.Context(), actor, id, *req.IsAvailable)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSetAvailabilityResult(result))
}

// @Summary Create cruise period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCruisePeriodRequest true "Period bounds"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /cruise-periods [post]
func (h *AdminHandler) CreateCruisePeriod(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateCruisePeriodRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	id, err := h.schedule.CreateCruisePeriod(c.Request.Context(), actor, req.Start, req.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Add time slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cruise period ID"
// @Param request body reqdto.CreateTimeSlotRequest true "Slot date and times (HH:MM)"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cruise-periods/{id}/time-slots [post]
func (h *AdminHandler) AddTimeSlot(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	periodID, ok := pathIDOrAbort(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateTimeSlotRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}
	cmd, err := req.ToCommand(periodID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.schedule.AddTimeSlot(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Run battery assignment
// @Description Runs the batch now. Answers 409 while another run holds the lock.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AssignmentRunResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /assignments/run [post]
func (h *AdminHandler) RunAssignment(c *gin.Context) {
	result, err := h.runner.Run(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentResult(result))
}
