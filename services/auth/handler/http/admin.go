package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/internal/utils"
	"github.com/medlink/portal/services/auth"
)

// AdminHandler handles HTTP requests for the doctor approval workflow
type AdminHandler struct {
	authUC auth.AuthUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authUC auth.AuthUC) *AdminHandler {
	return &AdminHandler{authUC: authUC}
}

// ListDoctors returns doctor records filtered by approval status. The
// approval queue is the default view.
func (h *AdminHandler) ListDoctors(c echo.Context) error {
	status := models.DoctorStatus(c.QueryParam("status"))
	switch status {
	case "":
		status = models.DoctorStatusPending
	case models.DoctorStatusPending, models.DoctorStatusApproved, models.DoctorStatusRejected:
	default:
		return utils.BadRequestResponse(c, "Unknown doctor status")
	}

	doctors, err := h.authUC.ListDoctorsByStatus(c.Request().Context(), status)
	if err != nil {
		logger.Error("Failed to list doctors", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Something went wrong")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Doctors retrieved", doctors)
}

// DecideApproval applies an approve or reject decision to a pending doctor
func (h *AdminHandler) DecideApproval(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid doctor ID")
	}

	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Decision != models.DecisionApprove && req.Decision != models.DecisionReject {
		return utils.BadRequestResponse(c, "decision must be approve or reject")
	}

	if err := h.authUC.DecideApproval(c.Request().Context(), doctorID, req.Decision); err != nil {
		return mapApprovalError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Decision recorded", nil)
}

func mapApprovalError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrNotFound):
		return utils.NotFoundResponse(c, "No such doctor")
	case errors.Is(err, auth.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Approval already decided")
	default:
		logger.Error("Failed to decide approval", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Something went wrong")
	}
}
