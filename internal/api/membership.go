package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

type MembershipHandler struct {
	members *service.MembershipService
}

func NewMembershipHandler(members *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{members: members}
}

// SubmitApplication accepts a new application --> POST /api/membership-applications
func (h *MembershipHandler) SubmitApplication(c echo.Context) error {
	app := entity.MembershipApplication{}
	if err := c.Bind(&app); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.members.Submit(c.Request().Context(), &app)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, created)
}

// ListApplications (admin) --> GET /api/membership-applications
func (h *MembershipHandler) ListApplications(c echo.Context) error {
	apps, err := h.members.ListApplications(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, apps)
}

// GetApplication (admin) --> GET /api/membership-applications/:id
func (h *MembershipHandler) GetApplication(c echo.Context) error {
	app, err := h.members.GetApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, app)
}

// SetStatus (admin) moves an application through the lifecycle
// --> PATCH /api/membership-applications/:id/status
func (h *MembershipHandler) SetStatus(c echo.Context) error {
	req := struct {
		Status     string `json:"status"`
		ReviewedBy string `json:"reviewedBy"`
		Notes      string `json:"notes"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	app, err := h.members.SetStatus(c.Request().Context(), c.Param("id"),
		entity.ApplicationStatus(req.Status), req.ReviewedBy, req.Notes)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, app)
}

// DeleteApplication (admin) --> DELETE /api/membership-applications/:id
func (h *MembershipHandler) DeleteApplication(c echo.Context) error {
	if err := h.members.DeleteApplication(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// MemberLookup finds an approved member by number or email --> GET /api/member-lookup
func (h *MembershipHandler) MemberLookup(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(400, map[string]string{"error": "Search query is required"})
	}

	member, err := h.members.Lookup(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, member)
}

// MemberVerify is the staff check by exact member number --> GET /api/member-verify
func (h *MembershipHandler) MemberVerify(c echo.Context) error {
	memberNumber := c.QueryParam("memberNumber")
	if memberNumber == "" {
		return c.JSON(400, map[string]string{"error": "Member number is required"})
	}

	member, err := h.members.Verify(c.Request().Context(), memberNumber)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, member)
}
