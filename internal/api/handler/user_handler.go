package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ezelectronics/server/internal/api/metrics"
	"github.com/ezelectronics/server/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users — unauthenticated self-registration.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.CreateUser(c.Request().Context(), req.Username, req.Name, req.Surname, req.Password, req.Role); err != nil {
		metrics.AccountOpsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.AccountOpsTotal.WithLabelValues("create", "ok").Inc()
	return c.NoContent(http.StatusOK)
}

// GetAll handles GET /users — admin only.
func (h *UserHandler) GetAll(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	users, err := h.service.GetUsers(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetAllByRole handles GET /users/roles/:role — admin only.
func (h *UserHandler) GetAllByRole(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	users, err := h.service.GetUsersByRole(c.Request().Context(), caller, c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByUsername handles GET /users/:username.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetUserByUsername(c.Request().Context(), caller, c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /users/:username.
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.UpdateUserInfo(c.Request().Context(), caller, req.Name, req.Surname, req.Address, req.Birthdate, c.Param("username"))
	if err != nil {
		metrics.AccountOpsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.AccountOpsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:username.
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), caller, c.Param("username")); err != nil {
		metrics.AccountOpsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.AccountOpsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusOK)
}

// DeleteAll handles DELETE /users — admin only, enforced by RBAC middleware.
func (h *UserHandler) DeleteAll(c echo.Context) error {
	if err := h.service.DeleteAll(c.Request().Context()); err != nil {
		metrics.AccountOpsTotal.WithLabelValues("delete_all", "error").Inc()
		return err
	}

	metrics.AccountOpsTotal.WithLabelValues("delete_all", "ok").Inc()
	return c.NoContent(http.StatusOK)
}
