package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/safegate/gate-api/internal/api/metrics"
	"github.com/safegate/gate-api/internal/api/middleware"
	"github.com/safegate/gate-api/internal/core/ports"
)

type GateHandler struct {
	gateService ports.GateService
}

func NewGateHandler(gateService ports.GateService) *GateHandler {
	return &GateHandler{gateService: gateService}
}

// Action records one gate command for the authenticated user.
//
// @Summary      Submit a gate command
// @Tags         gate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gateActionRequest  true  "Gate command"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /gate/action [post]
func (h *GateHandler) Action(c echo.Context) error {
	var req gateActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "acesso negado")
	}

	id, err := h.gateService.Submit(c.Request().Context(), claims.UserID, req.Action, req.Description)
	if err != nil {
		return err
	}

	metrics.GateActionsTotal.WithLabelValues(req.Action).Inc()
	return c.JSON(http.StatusOK, actionResponse{
		Message: fmt.Sprintf("Portão %s com sucesso!", req.Action),
		ID:      id,
	})
}

// History returns the most recent gate actions with their actors.
//
// @Summary      List recent gate actions
// @Tags         gate
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   domain.HistoryEntry
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /gate/history [get]
func (h *GateHandler) History(c echo.Context) error {
	entries, err := h.gateService.History(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Logs returns the most recent trigger-produced system log rows.
//
// @Summary      List system logs
// @Tags         gate
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   domain.SystemLog
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /gate/logs [get]
func (h *GateHandler) Logs(c echo.Context) error {
	logs, err := h.gateService.SystemLogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// DeleteHistory removes one gate action by id.
//
// @Summary      Delete a gate action record
// @Tags         gate
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Record id"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /gate/history/{id} [delete]
func (h *GateHandler) DeleteHistory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	if err := h.gateService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Registro excluído com sucesso!"})
}
