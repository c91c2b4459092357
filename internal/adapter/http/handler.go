package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"veryracing/internal/app/garageview"
	"veryracing/internal/app/lifecycle"
	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	GarageUC      garageview.UseCase
	Controller    *lifecycle.Controller
	Notifications notificationsProvider
	KPI           kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/garage")
	g.GET("/status", h.status)
	g.POST("/mint", h.mint)
	g.POST("/breed", h.breed)
	g.POST("/select", h.selectVehicle)
	g.GET("/notifications", h.notifications)
	g.GET("/events", h.events)

	s.GET("/ops/kpi", h.kpi)
}

type mintRequest struct {
	Category string `json:"category"`
}

type selectRequest struct {
	VehicleID uint64 `json:"vehicle_id"`
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GarageUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) mint(c context.Context, ctx *app.RequestContext) {
	var body mintRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Category == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_category", "category is required")
		return
	}

	rec, err := h.Controller.SubmitMint(c, garage.Category(body.Category))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusAccepted, rec)
}

func (h Handler) breed(c context.Context, ctx *app.RequestContext) {
	rec, err := h.Controller.SubmitBreed(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusAccepted, rec)
}

func (h Handler) selectVehicle(c context.Context, ctx *app.RequestContext) {
	var body selectRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.VehicleID == 0 {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_vehicle_id", "vehicle_id is required")
		return
	}

	sel, err := h.Controller.Select(c, garage.VehicleID(body.VehicleID))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, sel)
}

type notificationsProvider interface {
	RecentAny() any
}

func (h Handler) notifications(_ context.Context, ctx *app.RequestContext) {
	if h.Notifications == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "notifications provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"notifications": h.Notifications.RecentAny()})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, garage.ErrUnknownCategory):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_category", err.Error())
	case errors.Is(err, lifecycle.ErrActionInFlight):
		writeErrorBody(ctx, consts.StatusConflict, "action_in_flight", err.Error())
	case errors.Is(err, lifecycle.ErrAlreadyOwned):
		writeErrorBody(ctx, consts.StatusConflict, "already_owned", err.Error())
	case errors.Is(err, lifecycle.ErrSelectionIncomplete):
		writeErrorBody(ctx, consts.StatusBadRequest, "selection_incomplete", err.Error())
	case errors.Is(err, lifecycle.ErrNotBreedable):
		writeErrorBody(ctx, consts.StatusConflict, "not_breedable", err.Error())
	case errors.Is(err, lifecycle.ErrVehicleStaked):
		writeErrorBody(ctx, consts.StatusConflict, "vehicle_staked", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
