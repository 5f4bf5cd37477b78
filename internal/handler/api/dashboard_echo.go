package api

import (
	"bytes"
	"net/http"
	"time"

	"RateWatch/internal/domain/models"
	"RateWatch/internal/service/stream"
	"RateWatch/internal/usecase"
	xhttp "RateWatch/pkg/http"
	xlogger "RateWatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler exposes the dashboard's Echo routes.
type DashboardHandler struct {
	logger   *xlogger.Logger
	dash     *usecase.Dashboard
	hub      *stream.Hub
	recorder *xlogger.Recorder
}

func NewDashboardHandler(logger *xlogger.Logger, dash *usecase.Dashboard, hub *stream.Hub, recorder *xlogger.Recorder) *DashboardHandler {
	return &DashboardHandler{logger: logger, dash: dash, hub: hub, recorder: recorder}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/v1")
	g.GET("/indicators", h.Indicators)
	g.GET("/series", h.Series)
	g.GET("/heatmap", h.Heatmap)
	g.GET("/export", h.Export)
	g.GET("/chart", h.Chart)
	g.GET("/rates", h.Rates)
	g.GET("/guidance", h.Guidance)
	g.GET("/warnings", h.Warnings)

	if h.hub != nil {
		e.GET("/ws/rates", h.Stream)
	}
}

func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DashboardHandler) Indicators(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.dash.Indicators())
}

func (h *DashboardHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := h.window(req.From, req.To)

	series, err := h.dash.Series(req.Indicator, from, to)
	if err != nil {
		return xhttp.NotFoundResponse(c, err.Error())
	}
	return xhttp.SuccessResponse(c, series)
}

func (h *DashboardHandler) Heatmap(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.dash.Heatmap())
}

func (h *DashboardHandler) Export(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := h.window(req.From, req.To)

	var buf bytes.Buffer
	if err := h.dash.Export(&buf, from, to); err != nil {
		h.logger.Error("export failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("export: %v", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="filtered_mortgage_data.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *DashboardHandler) Rates(c echo.Context) error {
	snap := h.dash.LiveRates(c.Request().Context())
	return xhttp.SuccessResponse(c, snap)
}

func (h *DashboardHandler) Guidance(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := h.window(req.From, req.To)

	report := h.dash.Report(c.Request().Context(), from, to)
	return xhttp.SuccessResponse(c, report)
}

func (h *DashboardHandler) Warnings(c echo.Context) error {
	if h.recorder == nil {
		return xhttp.SuccessResponse(c, []xlogger.Entry{})
	}
	return xhttp.SuccessResponse(c, h.recorder.Recent())
}

func (h *DashboardHandler) Stream(c echo.Context) error {
	if err := h.hub.Serve(c.Response(), c.Request()); err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return err
	}
	return nil
}

// window resolves an inclusive date range, defaulting each missing bound
// to the dataset's own bound.
func (h *DashboardHandler) window(fromStr, toStr string) (time.Time, time.Time) {
	info := h.dash.Indicators()
	from := xhttp.ParseDateDefault(fromStr, info.From)
	to := xhttp.ParseDateDefault(toStr, info.To)
	return from, to
}
