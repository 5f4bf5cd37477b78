package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"RateWatch/internal/domain/models"
	xhttp "RateWatch/pkg/http"
	xlogger "RateWatch/pkg/logger"

	"github.com/labstack/echo/v4"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart renders one indicator's series as a downloadable PNG line chart.
func (h *DashboardHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := h.window(req.From, req.To)

	series, err := h.dash.Series(req.Indicator, from, to)
	if err != nil {
		return xhttp.NotFoundResponse(c, err.Error())
	}
	if len(series.Points) < 2 {
		return xhttp.BadRequestResponse(c, "not enough points to render a chart")
	}

	xs := make([]time.Time, len(series.Points))
	ys := make([]float64, len(series.Points))
	for i, p := range series.Points {
		xs[i] = p.Date
		ys[i] = p.Value
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Over Time", req.Indicator),
		Width:  req.Width,
		Height: req.Height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    req.Indicator,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		h.logger.Error("chart render failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("render chart: %v", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_chart.png"`, req.Indicator))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
