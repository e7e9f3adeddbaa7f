package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/auth"
	"github.com/yourname/sleeplog/internal/service"
	"github.com/yourname/sleeplog/internal/view"
)

func Dashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.SessionUserID(c)
		renderDashboard(c, app, userID, http.StatusOK, nil)
	}
}

// SubmitSleepRecord handles the dashboard form POST. A parse or
// validation failure re-renders the page with a message instead of
// failing the request.
func SubmitSleepRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.SessionUserID(c)

		var form service.SleepRecordForm
		if err := c.ShouldBind(&form); err != nil {
			renderDashboard(c, app, userID, http.StatusBadRequest,
				view.ErrorFlash("Please fill in every field with a valid value."))
			return
		}
		if err := service.ValidateSleepRecordForm(&form); err != nil {
			renderDashboard(c, app, userID, http.StatusBadRequest,
				view.ErrorFlash("Date must be YYYY-MM-DD and times must be HH:MM."))
			return
		}

		if _, err := service.CreateSleepRecord(c.Request.Context(), app.Records(), userID, &form); err != nil {
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save sleep record")
			return
		}
		renderDashboard(c, app, userID, http.StatusOK, view.SuccessFlash("Sleep record saved."))
	}
}

func renderDashboard(c *gin.Context, app App, userID int64, status int, flash *view.Flash) {
	records, err := app.Records().ListSleepRecords(c.Request.Context(), userID)
	if err != nil {
		RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch sleep records")
		return
	}
	c.HTML(status, "dashboard.html", view.DashboardPage{
		Page:    view.Page{Title: "Dashboard", Flash: flash},
		Records: records,
	})
}

func ListRecords(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.SessionUserID(c)
		records, err := app.Records().ListSleepRecords(c.Request.Context(), userID)
		if err != nil {
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch sleep records")
			return
		}
		c.HTML(http.StatusOK, "records.html", view.RecordsPage{
			Page:    view.Page{Title: "All Records"},
			Records: records,
		})
	}
}

func ViewRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.SessionUserID(c)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			RenderError(c, app.Logger(), err, http.StatusNotFound, "Record not found")
			return
		}

		rec, err := app.Records().GetSleepRecord(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, internal.ErrNotFound) {
				RenderError(c, app.Logger(), err, http.StatusNotFound, "Record not found")
				return
			}
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch record")
			return
		}
		// Ownership is enforced here; rendered as not-found so the
		// response does not leak whether the id exists.
		if rec.UserID != userID {
			RenderError(c, app.Logger(), internal.ErrNotFound, http.StatusNotFound, "Record not found")
			return
		}

		duration, err := service.ComputeDuration(rec.SleepTime, rec.WakeTime)
		if err != nil {
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to compute sleep duration")
			return
		}

		c.HTML(http.StatusOK, "record.html", view.RecordPage{
			Page:     view.Page{Title: "Sleep Record"},
			Record:   *rec,
			Duration: view.FormatDuration(duration),
		})
	}
}

// SleepTrends fetches the user's records but computes nothing yet; the
// page is an explicit placeholder.
func SleepTrends(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.SessionUserID(c)
		records, err := app.Records().ListSleepRecords(c.Request.Context(), userID)
		if err != nil {
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch sleep records")
			return
		}
		c.HTML(http.StatusOK, "trends.html", view.TrendsPage{
			Page:    view.Page{Title: "Sleep Trends"},
			Records: records,
		})
	}
}
