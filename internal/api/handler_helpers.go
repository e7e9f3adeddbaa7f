package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/view"
)

// RenderError logs the failure with its request id and renders the
// error page with the given status.
func RenderError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	c.HTML(status, "error.html", view.ErrorPage{
		Page: view.Page{Title: "Error"},
		Err:  internal.NewAppError(status, msg),
	})
}
