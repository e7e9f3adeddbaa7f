package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/sleeplog/internal/auth"
)

// NewRouter wires every route onto a fresh engine. It is the single
// router constructor shared by cmd/server and the tests.
func NewRouter(app App, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.LoadHTMLGlob(templatesGlob)

	r.GET("/", Home(app))
	r.GET("/login", ShowLogin(app))
	r.POST("/login", Login(app))
	r.GET("/register", ShowRegister(app))
	r.POST("/register", Register(app))
	r.GET("/logout", Logout(app))

	protected := r.Group("", auth.RequireSession(app.Sessions()))
	protected.GET("/dashboard", Dashboard(app))
	protected.POST("/dashboard", SubmitSleepRecord(app))
	protected.GET("/record", ListRecords(app))
	protected.GET("/record/:id", ViewRecord(app))
	protected.GET("/sleep_trends", SleepTrends(app))

	return r
}
