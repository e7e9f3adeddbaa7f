package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/service"
	"github.com/yourname/sleeplog/internal/view"
)

func Home(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", view.Page{Title: "Sleep Log"})
	}
}

func ShowLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := view.AuthPage{Page: view.Page{Title: "Log In"}}
		if c.Query("registered") == "1" {
			page.Flash = view.SuccessFlash("Registration successful, please log in.")
		}
		c.HTML(http.StatusOK, "login.html", page)
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form service.CredentialsForm
		if err := c.ShouldBind(&form); err != nil {
			RenderError(c, app.Logger(), err, http.StatusBadRequest, "Malformed login form")
			return
		}
		if err := service.ValidateCredentialsForm(&form); err != nil {
			c.HTML(http.StatusBadRequest, "login.html", view.AuthPage{
				Page:  view.Page{Title: "Log In", Flash: view.ErrorFlash("Email and password are required.")},
				Email: form.Email,
			})
			return
		}

		user, err := service.Login(c.Request.Context(), app.Users(), form.Email, form.Password)
		if err != nil {
			if errors.Is(err, internal.ErrInvalidCredentials) {
				// Deliberately generic: never reveal which field was wrong.
				c.HTML(http.StatusUnauthorized, "login.html", view.AuthPage{
					Page:  view.Page{Title: "Log In", Flash: view.ErrorFlash("Incorrect email or password.")},
					Email: form.Email,
				})
				return
			}
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to log in")
			return
		}

		token, err := app.Sessions().Issue(user.ID)
		if err != nil {
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to establish session")
			return
		}
		app.Sessions().SetCookie(c, token)
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

func ShowRegister(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", view.AuthPage{Page: view.Page{Title: "Register"}})
	}
}

func Register(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form service.CredentialsForm
		if err := c.ShouldBind(&form); err != nil {
			RenderError(c, app.Logger(), err, http.StatusBadRequest, "Malformed registration form")
			return
		}
		if err := service.ValidateCredentialsForm(&form); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", view.AuthPage{
				Page:  view.Page{Title: "Register", Flash: view.ErrorFlash("Email and password are required.")},
				Email: form.Email,
			})
			return
		}

		if _, err := service.Register(c.Request.Context(), app.Users(), form.Email, form.Password); err != nil {
			if errors.Is(err, internal.ErrDuplicateEmail) {
				c.HTML(http.StatusConflict, "register.html", view.AuthPage{
					Page:  view.Page{Title: "Register", Flash: view.ErrorFlash("This email is already registered.")},
					Email: form.Email,
				})
				return
			}
			RenderError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to register")
			return
		}
		c.Redirect(http.StatusSeeOther, "/login?registered=1")
	}
}

func Logout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.Sessions().ClearCookie(c)
		c.Redirect(http.StatusSeeOther, "/login")
	}
}
