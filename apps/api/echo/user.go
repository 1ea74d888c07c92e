package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/user"
)

type userAPI struct {
	conf       *core.Config
	svc        *user.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAuthAPI(g *echo.Group, deps ServerDeps) {
	api := userAPI{
		conf:       deps.Conf,
		svc:        deps.UserSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}
	g.POST("/login", api.login)
	g.POST("/signup", api.signup)
}

func registerAdminAPI(g *echo.Group, deps ServerDeps) {
	api := userAPI{
		conf:       deps.Conf,
		svc:        deps.UserSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}
	g.GET("/signup-requests", api.querySignupRequests)
	g.POST("/signup-requests/:id/approve", api.approveSignup)
	g.POST("/signup-requests/:id/reject", api.rejectSignup)
	g.GET("/users", api.queryUsers)
}

type loginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (api *userAPI) login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding credentials")
	}
	if err := creds.Validate(api.validate, api.translator); err != nil {
		return err
	}

	if creds.Email == api.conf.Admin.Email && creds.Password == api.conf.Admin.Password {
		token, err := GenerateAdminToken(api.conf)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, loginResponse{
			Token: token,
			User: map[string]interface{}{
				"name":     "Administrator",
				"email":    api.conf.Admin.Email,
				"role":     RoleAdmin,
				"is_admin": true,
			},
		})
	}

	usr, err := api.svc.Authenticate(creds.Email, creds.Password)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, usr)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: usr})
}

func (api *userAPI) signup(c echo.Context) error {
	var ns user.NewSignup
	if err := c.Bind(&ns); err != nil {
		return errors.Wrap(err, "binding signup")
	}
	if err := ns.Validate(api.validate, api.translator, api.svc); err != nil {
		return err
	}
	sr, err := api.svc.Signup(ns)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sr)
}

func (api *userAPI) querySignupRequests(c echo.Context) error {
	reqs, err := api.svc.QuerySignupRequests()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}

func (api *userAPI) approveSignup(c echo.Context) error {
	usr, err := api.svc.ApproveSignup(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usr)
}

func (api *userAPI) rejectSignup(c echo.Context) error {
	if err := api.svc.RejectSignup(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (api *userAPI) queryUsers(c echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
