package echoapi

import (
	"fmt"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core/plan"
	"github.com/trezcool/mipango/core/user"
	exportsvc "github.com/trezcool/mipango/services/export"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type planAPI struct {
	svc        *plan.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerPlanAPI(g *echo.Group, deps ServerDeps) {
	api := planAPI{
		svc:        deps.PlanSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}
	dean := deanMiddleware()

	g.POST("", api.create)
	g.GET("", api.query)
	g.GET("/export", api.export, dean)
	g.POST("/generate", api.generate)
	g.GET("/:id", api.get)
	g.PUT("/:id", api.update)
	g.POST("/:id/approve", api.approve, dean)
	g.POST("/:id/reject", api.reject, dean)
	g.POST("/:id/request-revision", api.requestRevision, dean)
	g.POST("/:id/notification-read", api.notificationRead)
	g.GET("/:id/document", api.document)
}

func (api *planAPI) create(c echo.Context) error {
	var np plan.NewPlan
	if err := c.Bind(&np); err != nil {
		return errors.Wrap(err, "binding plan")
	}
	if err := np.Validate(api.validate, api.translator); err != nil {
		return err
	}
	claims := getContextClaims(c)
	p, err := api.svc.Create(np, claims.Subject, claims.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (api *planAPI) query(c echo.Context) error {
	filter := plan.QueryFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
	// faculty only see their own submissions
	if claims := getContextClaims(c); claims.Role == user.RoleTeacher {
		filter.CreatedBy = claims.Subject
	}
	plans, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

func (api *planAPI) get(c echo.Context) error {
	p, err := api.svc.GetByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) update(c echo.Context) error {
	id := c.Param("id")
	p, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	claims := getContextClaims(c)
	if claims.Role == user.RoleTeacher && p.CreatedBy != claims.Subject {
		return echo.ErrForbidden
	}

	var np plan.NewPlan
	if err = c.Bind(&np); err != nil {
		return errors.Wrap(err, "binding plan")
	}
	if err = np.Validate(api.validate, api.translator); err != nil {
		return err
	}
	p, err = api.svc.Update(id, np)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) generate(c echo.Context) error {
	var in plan.GenerateInput
	if err := c.Bind(&in); err != nil {
		return errors.Wrap(err, "binding generation input")
	}
	if err := in.Validate(api.validate, api.translator); err != nil {
		return err
	}
	claims := getContextClaims(c)
	p, err := api.svc.Generate(in, claims.Subject, claims.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (api *planAPI) approve(c echo.Context) error {
	rev, err := bindReview(c)
	if err != nil {
		return err
	}
	p, err := api.svc.Approve(c.Param("id"), getContextClaims(c).Name, rev)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) reject(c echo.Context) error {
	rev, err := bindReview(c)
	if err != nil {
		return err
	}
	p, err := api.svc.Reject(c.Param("id"), getContextClaims(c).Name, rev)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) requestRevision(c echo.Context) error {
	rev, err := bindReview(c)
	if err != nil {
		return err
	}
	p, err := api.svc.RequestRevision(c.Param("id"), getContextClaims(c).Name, rev)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) notificationRead(c echo.Context) error {
	p, err := api.svc.MarkNotificationRead(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (api *planAPI) document(c echo.Context) error {
	p, err := api.svc.GetByID(c.Param("id"))
	if err != nil {
		return err
	}
	buf, filename, err := plan.BuildDocument(p, plan.DocumentOptions{})
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, docxContentType, buf.Bytes())
}

func (api *planAPI) export(c echo.Context) error {
	plans, err := api.svc.Filter(plan.QueryFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	buf, filename, err := exportsvc.PlansWorkbook(plans)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// bindReview tolerates an empty request body.
func bindReview(c echo.Context) (plan.Review, error) {
	var rev plan.Review
	if c.Request().ContentLength == 0 {
		return rev, nil
	}
	if err := c.Bind(&rev); err != nil {
		return rev, errors.Wrap(err, "binding review")
	}
	return rev, nil
}
