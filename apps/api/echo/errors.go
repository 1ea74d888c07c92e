package echoapi

import (
	"fmt"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/plan"
	"github.com/trezcool/mipango/core/user"
)

type errorResponse struct {
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// newHTTPErrorHandler converts service errors into JSON responses.
// Unexpected errors are logged and reported as plain 500s; shutdown
// errors additionally signal the server to stop.
func newHTTPErrorHandler(log core.Logger, translator ut.Translator, shutdown chan<- os.Signal) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var resp errorResponse

		switch cause := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = cause.Code
			resp.Error = fmt.Sprintf("%v", cause.Message)
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			resp.Fields = make(map[string]string, len(cause))
			for _, fe := range cause {
				resp.Fields[fe.Field()] = fe.Translate(translator)
			}
		case *core.ValidationError:
			code = http.StatusBadRequest
			resp.Error = cause.Error()
			if len(cause.Fields) > 0 {
				resp.Fields = make(map[string]string, len(cause.Fields))
				for _, fe := range cause.Fields {
					resp.Fields[fe.Field] = fe.Error
				}
			}
		default:
			switch errors.Cause(err) {
			case plan.ErrNotFound, user.ErrNotFound:
				code = http.StatusNotFound
				resp.Error = errors.Cause(err).Error()
			case plan.ErrNotPending:
				code = http.StatusConflict
				resp.Error = errors.Cause(err).Error()
			case user.ErrInvalidCredentials, user.ErrNotApproved:
				code = http.StatusUnauthorized
				resp.Error = errors.Cause(err).Error()
			default:
				log.Error("unexpected error", err)
				resp.Error = http.StatusText(code)
				if core.IsShutdown(err) && shutdown != nil {
					shutdown <- syscall.SIGTERM
				}
			}
		}

		if err = c.JSON(code, resp); err != nil {
			log.Error("writing error response", err)
		}
	}
}
