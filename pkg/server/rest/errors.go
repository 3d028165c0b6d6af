package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"lintang/mapagent/pkg/server"
)

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrResponse model info
//
//	@Description	error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       string   `json:"code,omitempty"`  // server.ErrorCode name
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

// ErrFromService renders a service error with the status its code maps to.
// internal faults never leak their cause.
func ErrFromService(err error) render.Renderer {
	status := server.HTTPStatus(err)
	code := server.CodeOf(err)
	if status == http.StatusInternalServerError {
		rend := ErrInternalServerErrorRend(errors.New("internal server error")).(*ErrResponse)
		rend.Err = err
		rend.AppCode = code.String()
		return rend
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     statusText(status),
		AppCode:        code.String(),
		ErrorText:      userMessage(err),
	}
}

func statusText(status int) string {
	if status == server.StatusClientClosedRequest {
		return "Client closed request."
	}
	return fmt.Sprintf("%s.", http.StatusText(status))
}

// userMessage message of the outermost server.Error without its wrapped cause.
func userMessage(err error) string {
	var serr *server.Error
	if errors.As(err, &serr) {
		return serr.Message()
	}
	return err.Error()
}
