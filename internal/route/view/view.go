// Package view implements a small helper layer for building the JSON API:
// method dispatch, request binding with validation, and uniform responses.
package view

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request wraps http.Request to provide convenience methods.
type Request struct {
	*http.Request
	writer http.ResponseWriter
}

// ResponseWriter exposes the underlying writer for handlers that need to
// set cookies before the response body is written.
func (request *Request) ResponseWriter() http.ResponseWriter {
	return request.writer
}

// Var returns a path variable captured by the router.
func (request *Request) Var(name string) string {
	return mux.Vars(request.Request)[name]
}

// BindJSON decodes the request body into ptr and validates it. A non-nil
// result is the 400 response to return.
func (request *Request) BindJSON(ptr any) *Response {
	if err := json.NewDecoder(request.Body).Decode(ptr); err != nil {
		return BadRequest("invalid JSON body")
	}

	if err := validate.Struct(ptr); err != nil {
		var issues []Issue

		for _, fieldError := range err.(validator.ValidationErrors) {
			issues = append(issues, Issue{
				Path:    strings.ToLower(fieldError.Field()),
				Problem: fmt.Sprintf("failed %q validation", fieldError.Tag()),
			})
		}

		return &Response{http.StatusBadRequest, map[string]any{"issues": issues}}
	}

	return nil
}

// MethodHandler is a handler for one HTTP method.
type MethodHandler = func(request *Request) any

// View holds the handlers for a routed path.
type View struct {
	Get    MethodHandler
	Post   MethodHandler
	Delete MethodHandler
}

// Response represents a response to return.
type Response struct {
	Status int
	Data   any
}

// Issue describes one validation problem in a 400 response.
type Issue struct {
	Path    string `json:"path"`
	Problem string `json:"problem"`
}

// OK creates a 200 response.
func OK(data any) *Response {
	return &Response{http.StatusOK, data}
}

// BadRequest creates a 400 response with an error message.
func BadRequest(message string) *Response {
	return &Response{http.StatusBadRequest, map[string]string{"error": message}}
}

// NotFound creates a 404 response.
func NotFound() *Response {
	return &Response{http.StatusNotFound, map[string]string{"error": "not found"}}
}

// Forbidden creates a 403 response with an upgrade or sign-in hint.
func Forbidden(message string) *Response {
	return &Response{http.StatusForbidden, map[string]string{"error": message}}
}

// Unauthorized creates a 401 response.
func Unauthorized() *Response {
	return &Response{http.StatusUnauthorized, map[string]string{"error": "sign in required"}}
}

func dispatch(view *View, method string) (MethodHandler, int) {
	switch {
	case strings.EqualFold(method, http.MethodGet):
		return view.Get, http.StatusOK
	case strings.EqualFold(method, http.MethodPost):
		return view.Post, http.StatusCreated
	case strings.EqualFold(method, http.MethodDelete):
		return view.Delete, http.StatusOK
	}

	return nil, http.StatusMethodNotAllowed
}

func normalise(result any, defaultStatus int) (*Response, error) {
	switch value := result.(type) {
	case *Response:
		return value, nil
	case error:
		return &Response{http.StatusInternalServerError, nil}, value
	default:
		return &Response{defaultStatus, value}, nil
	}
}

// Wrap creates an http.HandlerFunc from a View. Handlers return a
// *Response, an error (logged, reported as a 500), or plain data encoded
// with the method's default status.
func Wrap(view View) http.HandlerFunc {
	return func(writer http.ResponseWriter, httpRequest *http.Request) {
		request := Request{httpRequest, writer}
		handler, defaultStatus := dispatch(&view, request.Method)

		if handler == nil {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusMethodNotAllowed)
			fmt.Fprint(writer, `{"error": "method not allowed"}`)

			return
		}

		response, handlerErr := normalise(handler(&request), defaultStatus)

		writer.Header().Set("Content-Type", "application/json")

		if handlerErr != nil {
			log.Error().
				Err(handlerErr).
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Msg("internal error")
			writer.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(writer, `{"error": "internal server error"}`)

			return
		}

		encoder := json.NewEncoder(writer)
		encoder.SetEscapeHTML(false)
		writer.WriteHeader(response.Status)

		if err := encoder.Encode(response.Data); err != nil {
			log.Error().Err(err).Msg("response encoding failed")
		}
	}
}
