package routes

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telsin/filegrid/templates"
)

func testRouterContext() *RouterContext {
	return &RouterContext{
		MasterTemplate: templates.LoadTemplate(),
	}
}

func TestRouteError(t *testing.T) {
	e := NewRouteError(NOT_FOUND, "File a/b.txt not found")
	assert.Equal(t, "File a/b.txt not found", e.Error())
	assert.True(t, IsRouteError(e))
	assert.False(t, IsRouteError(errors.New("x")))
}

func TestReportRouteErrorStatusDispatch(t *testing.T) {
	ctx := testRouterContext()
	r := httptest.NewRequest("GET", "/", nil)

	w := httptest.NewRecorder()
	ctx.ReportRouteError(NewRouteError(NOT_FOUND, "File a/b.txt not found"), w, r)
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "File a/b.txt not found")

	w = httptest.NewRecorder()
	ctx.ReportRouteError(NewRouteError(FORBIDDEN, "This component is private."), w, r)
	assert.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "This component is private.")

	w = httptest.NewRecorder()
	ctx.ReportRouteError(NewRouteError(OTHER_ERROR, "Folders have no version history."), w, r)
	assert.Equal(t, 400, w.Code)

	// anything that isn't a RouteError is an internal error.
	w = httptest.NewRecorder()
	ctx.ReportRouteError(errors.New("db exploded"), w, r)
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "db exploded")
}
