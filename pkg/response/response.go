package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sondong-edu/school-admin-api/internal/models"
	appErrors "github.com/sondong-edu/school-admin-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Error      *appErrors.Error       `json:"error,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data, Pagination: pagination}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created and a Location header.
func Created(c *gin.Context, location string, data interface{}) {
	if location != "" {
		c.Header("Location", location)
	}
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends an error response converting the error to the common structure.
// Bad-request alerts additionally carry the failure alert headers for app.
func Error(c *gin.Context, app string, err error) {
	appErr := appErrors.FromError(err)
	if appErr.IsAlert() {
		FailureAlert(c, app, appErr.Entity, appErr.Code)
	}
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// NotFound sends an empty 404.
func NotFound(c *gin.Context) {
	noStore(c)
	c.Status(http.StatusNotFound)
}

// OK sends an empty 200, used by deletions.
func OK(c *gin.Context) {
	c.Status(http.StatusOK)
}
