package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/http/middleware"
	"travelapp/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (domain.ID, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	id := domain.ID(n)
	if err != nil || !id.Valid() {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "id tidak valid"})
		return 0, false
	}
	return id, true
}

// optionalQueryID returns 0 when the parameter is absent.
func optionalQueryID(c *gin.Context, name string) (domain.ID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	id := domain.ID(n)
	if err != nil || !id.Valid() {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "id tidak valid"})
		return 0, false
	}
	return id, true
}

// tripDate parses a required YYYY-MM-DD value and answers 400 on failure.
func tripDate(c *gin.Context, raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "date", Msg: "tanggal wajib diisi"})
		return time.Time{}, false
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "date", Msg: "format tanggal tidak valid (YYYY-MM-DD)", Err: err})
		return time.Time{}, false
	}
	return t, true
}

func queryBool(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.Query(name)))
	return err == nil && v
}

func seatList(raw string) ([]int, error) {
	list, err := utils.ParseIntList(raw)
	if err != nil {
		return nil, domain.ValidationError{Field: "selected", Msg: err.Error(), Err: err}
	}
	return list, nil
}
