package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"chirpnest/apperror"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	tests := []struct {
		err    error
		status int
		body   string
	}{
		{apperror.Validation("bad input"), http.StatusBadRequest, `{"error":"bad input"}`},
		{apperror.Auth("nope"), http.StatusUnauthorized, `{"error":"nope"}`},
		{apperror.Forbidden("not yours"), http.StatusForbidden, `{"error":"not yours"}`},
		{apperror.NotFound("gone"), http.StatusNotFound, `{"error":"gone"}`},
		// internal detail never leaks to the client
		{apperror.Internal(errors.New("dial tcp: refused")), http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

		respondError(c, log, tt.err)

		assert.Equal(t, tt.status, recorder.Code)
		assert.JSONEq(t, tt.body, recorder.Body.String())
	}
}
