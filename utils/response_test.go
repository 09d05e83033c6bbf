package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordResponse(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOKSerializesPayloadAsIs(t *testing.T) {
	w := recordResponse(func(c *gin.Context) {
		OK(c, []int{1, 2, 3})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[1,2,3]", w.Body.String())
}

func TestCreatedReturns201(t *testing.T) {
	w := recordResponse(func(c *gin.Context) {
		Created(c, gin.H{"id": 7})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestInternalServerErrorUsesFlatErrorBody(t *testing.T) {
	w := recordResponse(func(c *gin.Context) {
		InternalServerError(c, "query failed")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"query failed"}`, w.Body.String())
}
