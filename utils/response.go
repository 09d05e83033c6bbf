package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload serialized as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created record.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// InternalServerError sends the uniform failure body. Every failure in
// this API, store or coercion alike, surfaces as a 500 with a message.
func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
