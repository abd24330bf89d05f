package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of a successful reply, keyed by resource name,
// e.g. {"company": {...}} or {"invoices": [...]}.
type Response map[string]interface{}

// OK writes a 200 reply.
func OK(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 reply for newly created resources.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the deletion acknowledgement every DELETE route shares.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
