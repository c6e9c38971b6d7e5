package util

import (
	"math"

	"github.com/gin-gonic/gin"
)

// Response carries the extra fields of a success payload.
type Response map[string]interface{}

// Success writes {"success": true, ...data}.
func Success(c *gin.Context, status int, data Response) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// Error writes {"success": false, "message": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// ErrorCode writes an error with a machine-readable code, used by the auth
// gate so clients can tell an expired access token from an invalid one.
func ErrorCode(c *gin.Context, status int, msg, code string) {
	c.JSON(status, gin.H{"success": false, "message": msg, "code": code})
}

// Paginated writes a page of rows with the standard pagination envelope.
func Paginated(c *gin.Context, status int, total int64, page, limit int, data interface{}) {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	c.JSON(status, gin.H{
		"success": true,
		"pagination": gin.H{
			"total":      total,
			"page":       page,
			"limit":      limit,
			"totalPages": totalPages,
		},
		"data": data,
	})
}
