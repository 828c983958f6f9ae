package response

import "github.com/gin-gonic/gin"

// Message writes the flat {"message": ...} body used by every error and
// status response in the API.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
