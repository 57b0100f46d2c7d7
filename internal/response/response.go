package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure body shape. Details and Code are omitted
// when empty so a plain 400 stays `{"error": "..."}` on the wire.
type ErrorResponse struct {
	Error   string  `json:"error"`
	Details string  `json:"details,omitempty"`
	Code    ErrCode `json:"code,omitempty"`
}

// Success sends the payload verbatim with the given status code. The lookup
// contract has no envelope: a successful body IS the normalized record.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends a bare `{error}` body.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// FailCode sends an `{error, code}` body using the code's fixed message.
func FailCode(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorResponse{Error: GetMessage(code), Code: code})
}

// FailStore sends the 500 `{error, details, code}` body for store failures.
func FailStore(c *gin.Context, statusCode int, code ErrCode, details string) {
	c.JSON(statusCode, ErrorResponse{Error: GetMessage(code), Details: details, Code: code})
}

// AbortFail aborts the middleware chain and sends an `{error, code}` body.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: GetMessage(code), Code: code})
}
