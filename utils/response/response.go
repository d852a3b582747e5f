package response

import (
	"net/http"

	"iconhive/apperrors"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body of every error response
type Envelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error sends a standardized error response
func Error(c *gin.Context, status int, err string, message string) {
	c.JSON(status, Envelope{Error: err, Message: message})
}

// Abort sends a standardized error response and stops the handler chain
func Abort(c *gin.Context, status int, err string, message string) {
	c.AbortWithStatusJSON(status, Envelope{Error: err, Message: message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// StatusFor maps a domain error to the HTTP status the API answers with
func StatusFor(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.EmptyInput, apperrors.InvalidParameter:
		return http.StatusBadRequest
	case apperrors.UpstreamError, apperrors.ImageLoadError:
		return http.StatusBadGateway
	case apperrors.SourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError sends the envelope for a domain error, using its code as the error field
func FromError(c *gin.Context, err error, message string) {
	code := string(apperrors.CodeOf(err))
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	Error(c, StatusFor(err), code, message+": "+err.Error())
}
