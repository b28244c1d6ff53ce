package api

import "github.com/sagip-ph/sagip-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "device not found",
		1101: "unknown device location",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrMultipleRequestMade.Error(),

		1300: store.ErrReportNotFound.Error(),
		1301: "query area severity error",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDeviceNotFound        = errorJSON(1100)
	errorUnknownDeviceLocation = errorJSON(1101)

	errorRequestNotExist     = errorJSON(1200)
	errorMultipleRequestMade = errorJSON(1201)

	errorReportNotFound = errorJSON(1300)
	errorAreaSeverity   = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
