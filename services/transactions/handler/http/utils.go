package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/ecotrack/internal/pkg/http"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/transactions"
)

// renderError maps use case errors onto HTTP responses. Upstream failures
// keep the upstream status and body.
func renderError(c echo.Context, err error) error {
	var upstreamErr *httpclient.UpstreamError

	switch {
	case errors.Is(err, transactions.ErrMissingSyncTarget):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, transactions.ErrSyncInProgress):
		return utils.ConflictResponse(c, "Sync already in progress")
	case errors.Is(err, transactions.ErrPageBudgetExceeded):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &upstreamErr):
		return utils.ErrorResponseHandler(c, upstreamErr.StatusCode, upstreamBody(upstreamErr.Body))
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

func upstreamBody(body []byte) interface{} {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
