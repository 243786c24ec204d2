package handler // handler defines http handlers

import (
	"encoding/json" // json gives us strict decoding with unknown-field rejection
	"errors"
	"io"
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types
)

// maxPageSize caps the limit query parameter on every list endpoint.
const maxPageSize = 100

// errUnknownID signals a non-numeric id path parameter.
var errUnknownID = errors.New("invalid id")

// bindStrict decodes the request body into v, rejecting payloads that
// carry JSON keys the target struct does not declare. Echo's default
// binder silently drops unknown keys, which would let malformed payloads
// through the shape check.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A second value after the document means trailing garbage.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errUnknownID
	}
	return id, nil
}

// listParams reads the offset and limit query parameters, applying the
// defaults (0 and 100) and capping limit at maxPageSize. Any parsed
// non-negative limit is honored as given, so limit=0 yields an empty
// page; absent, unparsable or negative values keep their defaults.
func listParams(c echo.Context) (offset, limit int) {
	offset, limit = 0, maxPageSize
	if s := c.QueryParam("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			offset = n
		}
	}
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			limit = n
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
