package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields checks which query parameters are set and which of them can
// be used directly in a gorm query.
//
// queryFields contains all field names that can be passed to a gorm Where
// statement to specify the fields filtered on. As gorm uses any as the type
// for the Where statement, we cannot use a []string here.
//
// setFields contains all field names set in the query parameters, which is
// useful to filter for zero values without defining pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField is a struct tag that specifies whether the field
		// filters resources directly or is a meta field (like "limit")
		// that is processed by explicit logic elsewhere
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of all fields that are set in the request
// body, to distinguish omitted fields from explicit zero values in PATCH
// requests.
//
// This function reads and restores the request body, it must always be
// called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("json")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}
