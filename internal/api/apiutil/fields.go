package apiutil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/codr1/Matchday/internal/leagues"
)

func ParsePositiveInt64Field(raw string, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, leagues.Validation(fmt.Sprintf("%s is required", field))
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, leagues.Validation(fmt.Sprintf("%s must be a positive integer", field))
	}
	return value, nil
}

// PathID parses the {id} path value of a route.
func PathID(r *http.Request) (int64, error) {
	return ParsePositiveInt64Field(r.PathValue("id"), "id")
}
