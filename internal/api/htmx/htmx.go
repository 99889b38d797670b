package htmx

import (
	"net/http"
	"strings"
)

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// Trigger returns an HX-Trigger header map firing the given client events.
func Trigger(events ...string) map[string]string {
	if len(events) == 0 {
		return nil
	}
	return map[string]string{"HX-Trigger": strings.Join(events, ",")}
}
