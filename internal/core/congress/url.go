package congress

import (
	"strings"

	"github.com/lawlens/lawlens/internal/core"
)

// composeURL joins the API origin, a resource prefix, and an optional
// sub-path. Sub-paths are lower-cased; an empty sub-path yields the
// trailing-slash collection URL. The prefix is trusted: callers
// guarantee it is a known resource name, and no network access or
// validation happens here.
func composeURL(origin string, resource core.Resource, subPath string) string {
	return strings.Join([]string{origin, string(resource), strings.ToLower(subPath)}, "/")
}
