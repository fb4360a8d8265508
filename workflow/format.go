package workflow

import "github.com/valyala/fasttemplate"

// ExpandFormat replaces %(name) placeholders in a format string with the
// corresponding values. Unknown placeholders are left unchanged.
//
// Example:
//
//	ExpandFormat("%(type)/%(owner)/%(ticket)", map[string]string{
//	    "type": "feature", "owner": "wolf", "ticket": "SE-123",
//	})
//	// "feature/wolf/SE-123"
func ExpandFormat(format string, vars map[string]string) string {
	if format == "" {
		return ""
	}

	m := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return fasttemplate.ExecuteStringStd(format, "%(", ")", m)
}
