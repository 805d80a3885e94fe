package phrase

import "strings"

// Render substitutes {name} placeholders in a message template with the
// provided variables. Unknown placeholders are left untouched so a typo in
// a configured template is visible in chat instead of silently vanishing.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}

	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
