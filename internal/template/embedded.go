package template

import (
	"embed"
	"fmt"
)

//go:embed apache/*.tmpl
var apacheTemplates embed.FS

//go:embed site/*.tmpl
var siteTemplates embed.FS

// getTemplateFS returns the embed.FS holding the named template group
func getTemplateFS(group string) (embed.FS, error) {
	switch group {
	case "apache":
		return apacheTemplates, nil
	case "site":
		return siteTemplates, nil
	default:
		return embed.FS{}, fmt.Errorf("unknown template group: %s", group)
	}
}
