package cli

import (
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/site"
)

func runDisable(mgr *site.Manager, name string, withHosts bool) error {
	logger.DebugFields("disabling site", map[string]interface{}{
		"site":  name,
		"hosts": withHosts,
	})
	return mgr.Disable(name, withHosts)
}
