package cli

import (
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/site"
)

func runEnable(mgr *site.Manager, name string, withHosts bool) error {
	logger.DebugFields("enabling site", map[string]interface{}{
		"site":  name,
		"hosts": withHosts,
	})
	return mgr.Enable(name, withHosts)
}
