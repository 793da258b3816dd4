package cli

import (
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/site"
)

// runRemove deletes the site after the manager's confirmation prompt
func runRemove(mgr *site.Manager, name string) error {
	logger.Debug("removing site %s", name)
	return mgr.Delete(name)
}

func runRemoveHost(mgr *site.Manager, name string) error {
	logger.Debug("removing hosts entries for %s", name)
	return mgr.RemoveHost(name)
}
