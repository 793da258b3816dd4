package cli

import (
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/site"
)

func runCreate(mgr *site.Manager, name string) error {
	logger.Debug("creating site %s", name)
	return mgr.Create(name)
}
