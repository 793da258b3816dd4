package cli

import (
	"strings"

	"github.com/ksyq12/siteup/internal/output"
	"github.com/ksyq12/siteup/internal/site"
)

func runList(mgr *site.Manager, jsonOutput bool) error {
	sites, err := mgr.List()
	if err != nil {
		return err
	}

	out := output.New(deps.Stdout)
	if jsonOutput {
		return out.JSON(sites)
	}

	if len(sites) == 0 {
		out.Info("No sites found")
		return nil
	}

	headers := []string{"NAME", "STATE", "LINK", "CONFIG", "HOSTS", "DRIFT"}
	rows := make([][]string, 0, len(sites))
	for _, s := range sites {
		drift := "-"
		if len(s.Drift) > 0 {
			drift = strings.Join(s.Drift, "; ")
		}
		rows = append(rows, []string{
			s.Name,
			s.State,
			yesNo(s.Link),
			yesNo(s.Config),
			yesNo(s.HostEntry),
			drift,
		})
	}

	out.Table(headers, rows)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
