// Package config manages the siteup configuration and the per-site state
// records stored in YAML format.
//
// Configuration lives in ~/.config/siteup/config.yaml. Every filesystem
// location the tool touches is a field of Paths, so tests and unusual
// installs can point the web root or the hosts file anywhere.
//
// Example config.yaml:
//
//	paths:
//	  projects_dir: ~/projects/web
//	  web_root: /var/www
//	  sites_available: /etc/apache2/sites-available
//	  sites_enabled: /etc/apache2/sites-enabled
//	  log_dir: /var/log/apache2
//	  hosts_file: /etc/hosts
//	service: apache2
//	sudo: true
//	hosts_method: command
//	sites:
//	  blog:
//	    name: blog
//	    state: enabled
//	    root: /home/me/projects/web/blog
//	    host_entry: true
//
// # Environment Overrides
//
// Any SITEUP_* variable overrides the matching key (SITEUP_WEB_ROOT,
// SITEUP_HOSTS_FILE, SITEUP_SUDO, ...). Variables may also be listed in
// ~/.config/siteup/siteup.env; values already present in the environment win.
//
// # Site Records
//
// Sites maps a site name to its last known state (created, enabled,
// disabled). Records are advisory: operations still inspect the filesystem,
// and a record that disagrees with the artifacts on disk is reported as drift.
//
// # Thread Safety
//
// Config operations are NOT thread-safe.
package config
