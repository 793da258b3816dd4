// Package site implements the site lifecycle operations.
//
// A site is identified by its name, which appears in four places:
//
//	{projects_dir}/{name}           source folder with index.html and info.php
//	{web_root}/{name}               symlink to the source folder
//	{sites_available}/{name}.conf   virtual host config
//	{hosts_file}                    "127.0.0.1 {name}" line
//
// Manager runs the five operations (Create, Enable, Disable, Delete,
// RemoveHost) as fixed sequences of filesystem steps and calls to the
// driver.Driver and hosts.Editor capabilities. The first failure stops the
// operation; steps already taken are left in place.
//
// After its steps succeed, each operation transitions the site's record in
// the config file. Status and List compare the record with what is actually
// on disk and report any drift.
package site
