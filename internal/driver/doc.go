// Package driver wraps the web server's site activation tooling behind a
// narrow capability interface.
//
// The site operations only need three things from the web server: activate a
// site config, deactivate it, and reload. Driver exposes exactly those, so the
// orchestration in package site can be tested with MockDriver and failures can
// be injected per call.
//
// # Apache
//
// ApacheDriver shells out through a CommandRunner (normally an
// executor.Runner, which prints and optionally sudo-prefixes every command):
//
//	EnableSite("blog")   ->  a2ensite blog.conf
//	DisableSite("blog")  ->  a2dissite blog.conf
//	Reload()             ->  systemctl reload apache2
//
// Errors wrap the runner's error with %w, so an *errors.CommandError and its
// exit status survive up to main.
package driver
