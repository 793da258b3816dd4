// Package template renders the files siteup writes to disk from templates
// embedded in the binary.
//
// # Template Organization
//
//	apache/vhost.conf.tmpl   virtual host block for sites-available
//	site/index.html.tmpl     landing page placed in a new site directory
//	site/info.php.tmpl       phpinfo() diagnostic page
//
// The virtual host template has three substitution points: the site name,
// the document root and the log directory.
//
//	conf, err := template.RenderVHost(template.VHostData{
//	    Name:         "blog",
//	    DocumentRoot: "/home/me/projects/web/blog",
//	    LogDir:       "/var/log/apache2",
//	})
//
// Placeholder pages only receive the site name:
//
//	pages, err := template.RenderPlaceholders("blog")
//	for _, p := range pages {
//	    os.WriteFile(filepath.Join(dir, p.FileName), []byte(p.Content), 0644)
//	}
package template
