package template

import (
	"bytes"
	"fmt"
	"text/template"
)

// VHostData contains the substitution points of the virtual host template
type VHostData struct {
	Name         string
	DocumentRoot string
	LogDir       string
}

// PageData contains the substitution points of the placeholder pages
type PageData struct {
	Name string
}

// Placeholder is a file written into a freshly created site directory
type Placeholder struct {
	FileName string
	Content  string
}

// placeholderFiles lists the pages created for a new site, in write order
var placeholderFiles = []string{"index.html", "info.php"}

// RenderVHost renders the Apache virtual host config for a site
func RenderVHost(data VHostData) (string, error) {
	return render("apache", "vhost.conf", data)
}

// RenderPlaceholders renders every placeholder page for a new site
func RenderPlaceholders(name string) ([]Placeholder, error) {
	pages := make([]Placeholder, 0, len(placeholderFiles))
	for _, file := range placeholderFiles {
		content, err := render("site", file, PageData{Name: name})
		if err != nil {
			return nil, err
		}
		pages = append(pages, Placeholder{FileName: file, Content: content})
	}
	return pages, nil
}

// render executes <group>/<name>.tmpl with data
func render(group, name string, data interface{}) (string, error) {
	tmplPath := fmt.Sprintf("%s/%s.tmpl", group, name)

	fs, err := getTemplateFS(group)
	if err != nil {
		return "", err
	}

	content, err := fs.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("template not found: %s/%s", group, name)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
