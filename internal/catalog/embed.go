package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

// TemplateData contains data for template rendering. Generated source refers
// to the host game's module path, so the same templates work in any project.
type TemplateData struct {
	// ProjectName is the game project's display name.
	ProjectName string

	// ModulePath is the host game's Go module path (e.g. "example.com/mygame").
	ModulePath string
}

// File is one rendered template file.
type File struct {
	// Path is the target path relative to the module's source folder, with
	// the .tmpl extension stripped.
	Path string

	// Content is the rendered file content, written verbatim.
	Content []byte
}

// Render renders a module's embedded templates.
func Render(moduleName string, data TemplateData) ([]File, error) {
	root := "templates/" + moduleName

	var files []File
	err := fs.WalkDir(templatesFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("no templates for module %q: %w", moduleName, err)
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		tmpl, err := template.New(filepath.Base(p)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", p, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", p, err)
		}

		files = append(files, File{
			Path:    strings.TrimSuffix(rel, ".tmpl"),
			Content: buf.Bytes(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ListTemplateFiles returns the target paths of a module's templates,
// relative to its source folder.
func ListTemplateFiles(moduleName string) ([]string, error) {
	root := "templates/" + moduleName

	var paths []string
	err := fs.WalkDir(templatesFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, strings.TrimSuffix(filepath.ToSlash(rel), ".tmpl"))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
