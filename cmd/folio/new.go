package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/scaffold"
	"github.com/eringen/folio/site"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName   string
	SiteName      string
	SessionSecret string
	Date          string
}

// renamed maps scaffold file names that cannot be embedded as-is.
var renamed = map[string]string{
	"dotenv":    ".env.example",
	"gitignore": ".gitignore",
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new folio site",
		Example: `  folio new mysite
  folio new ~/sites/jane-doe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.OutOrStdout(), args[0])
		},
	}
}

func runNew(out io.Writer, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	name := filepath.Base(filepath.Clean(dir))
	data := scaffoldData{
		ProjectName:   name,
		SiteName:      nav.FormatPageName(name),
		SessionSecret: uuid.NewString(),
		Date:          time.Now().Format("2006-01-02"),
	}

	fmt.Fprintf(out, "Creating new folio site: %s\n\n", dir)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")
		if to, ok := renamed[filepath.Base(outPath)]; ok {
			outPath = filepath.Join(filepath.Dir(outPath), to)
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	if err := writeSiteRecord(filepath.Join(dir, "site.yaml"), data.SiteName); err != nil {
		return err
	}
	fmt.Fprintf(out, "  created %s\n", filepath.Join(dir, "site.yaml"))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  cp .env.example .env")
	fmt.Fprintln(out, "  folio serve --watch")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Edit site.yaml to make the site yours, and add posts under content/posts.")
	return nil
}

// writeSiteRecord writes the default site record, named after the project.
func writeSiteRecord(path, siteName string) error {
	s := site.Default()
	s.Personal.FullName = siteName
	s.Personal.BrandName = strings.ReplaceAll(siteName, " ", "")
	s.Metadata.SiteName = siteName
	s.Metadata.Title = siteName
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("encode site record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write site record: %w", err)
	}
	return nil
}
