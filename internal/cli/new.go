package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/smake-dev/smake/internal/logger"
)

const scriptTemplate = `-- {{.Name}}
-- created {{.Date}}
{{if .Feedback}}
-- {{.Feedback}}
{{end}}`

const starterBuildfile = `{
  "database": "app.db",
  "vars": {},
  "targets": {
    "all": [
      "%s"
    ]
  }
}
`

type scriptTemplateData struct {
	Name     string
	Date     string
	Feedback string
}

// New scaffolds a SQL script file. When no buildfile exists yet a
// starter one referencing the script is written alongside it. Existing
// files are never overwritten.
func New(config *Config, name string) (int, error) {
	if name == "" {
		return 2, &ConfigError{Field: "name", Message: "a script name is required"}
	}
	if !strings.HasSuffix(name, ".sql") {
		name += ".sql"
	}

	if _, err := os.Stat(name); err == nil {
		return 2, fmt.Errorf("refusing to overwrite existing file %s", name)
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 1, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tmpl := template.Must(template.New("script").Parse(scriptTemplate))
	f, err := os.Create(name)
	if err != nil {
		return 1, fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	data := scriptTemplateData{
		Name: filepath.Base(name),
		Date: time.Now().Format("2006-01-02"),
	}
	if err := tmpl.Execute(f, data); err != nil {
		return 1, fmt.Errorf("failed to write %s: %w", name, err)
	}
	logger.Info("created %s", name)

	if _, err := os.Stat(config.BuildfilePath); os.IsNotExist(err) {
		content := fmt.Sprintf(starterBuildfile, filepath.ToSlash(name))
		if err := os.WriteFile(config.BuildfilePath, []byte(content), 0o644); err != nil {
			return 1, fmt.Errorf("failed to create %s: %w", config.BuildfilePath, err)
		}
		logger.Info("created %s", config.BuildfilePath)
	}

	return 0, nil
}
