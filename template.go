package textgrid

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/ryanlewis/textgrid/internal/common"
	"github.com/ryanlewis/textgrid/internal/parser"
)

// FromMap builds a grid from an occupancy map.
//
// Each non-blank line is one row, with surrounding whitespace removed and an
// optional '|' stripped from each end. '.' and ' ' mark free cells; any other
// rune marks an occupied cell. All content starts blank.
//
// Example:
//
//	g, err := textgrid.FromMap(`
//		|......|
//		|..**..|
//	`)
func FromMap(s string) (*Grid, error) {
	return ParseTemplate(strings.NewReader(s), MapTemplate, common.DefaultMarker)
}

// FromContent builds a grid from prefilled content. Cells holding marker are
// free and become blank; every other cell is occupied and keeps its rune.
// Rows follow the same rules as FromMap, so borders let a row keep leading
// and trailing marker cells.
func FromContent(s string, marker rune) (*Grid, error) {
	return ParseTemplate(strings.NewReader(s), ContentTemplate, marker)
}

// ParseTemplate reads a template of the given kind from r. The marker is
// only used by ContentTemplate.
//
// Rows of unequal width are all reported in one error; errors.Is matches it
// against ErrUnequalWidths. A template with no rows returns ErrEmptyTemplate.
func ParseTemplate(r io.Reader, kind TemplateKind, marker rune) (*Grid, error) {
	tmpl, err := parseTemplate(r, kind, marker)
	if err != nil {
		return nil, err
	}
	return gridFromTemplate(tmpl)
}

func parseTemplate(r io.Reader, kind TemplateKind, marker rune) (*parser.Template, error) {
	switch kind {
	case MapTemplate, ContentTemplate:
	default:
		return nil, fmt.Errorf("template kind %d: %w", int(kind), ErrUnsupportedOption)
	}
	return parser.Parse(r, parser.Kind(kind), marker)
}

func gridFromTemplate(t *parser.Template) (*Grid, error) {
	b, err := t.Buffer()
	if err != nil {
		return nil, err
	}
	return &Grid{buf: b}, nil
}

// cleanFSPath validates and cleans a path for use with fs.FS.
// It ensures the path is valid according to fs.ValidPath rules and
// prevents directory traversal.
func cleanFSPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path cannot be empty")
	}
	if strings.HasPrefix(p, "/") {
		return "", errors.New("absolute paths not allowed")
	}
	if strings.ContainsRune(p, '\\') {
		return "", errors.New("backslashes not allowed in fs paths")
	}
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}

// LoadTemplateFS reads a template from fsys. The path must be a valid fs.FS
// path; absolute paths and traversal outside fsys are rejected.
//
// Example with embed.FS:
//
//	//go:embed layouts/*.txt
//	var layouts embed.FS
//
//	g, err := textgrid.LoadTemplateFS(layouts, "layouts/card.txt", textgrid.MapTemplate, ' ')
func LoadTemplateFS(fsys fs.FS, templatePath string, kind TemplateKind, marker rune) (*Grid, error) {
	tmpl, err := loadTemplateFS(fsys, templatePath, kind, marker)
	if err != nil {
		return nil, err
	}
	return gridFromTemplate(tmpl)
}

func loadTemplateFS(fsys fs.FS, templatePath string, kind TemplateKind, marker rune) (*parser.Template, error) {
	if fsys == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	clean, err := cleanFSPath(templatePath)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer file.Close()

	tmpl, err := parseTemplate(file, kind, marker)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", clean, err)
	}
	return tmpl, nil
}

// LoadTemplate reads a template from a file on disk.
func LoadTemplate(filePath string, kind TemplateKind, marker rune) (*Grid, error) {
	tmpl, err := loadTemplate(filePath, kind, marker)
	if err != nil {
		return nil, err
	}
	return gridFromTemplate(tmpl)
}

func loadTemplate(filePath string, kind TemplateKind, marker rune) (*parser.Template, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer file.Close()

	tmpl, err := parseTemplate(file, kind, marker)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", filePath, err)
	}
	return tmpl, nil
}

// cellCount reports the template size in cells, for cache accounting.
func cellCount(t *parser.Template) int {
	if t == nil {
		return 0
	}
	return len(t.States)
}
