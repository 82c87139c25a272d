// Package golden reads and writes the golden layout files under
// testdata/goldens. Each file is markdown with YAML front matter describing
// one write, followed by the expected grid dump in a text code block.
package golden

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Scenario describes one write and, once generated, its outcome.
type Scenario struct {
	Name string `yaml:"name"`

	// Either Template or Width and Height set the starting grid. Template
	// rows use map syntax.
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Template []string `yaml:"template,omitempty"`

	Text      string `yaml:"text"`
	Direction string `yaml:"direction,omitempty"`
	Justify   string `yaml:"justify,omitempty"`
	Anchor    string `yaml:"anchor,omitempty"`
	Wrap      *bool  `yaml:"wrap,omitempty"`
	Truncate  *bool  `yaml:"truncate,omitempty"`
	Spacing   *bool  `yaml:"spacing,omitempty"`
	LookAhead *bool  `yaml:"lookahead,omitempty"`
	Blank     string `yaml:"blank,omitempty"`

	Placed         bool   `yaml:"placed"`
	Generated      string `yaml:"generated,omitempty"`
	Generator      string `yaml:"generator,omitempty"`
	ChecksumSHA256 string `yaml:"checksum_sha256,omitempty"`
}

// ErrNoFrontMatter is returned when a golden file does not start with a
// front matter block.
var ErrNoFrontMatter = errors.New("golden: missing front matter")

const fence = "---"

// Parse reads a golden file and returns its scenario and expected dump.
// The dump has no trailing newline.
func Parse(r io.Reader) (*Scenario, string, error) {
	scanner := bufio.NewScanner(r)

	var front []string
	started, closed := false, false
	for scanner.Scan() {
		line := scanner.Text()
		if line == fence {
			if started {
				closed = true
				break
			}
			started = true
			continue
		}
		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, "", ErrNoFrontMatter
		}
		front = append(front, line)
	}
	if !closed {
		if err := scanner.Err(); err != nil {
			return nil, "", fmt.Errorf("golden: read front matter: %w", err)
		}
		return nil, "", ErrNoFrontMatter
	}

	s := &Scenario{}
	if err := yaml.Unmarshal([]byte(strings.Join(front, "\n")), s); err != nil {
		return nil, "", fmt.Errorf("golden: decode front matter: %w", err)
	}

	var art []string
	inBlock := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "```text") {
			inBlock = true
			continue
		}
		if inBlock && strings.HasPrefix(line, "```") {
			break
		}
		if inBlock {
			art = append(art, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("golden: read dump: %w", err)
	}
	return s, strings.Join(art, "\n"), nil
}

// Format renders a golden file for s with art as the expected dump.
func Format(s *Scenario, art string) ([]byte, error) {
	meta, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("golden: encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	buf.Write(meta)
	buf.WriteString(fence + "\n\n")
	buf.WriteString("```text\n")
	buf.WriteString(art)
	buf.WriteString("\n```\n")
	return buf.Bytes(), nil
}

// Checksum returns the hex SHA-256 of art.
func Checksum(art string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(art)))
}

// LoadScenarios decodes a YAML list of scenarios.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var list []Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("golden: decode scenarios: %w", err)
	}
	for i, s := range list {
		if s.Name == "" {
			return nil, fmt.Errorf("golden: scenario %d has no name", i)
		}
		if len(s.Template) == 0 && (s.Width <= 0 || s.Height <= 0) {
			return nil, fmt.Errorf("golden: scenario %q needs a template or a size", s.Name)
		}
	}
	return list, nil
}

// TemplateText joins the template rows into a single map template.
func (s *Scenario) TemplateText() string {
	return strings.Join(s.Template, "\n")
}

// BlankRune returns the non-wrapping blank rune and whether one is set.
func (s *Scenario) BlankRune() (rune, bool) {
	if s.Blank == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.Blank)
	return r, true
}
