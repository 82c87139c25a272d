package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ryanlewis/textgrid"
	"github.com/ryanlewis/textgrid/internal/golden"
)

var (
	outDir    = flag.String("out", "testdata/goldens", "Output directory")
	scenarios = flag.String("scenarios", "testdata/scenarios.yaml", "Scenario list to generate from")
	only      = flag.String("only", "", "Space-separated list of scenario names to regenerate")
	strict    = flag.Bool("strict", false, "Exit on any warning")
)

func main() {
	flag.Parse()

	f, err := os.Open(*scenarios)
	if err != nil {
		log.Fatalf("Failed to open scenarios: %v", err)
	}
	list, err := golden.LoadScenarios(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to load scenarios: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory %s: %v", *outDir, err)
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Fields(*only) {
		wanted[name] = true
	}

	for i := range list {
		s := &list[i]
		if len(wanted) > 0 && !wanted[s.Name] {
			continue
		}
		if err := generateGoldenFile(s); err != nil {
			if *strict {
				log.Fatalf("Failed to generate golden file: %v", err)
			}
			log.Printf("Warning: %v", err)
		}
	}

	log.Println("Golden file generation complete")
}

func generateGoldenFile(s *golden.Scenario) error {
	outFile := filepath.Join(*outDir, s.Name+".md")
	log.Printf("Generating %s", outFile)

	g, err := scenarioGrid(s)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	opts, err := scenarioOptions(s)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	placed, err := g.Write(s.Text, opts...)
	if err != nil {
		return fmt.Errorf("scenario %s: write: %w", s.Name, err)
	}
	art := strings.TrimSuffix(g.Dump("\n"), "\n")

	s.Placed = placed
	s.Generated = time.Now().UTC().Format("2006-01-02")
	s.Generator = "generate-goldens"
	s.ChecksumSHA256 = golden.Checksum(art)

	data, err := golden.Format(s, art)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outFile, err)
	}
	return nil
}

func scenarioGrid(s *golden.Scenario) (*textgrid.Grid, error) {
	if len(s.Template) > 0 {
		return textgrid.FromMap(s.TemplateText())
	}
	return textgrid.New(s.Width, s.Height)
}

func scenarioOptions(s *golden.Scenario) ([]textgrid.Option, error) {
	var opts []textgrid.Option
	if s.Direction != "" {
		d, err := textgrid.ParseDirection(s.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textgrid.WithDirection(d))
	}
	if s.Justify != "" {
		j, err := textgrid.ParseJustification(s.Justify)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textgrid.WithJustification(j))
	}
	if s.Anchor != "" {
		a, err := textgrid.ParseAnchor(s.Anchor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textgrid.WithAnchor(a))
	}
	if s.Wrap != nil {
		opts = append(opts, textgrid.WithWrapping(*s.Wrap))
	}
	if s.Truncate != nil {
		opts = append(opts, textgrid.WithTruncation(*s.Truncate))
	}
	if s.Spacing != nil {
		opts = append(opts, textgrid.WithWordSpacing(*s.Spacing))
	}
	if s.LookAhead != nil {
		opts = append(opts, textgrid.WithLookAhead(*s.LookAhead))
	}
	if r, ok := s.BlankRune(); ok {
		opts = append(opts, textgrid.WithNonWrappingBlank(r))
	}
	return opts, nil
}
