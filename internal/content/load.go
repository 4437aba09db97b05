package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultDocument []byte

// Default returns the built-in portfolio document.
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("content: embedded document: %v", err))
	}
	return doc
}

// Load reads and validates a YAML document from path. An empty path yields
// the built-in document.
func Load(path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected so
// that typos do not silently drop content.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate reports every problem found, joined.
func (d *Document) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Profile.Name) == "" {
		errs = append(errs, errors.New("profile: name is required"))
	}
	if h := d.Profile.Highlight; h != "" && !strings.Contains(d.Profile.Name, h) {
		errs = append(errs, fmt.Errorf("profile: highlight %q is not part of the name", h))
	}

	ids := newIDChecker()
	for i, p := range d.Projects {
		errs = append(errs, ids.check(SectionProjects, i, p.ID, p.Title)...)
	}
	for i, e := range d.Education {
		errs = append(errs, ids.check(SectionEducation, i, e.ID, e.Degree)...)
	}
	for i, c := range d.Certifications {
		errs = append(errs, ids.check(SectionCertifications, i, c.ID, c.Name)...)
	}
	for i, e := range d.Experience {
		errs = append(errs, ids.check(SectionExperience, i, e.ID, e.Role)...)
	}
	for i, g := range d.Skills {
		if strings.TrimSpace(g.Category) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: category is required", i))
		}
	}
	return errors.Join(errs...)
}

type idChecker map[Section]map[string]bool

func newIDChecker() idChecker { return idChecker{} }

func (c idChecker) check(s Section, i int, id, title string) []error {
	var errs []error
	if strings.TrimSpace(id) == "" {
		errs = append(errs, fmt.Errorf("%s[%d]: id is required", s, i))
	} else {
		seen := c[s]
		if seen == nil {
			seen = map[string]bool{}
			c[s] = seen
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate id %q", s, i, id))
		}
		seen[id] = true
	}
	if strings.TrimSpace(title) == "" {
		errs = append(errs, fmt.Errorf("%s[%d]: title is required", s, i))
	}
	return errs
}
