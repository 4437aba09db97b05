package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValidAndOverflowsCarousels(t *testing.T) {
	t.Parallel()

	doc := Default()
	if doc.Profile.Name != "Miguel Ivan Calarde" {
		t.Fatalf("profile name = %q", doc.Profile.Name)
	}
	for _, s := range Carousels() {
		cards, err := doc.Cards(s)
		if err != nil {
			t.Fatalf("Cards(%s): %v", s, err)
		}
		if len(cards) < 4 {
			t.Fatalf("Cards(%s) returned %d cards, want enough to scroll", s, len(cards))
		}
	}
	if len(doc.Skills) != 9 {
		t.Fatalf("skill groups = %d, want 9", len(doc.Skills))
	}
	if doc.Skills[0].Category != "Web Development" {
		t.Fatalf("first skill group = %q, want file order kept", doc.Skills[0].Category)
	}
}

func TestCards_MapsFields(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Certifications: []Certification{{
			ID: "c1", Name: "Cert", Issuer: "Issuer", Date: "June 2025",
			Description: "d", CredentialURL: "https://example.com/c1",
		}},
	}
	cards, err := doc.Cards(SectionCertifications)
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	want := Card{ID: "c1", Title: "Cert", Subtitle: "Issuer", Meta: "June 2025", Description: "d", Link: "https://example.com/c1"}
	if len(cards) != 1 || cards[0].ID != want.ID || cards[0].Title != want.Title ||
		cards[0].Subtitle != want.Subtitle || cards[0].Meta != want.Meta || cards[0].Link != want.Link {
		t.Fatalf("cards = %+v, want [%+v]", cards, want)
	}
}

func TestCards_UnknownSection(t *testing.T) {
	t.Parallel()

	doc := Default()
	for _, s := range []Section{SectionSkills, SectionAbout, "nope"} {
		if _, err := doc.Cards(s); !errors.Is(err, ErrUnknownSection) {
			t.Fatalf("Cards(%q) error = %v, want ErrUnknownSection", s, err)
		}
	}
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	s, err := ParseSection("experience")
	if err != nil || s != SectionExperience {
		t.Fatalf("ParseSection(experience) = %q, %v", s, err)
	}
	if _, err := ParseSection("blog"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("ParseSection(blog) error = %v, want ErrUnknownSection", err)
	}
}

func TestParse_JoinsValidationErrors(t *testing.T) {
	t.Parallel()

	data := []byte(`
profile:
  name: ""
projects:
  - id: p1
    title: One
  - id: p1
    title: ""
skills:
  - category: ""
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("Parse accepted an invalid document")
	}
	msg := err.Error()
	for _, want := range []string{
		"profile: name is required",
		`projects[1]: duplicate id "p1"`,
		"projects[1]: title is required",
		"skills[0]: category is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("profile:\n  name: A\n  nickname: B\n"))
	if err == nil {
		t.Fatal("Parse accepted an unknown key")
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	if _, err := Parse(nil); err == nil {
		t.Fatal("Parse accepted an empty document")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	doc, err := Load("")
	if err != nil || doc.Profile.Name == "" {
		t.Fatalf("Load(\"\") = %+v, %v", doc, err)
	}

	path := filepath.Join(t.TempDir(), "folio.yml")
	if err := os.WriteFile(path, []byte("profile:\n  name: Ada\nprojects:\n  - id: a\n    title: Engine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if doc.Profile.Name != "Ada" || len(doc.Projects) != 1 {
		t.Fatalf("loaded %+v", doc)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()

	counts := Default().Counts()
	if counts[SectionCertifications] != 9 {
		t.Fatalf("certifications = %d, want 9", counts[SectionCertifications])
	}
	if counts[SectionSkills] != 34 {
		t.Fatalf("skills = %d, want 34", counts[SectionSkills])
	}
}
