package content

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned for a section that has no carousel.
var ErrUnknownSection = errors.New("content: unknown carousel section")

// ParseSection maps a name such as "projects" to its Section.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Cards returns the cards of a carousel section in display order.
func (d *Document) Cards(s Section) ([]Card, error) {
	switch s {
	case SectionProjects:
		cards := make([]Card, 0, len(d.Projects))
		for _, p := range d.Projects {
			cards = append(cards, Card{
				ID:          p.ID,
				Title:       p.Title,
				Subtitle:    p.Category,
				Description: p.Description,
				ImageURL:    p.ImageURL,
				Link:        p.Link,
				Tags:        p.Technologies,
			})
		}
		return cards, nil
	case SectionCertifications:
		cards := make([]Card, 0, len(d.Certifications))
		for _, c := range d.Certifications {
			cards = append(cards, Card{
				ID:          c.ID,
				Title:       c.Name,
				Subtitle:    c.Issuer,
				Meta:        c.Date,
				Description: c.Description,
				ImageURL:    c.ImageURL,
				Link:        c.CredentialURL,
			})
		}
		return cards, nil
	case SectionExperience:
		cards := make([]Card, 0, len(d.Experience))
		for _, e := range d.Experience {
			cards = append(cards, Card{
				ID:          e.ID,
				Title:       e.Role,
				Subtitle:    e.Organization,
				Meta:        e.Period,
				Description: e.Description,
				ImageURL:    e.ImageURL,
			})
		}
		return cards, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Counts reports the number of entries per section that holds a list.
func (d *Document) Counts() map[Section]int {
	skills := 0
	for _, g := range d.Skills {
		skills += len(g.Skills)
	}
	return map[Section]int{
		SectionProjects:       len(d.Projects),
		SectionSkills:         skills,
		SectionEducation:      len(d.Education),
		SectionCertifications: len(d.Certifications),
		SectionExperience:     len(d.Experience),
	}
}
