// Package content holds the portfolio document shown by the terminal viewer
// and published by the content server.
package content

// Section names a part of the page. The values double as URL path segments
// and YAML keys.
type Section string

const (
	SectionProjects       Section = "projects"
	SectionSkills         Section = "skills"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionExperience     Section = "experience"
	SectionAbout          Section = "about"
	SectionGitHub         Section = "github"
)

// Sections lists the navigable sections in page order.
func Sections() []Section {
	return []Section{
		SectionProjects,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
		SectionExperience,
		SectionAbout,
		SectionGitHub,
	}
}

// Carousels lists the sections rendered as carousels, in page order.
func Carousels() []Section {
	return []Section{SectionProjects, SectionCertifications, SectionExperience}
}

// Title is the heading shown for the section.
func (s Section) Title() string {
	switch s {
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Skills"
	case SectionEducation:
		return "Education"
	case SectionCertifications:
		return "Certifications"
	case SectionExperience:
		return "Other Work Experience"
	case SectionAbout:
		return "About Me"
	case SectionGitHub:
		return "GitHub"
	default:
		return string(s)
	}
}

// IsCarousel reports whether the section is rendered as a carousel.
func (s Section) IsCarousel() bool {
	switch s {
	case SectionProjects, SectionCertifications, SectionExperience:
		return true
	}
	return false
}

// Document is the whole portfolio.
type Document struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Skills         []SkillGroup    `yaml:"skills" json:"skills"`
	Education      []Education     `yaml:"education" json:"education"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	About          []string        `yaml:"about" json:"about"`
	GitHub         GitHub          `yaml:"github" json:"github"`
}

// Profile is the hero banner and footer owner.
type Profile struct {
	Name string `yaml:"name" json:"name"`
	// Highlight is a word of Name rendered in the accent colour.
	Highlight string `yaml:"highlight,omitempty" json:"highlight,omitempty"`
	Tagline   string `yaml:"tagline" json:"tagline"`
}

type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Category     string   `yaml:"category" json:"category"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	ImageURL     string   `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	Link         string   `yaml:"link,omitempty" json:"link,omitempty"`
}

// SkillGroup is one category of the skills section.
type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Skills   []string `yaml:"skills" json:"skills"`
}

type Education struct {
	ID          string `yaml:"id" json:"id"`
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Years       string `yaml:"years" json:"years"`
	Description string `yaml:"description" json:"description"`
	LogoURL     string `yaml:"logo_url,omitempty" json:"logo_url,omitempty"`
}

type Certification struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Issuer        string `yaml:"issuer" json:"issuer"`
	Date          string `yaml:"date" json:"date"`
	Description   string `yaml:"description" json:"description"`
	LogoURL       string `yaml:"logo_url,omitempty" json:"logo_url,omitempty"`
	CredentialURL string `yaml:"credential_url,omitempty" json:"credential_url,omitempty"`
	ImageURL      string `yaml:"image_url,omitempty" json:"image_url,omitempty"`
}

type Experience struct {
	ID           string `yaml:"id" json:"id"`
	Role         string `yaml:"role" json:"role"`
	Organization string `yaml:"organization" json:"organization"`
	Period       string `yaml:"period" json:"period"`
	Description  string `yaml:"description" json:"description"`
	ImageURL     string `yaml:"image_url,omitempty" json:"image_url,omitempty"`
}

type GitHub struct {
	Heading string `yaml:"heading" json:"heading"`
	Blurb   string `yaml:"blurb" json:"blurb"`
	URL     string `yaml:"url" json:"url"`
}

// Card is the display-ready form of one carousel item.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Meta        string   `json:"meta,omitempty"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
