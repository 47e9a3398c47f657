package http

import (
	projectUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/project"
	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/internal/domain/contact"
	"github.com/pranavsangichetty/portfolio/internal/domain/profile"
	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
)

// Origin tells uploaded files apart from links that were part of the content from the start.
type Origin string

const (
	OriginLocalUpload Origin = "local_upload"
	OriginLinked      Origin = "linked"
)

// refClassifier reports whether a reference points at an ephemeral upload.
type refClassifier interface {
	IsEphemeral(ref string) bool
}

func originOf(refs refClassifier, ref string) Origin {
	if refs != nil && refs.IsEphemeral(ref) {
		return OriginLocalUpload
	}
	return OriginLinked
}

// Profile DTOs
type ProfileDTO struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

func ToProfileDTO(p profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:     p.Name,
		Headline: p.Headline,
		Email:    p.Email,
		GitHub:   p.GitHub,
		LinkedIn: p.LinkedIn,
	}
}

// Resume DTOs
type ResumeDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

type SaveResumeRequest struct {
	ID    int64  `json:"id"`
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

type PatchResumeRequest struct {
	Title *string `json:"title"`
	Type  *string `json:"type"`
	URL   *string `json:"url"`
}

func (req SaveResumeRequest) ToDomain() resume.Resume {
	return resume.Resume{ID: req.ID, Title: req.Title, Type: req.Type, URL: req.URL}
}

func ToResumeDTO(r resume.Resume) ResumeDTO {
	return ResumeDTO{ID: r.ID, Title: r.Title, Type: r.Type, URL: r.URL}
}

func ToResumeDTOs(rs []resume.Resume) []ResumeDTO {
	out := make([]ResumeDTO, len(rs))
	for i, r := range rs {
		out[i] = ToResumeDTO(r)
	}
	return out
}

// Project DTOs
type ProjectDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        *string `json:"link,omitempty"`
	Origin      Origin  `json:"origin"`
}

type CategoryDTO struct {
	Key          string       `json:"key"`
	Label        string       `json:"label"`
	SectionTitle string       `json:"section_title"`
	Description  string       `json:"description"`
	Projects     []ProjectDTO `json:"projects"`
}

func ToCategoryDTO(c projectUC.CategoryProjects, refs refClassifier) CategoryDTO {
	dto := CategoryDTO{
		Key:          string(c.Info.Key),
		Label:        c.Info.Label,
		SectionTitle: c.Info.SectionTitle,
		Description:  c.Info.Description,
		Projects:     make([]ProjectDTO, len(c.Projects)),
	}
	for i, p := range c.Projects {
		dto.Projects[i] = ProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Link:        p.Link,
			Origin:      OriginLinked,
		}
		if p.Link != nil {
			dto.Projects[i].Origin = originOf(refs, *p.Link)
		}
	}
	return dto
}

// Certificate DTOs
type CertificateDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Origin Origin `json:"origin"`
}

func ToCertificateDTOs(certs []certificate.Certificate, refs refClassifier) []CertificateDTO {
	out := make([]CertificateDTO, len(certs))
	for i, c := range certs {
		out[i] = CertificateDTO{ID: c.ID, Name: c.Name, URL: c.URL, Origin: originOf(refs, c.URL)}
	}
	return out
}

// Contact DTOs
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (req ContactRequest) ToDomain() contact.Message {
	return contact.Message{Name: req.Name, Email: req.Email, Message: req.Message}
}

type ContactResponse struct {
	Notification contact.Notification `json:"notification"`
	Form         contact.Message      `json:"form"`
}
