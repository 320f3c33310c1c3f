package dto

import (
	"art-atlas/internal/domain"
	"art-atlas/internal/glossary"
)

// ArtTypeDTO is an art-type description with its display name.
type ArtTypeDTO struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EducationResponse is the reference material with art types in display order.
type EducationResponse struct {
	Philosophy  domain.Philosophy  `json:"philosophy"`
	Aesthetics  domain.Aesthetics  `json:"aesthetics"`
	ArtTypes    []ArtTypeDTO       `json:"art_types"`
	Materials   domain.Materials   `json:"materials"`
	ArtistRoles domain.ArtistRoles `json:"artist_roles"`
}

// GlossaryEntry is a glossary term with the search match highlighted.
type GlossaryEntry struct {
	glossary.Entry
	TitleHTML      string `json:"title_html"`
	DefinitionHTML string `json:"definition_html"`
}

// GlossaryResponse is a filtered glossary.
type GlossaryResponse struct {
	Entries    []GlossaryEntry `json:"entries"`
	Categories []string        `json:"categories"`
	Count      int             `json:"count"`
}
