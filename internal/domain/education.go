package domain

// EducationalContent is the reference material shipped alongside the items.
type EducationalContent struct {
	Philosophy  Philosophy                   `json:"philosophy"`
	Aesthetics  Aesthetics                   `json:"aesthetics"`
	ArtTypes    map[string]string            `json:"art_types"`
	Materials   Materials                    `json:"materials"`
	ArtistRoles ArtistRoles                  `json:"artist_roles"`
	Glossary    map[string]map[string]string `json:"glossary"`
}

type Philosophy struct {
	Description string   `json:"description"`
	KeyConcepts []string `json:"key_concepts"`
}

type Aesthetics struct {
	Description string   `json:"description"`
	Criteria    []string `json:"criteria"`
}

type Materials struct {
	Traditional []string `json:"traditional"`
	Modern      []string `json:"modern"`
}

type ArtistRoles struct {
	Traditional  TraditionalRole  `json:"traditional"`
	Contemporary ContemporaryRole `json:"contemporary"`
}

type TraditionalRole struct {
	Description     string      `json:"description"`
	Characteristics []string    `json:"characteristics"`
	GenderRoles     GenderRoles `json:"gender_roles"`
}

type GenderRoles struct {
	MaleArtists   string `json:"male_artists"`
	FemaleArtists string `json:"female_artists"`
}

type ContemporaryRole struct {
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
}
