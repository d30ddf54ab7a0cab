package dto

import (
	"time"

	"github.com/RoGasore/CALMNESS2/internal/cms/models"
)

// Attributes is the wire shape of a document's fields. Empty attributes are
// omitted so each content type only exposes what it uses.
type Attributes struct {
	Titre       string    `json:"titre,omitempty"`
	Slogan      string    `json:"slogan,omitempty"`
	Description string    `json:"description,omitempty"`
	Histoire    string    `json:"histoire,omitempty"`
	Mission     string    `json:"mission,omitempty"`
	Valeurs     string    `json:"valeurs,omitempty"`
	Adresse     string    `json:"adresse,omitempty"`
	Telephone   string    `json:"telephone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Horaires    string    `json:"horaires,omitempty"`
	Ordre       int       `json:"ordre,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Document struct {
	ID         uint       `json:"id"`
	Attributes Attributes `json:"attributes"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Response is the envelope returned by every content read endpoint:
// data holds a document or a document list, meta carries pagination for lists.
type Response struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

func FromModel(m models.ContentDocument) Document {
	return Document{
		ID: m.ID,
		Attributes: Attributes{
			Titre:       m.Titre,
			Slogan:      m.Slogan,
			Description: m.Description,
			Histoire:    m.Histoire,
			Mission:     m.Mission,
			Valeurs:     m.Valeurs,
			Adresse:     m.Adresse,
			Telephone:   m.Telephone,
			Email:       m.Email,
			Horaires:    m.Horaires,
			Ordre:       m.Ordre,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
			PublishedAt: m.PublishedAt,
		},
	}
}

func FromModels(ms []models.ContentDocument) []Document {
	docs := make([]Document, 0, len(ms))
	for _, m := range ms {
		docs = append(docs, FromModel(m))
	}
	return docs
}
