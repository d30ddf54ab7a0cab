package models

import (
	"fmt"
	"time"
)

type ContentType string

const (
	TypePageAccueil ContentType = "page-accueil"
	TypePageAPropos ContentType = "page-a-propos"
	TypeService     ContentType = "service"
	TypePageContact ContentType = "page-contact"
)

// BootstrapContentTypes is the fixed, ordered list of content types whose
// public read permissions are enabled at startup.
func BootstrapContentTypes() []ContentType {
	return []ContentType{
		TypePageAccueil,
		TypePageAPropos,
		TypeService,
		TypePageContact,
	}
}

func (t ContentType) IsValid() bool {
	switch t {
	case TypePageAccueil, TypePageAPropos, TypeService, TypePageContact:
		return true
	default:
		return false
	}
}

// IsCollection reports whether the content type holds multiple documents.
// Only services do; the pages are single types.
func (t ContentType) IsCollection() bool {
	return t == TypeService
}

// Action builds the permission action identifier for a read operation,
// e.g. "api::page-accueil.page-accueil.find".
func (t ContentType) Action(op string) string {
	return fmt.Sprintf("api::%s.%s.%s", t, t, op)
}

// ReadActions are the two read operations gated per content type.
var ReadActions = []string{"find", "findOne"}

// ContentDocument is a flat managed document. Each content type uses the
// subset of attributes that applies to it; unused fields stay empty.
type ContentDocument struct {
	ID          uint   `gorm:"primaryKey"`
	ContentType string `gorm:"index"`

	Titre       string
	Slogan      string
	Description string
	Histoire    string
	Mission     string
	Valeurs     string
	Adresse     string
	Telephone   string
	Email       string
	Horaires    string
	Ordre       int

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt time.Time
}

func (d *ContentDocument) Validate() error {
	if !ContentType(d.ContentType).IsValid() {
		return fmt.Errorf("invalid content type: %s", d.ContentType)
	}
	return nil
}
