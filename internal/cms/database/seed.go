package database

import (
	"log"
	"time"

	"github.com/RoGasore/CALMNESS2/internal/cms/models"
	"gorm.io/gorm"
)

// SeedPermissions creates the public role and a disabled permission row per
// content type and read action. The bootstrap enables them afterwards.
func SeedPermissions(db *gorm.DB) error {
	role := models.Role{
		Name: "Public",
		Type: models.PublicRoleType,
	}
	if err := db.Where(models.Role{Type: models.PublicRoleType}).FirstOrCreate(&role).Error; err != nil {
		return err
	}

	for _, contentType := range models.BootstrapContentTypes() {
		for _, action := range models.ReadActions {
			permission := models.Permission{
				RoleID: role.ID,
				Action: contentType.Action(action),
			}
			result := db.Where(models.Permission{RoleID: role.ID, Action: permission.Action}).FirstOrCreate(&permission)
			if result.Error != nil {
				return result.Error
			}
		}
	}

	log.Println("✅ Public role and permissions seeded successfully")
	return nil
}

// SeedContent creates the default documents for every content type.
func SeedContent(db *gorm.DB) error {
	now := time.Now()
	documents := []models.ContentDocument{
		{
			ContentType: string(models.TypePageAccueil),
			Titre:       "Calmness FI",
			Slogan:      "Le calme est la clé de la maîtrise",
			Description: "Une école de pensée dédiée à la discipline, la sagesse et la sérénité dans le trading.",
			PublishedAt: now,
		},
		{
			ContentType: string(models.TypePageAPropos),
			Titre:       "À Propos de Calmness",
			Histoire:    "Chez Calmness, nous sommes bien plus qu'une simple plateforme de trading. Nous sommes une école de pensée dédiée à la discipline, la sagesse et la sérénité.",
			Mission:     "Transformer la manière de trader en cultivant le calme face aux fluctuations du marché.",
			Valeurs:     "Le calme est la clé de la maîtrise, et la maîtrise est la voie de la liberté.",
			PublishedAt: now,
		},
		{
			ContentType: string(models.TypeService),
			Titre:       "Formations au Trading",
			Description: "Apprenez les bases du trading avec nos formations complètes, de l'analyse technique à la gestion du risque.",
			Ordre:       1,
			PublishedAt: now,
		},
		{
			ContentType: string(models.TypeService),
			Titre:       "Signaux de Trading",
			Description: "Des signaux de haute qualité avec niveaux d'entrée, de sortie et de stop-loss.",
			Ordre:       2,
			PublishedAt: now,
		},
		{
			ContentType: string(models.TypeService),
			Titre:       "Liaison des Comptes",
			Description: "Connexion de vos comptes de trading avec suivi des performances et rapports détaillés.",
			Ordre:       3,
			PublishedAt: now,
		},
		{
			ContentType: string(models.TypePageContact),
			Titre:       "Contactez-nous",
			Adresse:     "Adresse à définir",
			Telephone:   "Téléphone à définir",
			Email:       "contact@calmnesstrading.com",
			Horaires:    "Horaires à définir",
			PublishedAt: now,
		},
	}

	for _, document := range documents {
		where := models.ContentDocument{ContentType: document.ContentType, Titre: document.Titre}
		result := db.Where(where).FirstOrCreate(&document)
		if result.Error != nil {
			return result.Error
		}
	}

	log.Println("✅ Content documents seeded successfully")
	return nil
}
