package content

// Hard-coded fallback copy, shown whenever the content store is unreachable
// or a document is missing. The page renderers must never show empty fields.

func DefaultAccueil() PageAccueilAttributes {
	return PageAccueilAttributes{
		Titre:       "Calmness FI",
		Slogan:      "Le calme est la clé de la maîtrise",
		Description: "Une école de pensée dédiée à la discipline, la sagesse et la sérénité dans le trading.",
	}
}

func DefaultAPropos() PageAProposAttributes {
	return PageAProposAttributes{
		Titre:    "À Propos de Calmness",
		Histoire: "Chez Calmness, nous sommes bien plus qu'une simple plateforme de trading. Nous sommes une école de pensée dédiée à la discipline, la sagesse et la sérénité.",
		Mission:  "Transformer la manière de trader en cultivant le calme face aux fluctuations du marché.",
		Valeurs:  "Le calme est la clé de la maîtrise, et la maîtrise est la voie de la liberté.",
	}
}

func DefaultServices() []ServiceAttributes {
	return []ServiceAttributes{
		{
			Titre:       "Formations au Trading",
			Description: "Apprenez les bases du trading avec nos formations complètes, de l'analyse technique à la gestion du risque.",
			Ordre:       1,
		},
		{
			Titre:       "Signaux de Trading",
			Description: "Des signaux de haute qualité avec niveaux d'entrée, de sortie et de stop-loss.",
			Ordre:       2,
		},
		{
			Titre:       "Liaison des Comptes",
			Description: "Connexion de vos comptes de trading avec suivi des performances et rapports détaillés.",
			Ordre:       3,
		},
	}
}

func DefaultContact() PageContactAttributes {
	return PageContactAttributes{
		Titre:     "Contactez-nous",
		Adresse:   "Adresse à définir",
		Telephone: "Téléphone à définir",
		Email:     "contact@calmnesstrading.com",
		Horaires:  "Horaires à définir",
	}
}
