package faq

import "strings"

type Entry struct {
	Question string
	Answer   string
}

var entries = []Entry{
	{
		Question: "Qu'est-ce que Calmness FI ?",
		Answer:   "Calmness FI est une plateforme de trading éducative qui se concentre sur l'enseignement de la discipline, de la sagesse et de la sérénité dans le trading. Nous formons des traders maîtres de leur art en cultivant le calme face aux fluctuations du marché.",
	},
	{
		Question: "Comment commencer avec Calmness FI ?",
		Answer:   "Pour commencer, vous pouvez vous inscrire sur notre plateforme, suivre nos formations gratuites, et rejoindre notre communauté de traders. Nous offrons des ressources éducatives complètes pour tous les niveaux.",
	},
	{
		Question: "Vos services sont-ils adaptés aux débutants ?",
		Answer:   "Absolument ! Nos formations sont conçues pour tous les niveaux, des débutants complets aux traders expérimentés. Nous commençons par les bases et progressons vers des concepts plus avancés.",
	},
	{
		Question: "Y a-t-il un support client ?",
		Answer:   "Oui, notre équipe est disponible pour vous accompagner dans votre parcours de trading. Nous offrons un support personnalisé avec des sessions individuelles avec nos experts, des révisions de portefeuille, et un coaching personnalisé.",
	},
	{
		Question: "Quels types de formations proposez-vous ?",
		Answer:   "Nous proposons des formations complètes incluant l'analyse technique, la gestion du risque, la psychologie du trading, et notre méthode unique de maîtrise émotionnelle. Toutes nos formations incluent des sessions pratiques et un suivi personnalisé.",
	},
	{
		Question: "Proposez-vous des signaux de trading ?",
		Answer:   "Oui, nous fournissons des signaux de trading de haute qualité basés sur notre analyse technique approfondie. Nos signaux incluent des niveaux d'entrée, de sortie, et de stop-loss avec des explications détaillées.",
	},
	{
		Question: "Comment gérez-vous le risque ?",
		Answer:   "La gestion du risque est au cœur de notre méthode. Nous enseignons des techniques de position sizing, de diversification, et de protection du capital. Chaque trade est analysé avec un ratio risque/récompense optimal.",
	},
	{
		Question: "Y a-t-il une garantie de satisfaction ?",
		Answer:   "Nous offrons une garantie de satisfaction de 30 jours sur tous nos services. Si vous n'êtes pas satisfait, nous vous remboursons intégralement.",
	},
}

func Entries() []Entry {
	return entries
}

// Search filters entries on a case-insensitive substring match against both
// question and answer. An empty term returns every entry.
func Search(items []Entry, term string) []Entry {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	var matched []Entry
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Question), needle) ||
			strings.Contains(strings.ToLower(item.Answer), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Toggle implements the single-open accordion: opening an item closes any
// previously open one, and toggling the open item closes it.
func Toggle(open []int, index int) []int {
	for _, i := range open {
		if i == index {
			return []int{}
		}
	}
	return []int{index}
}

// IsOpen reports whether index is in the open set.
func IsOpen(open []int, index int) bool {
	for _, i := range open {
		if i == index {
			return true
		}
	}
	return false
}
