package catalog

// ServiceDetails describes a priced offering. The catalog is static client
// configuration, not content-store data.
type ServiceDetails struct {
	Name        string
	Price       float64
	Currency    string
	Period      string
	Description string
	Features    []string
}

var serviceDetails = map[string]ServiceDetails{
	"formations-basique": {
		Name:        "Formation Basique",
		Price:       150,
		Currency:    "$",
		Description: "Formation complète pour débuter en trading",
		Features:    []string{"Bases du trading", "Analyse technique niveau 1", "Gestion du risque", "Support prioritaire", "Certificat de completion"},
	},
	"formations-avancee": {
		Name:        "Formation Avancée",
		Price:       300,
		Currency:    "$",
		Description: "Formation avancée pour progresser rapidement",
		Features:    []string{"Analyse technique avancée", "Analyse fondamentale", "Stratégies de trading", "Mentoring individuel", "Accès aux signaux"},
	},
	"formations-elite": {
		Name:        "Formation Elite",
		Price:       1500,
		Currency:    "$",
		Description: "Formation professionnelle complète",
		Features:    []string{"Trading algorithmique", "Gestion de portefeuille", "Accès VIP aux signaux", "Coaching 1-on-1", "Accès aux outils pro"},
	},
	"signaux-premium": {
		Name:        "Signaux Premium",
		Price:       75,
		Currency:    "$",
		Period:      "/mois",
		Description: "Signaux de trading quotidiens pour traders actifs",
		Features:    []string{"Signaux quotidiens", "Toutes les paires de devises", "Notifications push", "Analyse technique détaillée", "Support prioritaire", "Historique des performances"},
	},
	"signaux-vip": {
		Name:        "Signaux VIP",
		Price:       150,
		Currency:    "$",
		Period:      "/mois",
		Description: "Signaux VIP pour professionnels",
		Features:    []string{"Tout du plan Premium", "Signaux en temps réel", "Alertes personnalisées", "Accès aux algorithmes", "Coaching individuel", "Support 24/7"},
	},
	"liaison-comptes": {
		Name:        "Liaison des Comptes",
		Price:       100,
		Currency:    "$",
		Description: "Service de liaison de comptes de trading",
		Features:    []string{"Connexion automatique", "Suivi des performances", "Rapports détaillés", "Support technique", "Sécurité maximale"},
	},
}

func Lookup(serviceCode string) (ServiceDetails, bool) {
	details, ok := serviceDetails[serviceCode]
	return details, ok
}

// Offering pairs a service code with its details, for listing pages.
type Offering struct {
	Code string
	ServiceDetails
}

var offeringOrder = []string{
	"formations-basique",
	"formations-avancee",
	"formations-elite",
	"signaux-premium",
	"signaux-vip",
	"liaison-comptes",
}

// Offerings returns the catalog in display order.
func Offerings() []Offering {
	offerings := make([]Offering, 0, len(offeringOrder))
	for _, code := range offeringOrder {
		offerings = append(offerings, Offering{Code: code, ServiceDetails: serviceDetails[code]})
	}
	return offerings
}

// PaymentMethod is a selectable payment channel on the payment page.
type PaymentMethod struct {
	ID          string
	Name        string
	Description string
	Type        string
	Countries   []string
}

var paymentMethods = []PaymentMethod{
	{
		ID:          "bank",
		Name:        "Virement Bancaire",
		Description: "Transfert direct depuis votre compte bancaire",
		Type:        "bank",
		Countries:   []string{"France", "RDC", "Belgique", "Suisse"},
	},
	{
		ID:          "crypto",
		Name:        "Cryptomonnaie",
		Description: "Bitcoin, Ethereum et autres cryptomonnaies",
		Type:        "crypto",
		Countries:   []string{"Global"},
	},
	{
		ID:          "mobile",
		Name:        "Mobile Money",
		Description: "Orange Money, MTN, Airtel Money",
		Type:        "mobile",
		Countries:   []string{"RDC", "Côte d'Ivoire", "Sénégal", "Cameroun"},
	},
	{
		ID:          "card",
		Name:        "Carte Bancaire",
		Description: "Visa, Mastercard, American Express",
		Type:        "card",
		Countries:   []string{"France", "RDC", "Belgique", "Suisse"},
	},
	{
		ID:          "paypal",
		Name:        "PayPal",
		Description: "Paiement sécurisé via PayPal",
		Type:        "card",
		Countries:   []string{"France", "RDC", "Belgique"},
	},
}

func PaymentMethods() []PaymentMethod {
	return paymentMethods
}

func IsValidPaymentMethod(id string) bool {
	for _, method := range paymentMethods {
		if method.ID == id {
			return true
		}
	}
	return false
}
