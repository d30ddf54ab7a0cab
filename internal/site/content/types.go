package content

// Wire types for the content store's read API. Documents arrive as
// {id, attributes} inside a {data, meta} envelope.

type PageAccueilAttributes struct {
	Titre       string `json:"titre"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
}

type PageAccueil struct {
	ID         int                   `json:"id"`
	Attributes PageAccueilAttributes `json:"attributes"`
}

type PageAProposAttributes struct {
	Titre    string `json:"titre"`
	Histoire string `json:"histoire"`
	Mission  string `json:"mission"`
	Valeurs  string `json:"valeurs"`
}

type PageAPropos struct {
	ID         int                   `json:"id"`
	Attributes PageAProposAttributes `json:"attributes"`
}

type ServiceAttributes struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	Ordre       int    `json:"ordre"`
}

type Service struct {
	ID         int               `json:"id"`
	Attributes ServiceAttributes `json:"attributes"`
}

type PageContactAttributes struct {
	Titre     string `json:"titre"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Horaires  string `json:"horaires"`
}

type PageContact struct {
	ID         int                   `json:"id"`
	Attributes PageContactAttributes `json:"attributes"`
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

type Response[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}
