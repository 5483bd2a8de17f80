package models

// Creator representa um criador de conteúdo do catálogo.
// VideoCount é derivado da contagem de vídeos publicados.
type Creator struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	VideoCount int    `json:"videoCount"`
}

// Tag representa uma categoria de vídeos.
type Tag struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	VideoCount int    `json:"videoCount"`
}

// Pagination descreve a página retornada em listagens do catálogo.
// HasMore indica se existe ao menos mais uma página após a atual.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}
