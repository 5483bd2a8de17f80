package models

import "time"

// Status possíveis de uma solicitação de remoção de conteúdo.
const (
	RemovalStatusPending  = "pendente"
	RemovalStatusResolved = "resolvido"
)

// RemovalRequest representa uma denúncia pública de remoção de conteúdo,
// criada pelo formulário aberto e lida apenas pela administração.
type RemovalRequest struct {
	ID        int       `json:"id"`
	URL       string    `json:"url"`
	Reason    string    `json:"reason"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
