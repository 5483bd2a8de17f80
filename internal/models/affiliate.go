package models

import "time"

// AffiliateEvent representa um evento de conversão CPA recebido pelo
// endpoint de postback. ClickID é o identificador repassado pela rede
// de afiliados na origem do clique.
type AffiliateEvent struct {
	ID        int       `json:"id"`
	ClickID   string    `json:"click_id"`
	Event     string    `json:"event"`
	Amount    float64   `json:"amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
