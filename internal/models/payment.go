package models

import "time"

// Status normalizado de um pagamento. O status bruto do gateway é convertido
// para um destes três valores antes de qualquer persistência ou resposta.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment representa um pagamento registrado localmente. PaymentID é a
// referência atribuída pelo gateway (Mercado Pago) e é única por pagamento.
type Payment struct {
	ID              int       `json:"id"`
	UserUID         string    `json:"user_uid"`
	PaymentID       string    `json:"payment_id"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transaction_date"`
}

// PremiumStatus é o resultado da verificação de direito premium de um usuário.
// IsActive é recalculado a cada chamada a partir da data de expiração
// armazenada; a flag Premium sozinha não é autoritativa.
type PremiumStatus struct {
	Premium       bool       `json:"premium"`
	ExpireDate    *time.Time `json:"expireDate"`
	PaymentStatus string     `json:"paymentStatus,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate"`
	IsActive      bool       `json:"isActive"`
}
