package mercadopago

// CreatePaymentRequest é o corpo enviado ao gateway na criação de um
// pagamento PIX.
type CreatePaymentRequest struct {
	TransactionAmount float64           `json:"transaction_amount"`
	Description       string            `json:"description"`
	PaymentMethodID   string            `json:"payment_method_id"`
	Payer             Payer             `json:"payer"`
	ExternalReference string            `json:"external_reference,omitempty"`
	NotificationURL   string            `json:"notification_url,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Payer identifica o pagador junto ao gateway.
type Payer struct {
	Email string `json:"email"`
}

// Payment é a representação de um pagamento devolvida pelo gateway.
type Payment struct {
	ID                 int64              `json:"id"`
	Status             string             `json:"status"`
	StatusDetail       string             `json:"status_detail"`
	TransactionAmount  float64            `json:"transaction_amount"`
	DateCreated        string             `json:"date_created"`
	DateApproved       string             `json:"date_approved"`
	ExternalReference  string             `json:"external_reference"`
	PointOfInteraction PointOfInteraction `json:"point_of_interaction"`
	Metadata           map[string]string  `json:"metadata"`
}

// PointOfInteraction carrega os dados do PIX gerado (QR code e copia-e-cola).
type PointOfInteraction struct {
	TransactionData TransactionData `json:"transaction_data"`
}

// TransactionData contém o payload PIX apresentado ao usuário.
type TransactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	TicketURL    string `json:"ticket_url"`
}