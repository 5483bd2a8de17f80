// Package payment contém a lógica de negócio de pagamentos: criação do
// checkout PIX, consulta de status e reconciliação com o Mercado Pago.
//
// A reconciliação é sempre síncrona e sob demanda (pull): nenhuma rotina de
// fundo revisita pagamentos, e nenhuma falha é reexecutada dentro da
// requisição.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/mercadopago"
	"github.com/mateuslro/creator-hub/internal/models"
)

// PaymentRepository descreve a persistência de pagamentos e da concessão
// de premium ao usuário.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment models.Payment) (int, error)
	GetPayment(ctx context.Context, id int) (*models.Payment, error)
	GetPaymentByGatewayID(ctx context.Context, paymentID string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID, status string) error
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	GrantPremium(ctx context.Context, userUID string, expireDate time.Time, paymentStatus string) error
	UpdatePaymentStatusForUser(ctx context.Context, userUID, paymentStatus string) error
}

// GatewayClient descreve as operações consumidas do Mercado Pago.
type GatewayClient interface {
	CreatePayment(ctx context.Context, req mercadopago.CreatePaymentRequest) (*mercadopago.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
}

// CheckoutResult é o resultado da criação de um pagamento PIX.
type CheckoutResult struct {
	ID           int     `json:"id"`
	PaymentID    string  `json:"paymentId"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	QRCode       string  `json:"qrCode"`
	QRCodeBase64 string  `json:"qrCodeBase64"`
	TicketURL    string  `json:"ticketUrl"`
}

// Service implementa o checkout e o reconciliador de status de pagamento.
type Service struct {
	repo      PaymentRepository
	gateway   GatewayClient
	planPrice float64
	planDays  int
	log       *slog.Logger
}

// New cria um novo Service de pagamentos.
func New(repo PaymentRepository, gateway GatewayClient, planPrice float64, planDays int, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		gateway:   gateway,
		planPrice: planPrice,
		planDays:  planDays,
		log:       log,
	}
}

// CreateCheckout cria um pagamento PIX no gateway para o plano premium e
// registra o pagamento local com status pending.
func (s *Service) CreateCheckout(ctx context.Context, userUID string) (*CheckoutResult, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}

	gwPayment, err := s.gateway.CreatePayment(ctx, mercadopago.CreatePaymentRequest{
		TransactionAmount: s.planPrice,
		Description:       "Assinatura premium",
		PaymentMethodID:   "pix",
		Payer:             mercadopago.Payer{Email: user.Email},
		ExternalReference: userUID,
		Metadata: map[string]string{
			"user_uid": userUID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gateway create payment: %w", err)
	}

	paymentID := strconv.FormatInt(gwPayment.ID, 10)
	status := mercadopago.NormalizeStatus(gwPayment.Status)
	id, err := s.repo.SavePayment(ctx, models.Payment{
		UserUID:   userUID,
		PaymentID: paymentID,
		Status:    status,
		Amount:    gwPayment.TransactionAmount,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("created pix checkout",
		slog.Int("id", id), slog.String("payment_id", paymentID))

	return &CheckoutResult{
		ID:           id,
		PaymentID:    paymentID,
		Status:       status,
		Amount:       gwPayment.TransactionAmount,
		QRCode:       gwPayment.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: gwPayment.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    gwPayment.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

// StatusByID devolve o status armazenado do pagamento pelo id interno.
func (s *Service) StatusByID(ctx context.Context, id int) (*models.Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

// CheckPayment consulta o gateway pelo id atribuído por ele, reconcilia o
// registro local e devolve o status normalizado reportado pelo gateway.
func (s *Service) CheckPayment(ctx context.Context, gatewayPaymentID string) (string, error) {
	gwPayment, err := s.gateway.GetPayment(ctx, gatewayPaymentID)
	if err != nil {
		return "", err
	}
	status := mercadopago.NormalizeStatus(gwPayment.Status)
	if err := s.reconcile(ctx, gatewayPaymentID, status); err != nil {
		s.log.Error("failed to reconcile payment", sl.Err(err))
	}
	return status, nil
}

// ProcessWebhookEvent trata uma notificação do gateway. O estado do payload
// nunca é confiado: o pagamento é sempre reconsultado pelo id.
func (s *Service) ProcessWebhookEvent(ctx context.Context, gatewayPaymentID string) error {
	gwPayment, err := s.gateway.GetPayment(ctx, gatewayPaymentID)
	if err != nil {
		return err
	}
	status := mercadopago.NormalizeStatus(gwPayment.Status)
	return s.reconcile(ctx, gatewayPaymentID, status)
}

// reconcile atualiza o registro local e, na transição para completed,
// concede premium ao usuário do pagamento.
func (s *Service) reconcile(ctx context.Context, gatewayPaymentID, status string) error {
	stored, err := s.repo.GetPaymentByGatewayID(ctx, gatewayPaymentID)
	if err != nil {
		return err
	}
	if stored.Status == status {
		return nil
	}

	if err := s.repo.UpdatePaymentStatus(ctx, gatewayPaymentID, status); err != nil {
		return err
	}

	switch status {
	case models.PaymentStatusCompleted:
		if err := s.grantPremium(ctx, stored.UserUID); err != nil {
			return err
		}
	case models.PaymentStatusFailed:
		if err := s.repo.UpdatePaymentStatusForUser(ctx, stored.UserUID, status); err != nil {
			return err
		}
	}

	s.log.Info("reconciled payment",
		slog.String("payment_id", gatewayPaymentID),
		slog.String("from", stored.Status),
		slog.String("to", status))
	return nil
}

// grantPremium estende o premium a partir da expiração vigente, quando ainda
// futura, ou de agora, quando já vencida ou ausente.
func (s *Service) grantPremium(ctx context.Context, userUID string) error {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return err
	}
	base := time.Now().UTC()
	if user.ExpireDate != nil && user.ExpireDate.After(base) {
		base = user.ExpireDate.UTC()
	}
	expire := base.AddDate(0, 0, s.planDays)
	return s.repo.GrantPremium(ctx, userUID, expire, models.PaymentStatusCompleted)
}
