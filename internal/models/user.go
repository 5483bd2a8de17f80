// Package models contém o modelo de domínio do usuário da plataforma,
// incluindo os dados da conta, o hash da senha e os campos da assinatura premium.
// A estrutura é usada na lógica de negócio e no acesso ao armazenamento.
package models

import "time"

// AdminAccessLevel é o nível de acesso que concede capacidade administrativa.
const AdminAccessLevel = 1

// User representa um usuário cadastrado na plataforma.
type User struct {
	UID           string     // Identificador único do usuário
	Email         string     // E-mail normalizado em minúsculas
	PasswordHash  string     // Hash bcrypt da senha
	Access        int        // Nível de acesso, 1 = admin
	Premium       bool       // Flag bruta de assinatura premium
	ExpireDate    *time.Time // Data de expiração do premium, nil quando nunca assinou
	PaymentStatus string     // Último status de pagamento conhecido
	PaymentDate   *time.Time // Data do último pagamento aprovado
}

// IsAdmin informa se o usuário possui nível de acesso administrativo.
func (u *User) IsAdmin() bool {
	return u.Access == AdminAccessLevel
}
