//go:build integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDataFactory concentra a criação de dados de teste no banco.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory cria uma nova fábrica de dados de teste.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser cria um usuário de teste e devolve o uid gerado.
func (f *TestDataFactory) CreateUser(t *testing.T, email, passwordHash string, access int) string {
	t.Helper()
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (email, password_hash, access)
		VALUES ($1, $2, $3) RETURNING uid`,
		email, passwordHash, access).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// CreatePremiumUser cria um usuário com premium vigente até expireDate.
func (f *TestDataFactory) CreatePremiumUser(t *testing.T, email string, expireDate time.Time) string {
	t.Helper()
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users
		(email, password_hash, access, premium, expire_date, payment_status, payment_date)
		VALUES ($1, 'hash', 0, TRUE, $2, 'completed', NOW()) RETURNING uid`,
		email, expireDate).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// CreateCreator cria um criador com a quantidade de vídeos informada.
func (f *TestDataFactory) CreateCreator(t *testing.T, name, slug string, videoCount int) int {
	t.Helper()
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO creators (name, slug)
		VALUES ($1, $2) RETURNING id`, name, slug).Scan(&id)
	require.NoError(t, err)
	for i := 0; i < videoCount; i++ {
		_, err := f.storage.DB.Exec(`INSERT INTO videos (creator_id, title)
			VALUES ($1, $2)`, id, name+" video")
		require.NoError(t, err)
	}
	return id
}

// CreateTag cria uma tag de teste.
func (f *TestDataFactory) CreateTag(t *testing.T, name, slug string) int {
	t.Helper()
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO tags (name, slug)
		VALUES ($1, $2) RETURNING id`, name, slug).Scan(&id)
	require.NoError(t, err)
	return id
}
