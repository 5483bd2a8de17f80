// Package repository implementa o acesso aos dados em PostgreSQL:
// usuários, pagamentos, catálogo, solicitações de remoção, eventos de
// afiliados e tokens de redefinição de senha.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registro do driver pgx para uso com database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound indica que a entidade consultada não existe no armazenamento.
// Mapeado a partir de sql.ErrNoRows nas consultas de leitura.
var ErrNotFound = errors.New("entity not found")

// Storage encapsula a conexão com o PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New abre a conexão com o PostgreSQL e valida com um ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady verifica se o esquema foi aplicado.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
