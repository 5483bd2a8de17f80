// Package sl contém funções auxiliares para o logger slog.
// O objetivo é padronizar os campos estruturados de log,
// em especial o registro de erros.
package sl

import "log/slog"

// Err devolve um slog.Attr com a chave "error" e o texto do erro.
//
// Exemplo:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
