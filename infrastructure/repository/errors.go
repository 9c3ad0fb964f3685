package repository

import "errors"

// Código de violação de unicidade do PostgreSQL
const uniqueViolationCode = "23505"

// Erros sentinela compartilhados pelos repositórios
var (
	// ErrDuplicateKey indica violação de chave única (email, tracking code,
	// entrega por campanha/assinante)
	ErrDuplicateKey = errors.New("registro duplicado")

	// ErrNoRowsAffected indica que um comando condicional não encontrou
	// nenhuma linha elegível
	ErrNoRowsAffected = errors.New("nenhuma linha afetada")
)
