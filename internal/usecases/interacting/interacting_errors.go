package interacting

import (
	"errors"
)

// Tipos de erros do livro de interações
var (
	ErrInteractionNotFound = errors.New("interação não encontrada")
	ErrLeadNotFound        = errors.New("lead não encontrado")
	ErrKamNotFound         = errors.New("KAM não encontrado")

	ErrInvalidType        = errors.New("tipo de interação inválido")
	ErrInvalidStatus      = errors.New("status de interação inválido")
	ErrNegativeOrderValue = errors.New("valor do pedido não pode ser negativo")
	ErrMissingOrderValue  = errors.New("interação de pedido exige valor")
	ErrInvalidDateRange   = errors.New("intervalo de datas inválido")
)
