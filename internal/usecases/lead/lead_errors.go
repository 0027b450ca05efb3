package lead

import (
	"errors"
)

var (
	ErrLeadNotFound = errors.New("lead não encontrado")
	ErrKamNotFound  = errors.New("KAM não encontrado")

	ErrMissingRequiredData = errors.New("nome, cidade e KAM são obrigatórios")
	ErrInvalidStatus       = errors.New("status de lead inválido")
	ErrInvalidFrequency    = errors.New("frequência de ligação deve ser de pelo menos 1 dia")
)
