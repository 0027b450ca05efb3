package scoring

import (
	"errors"
)

var (
	ErrLeadNotFound = errors.New("lead não encontrado")
	ErrKamNotFound  = errors.New("KAM não encontrado")
)
