package scheduling

import (
	"errors"
)

// Tipos de erros de agendamento personalizados
var (
	// Recursos ausentes
	ErrScheduleNotFound = errors.New("agendamento não encontrado")
	ErrLeadNotFound     = errors.New("lead não encontrado")
	ErrKamNotFound      = errors.New("KAM não encontrado")

	// Conflitos de estado
	ErrScheduleTerminal    = errors.New("agendamento já finalizado não aceita transições")
	ErrImmutableAssignment = errors.New("KAM e lead de um agendamento não podem ser alterados")

	// Erros de validação
	ErrPastRescheduleDate = errors.New("nova data de agendamento não pode estar no passado")
	ErrInvalidPriority    = errors.New("prioridade deve estar entre 1 e 5")
	ErrInvalidDate        = errors.New("data de agendamento inválida")
)

// IsConflictError verifica se o erro representa um conflito de estado
func IsConflictError(err error) bool {
	return errors.Is(err, ErrScheduleTerminal) ||
		errors.Is(err, ErrImmutableAssignment)
}

// IsNotFoundError verifica se o erro representa um recurso ausente
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrScheduleNotFound) ||
		errors.Is(err, ErrLeadNotFound) ||
		errors.Is(err, ErrKamNotFound)
}
