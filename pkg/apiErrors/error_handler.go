package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFrequency    = "VAL_004" // Frequência de ligação menor que 1 dia
	ErrInvalidPriority     = "VAL_005" // Prioridade fora do intervalo [1,5]
	ErrNegativeOrderValue  = "VAL_006" // Valor de pedido negativo
	ErrPastScheduleDate    = "VAL_007" // Data de reagendamento no passado

	// Recursos não encontrados (RES_*)
	ErrLeadNotFound        = "RES_001" // Lead não encontrado
	ErrScheduleNotFound    = "RES_002" // Agendamento não encontrado
	ErrInteractionNotFound = "RES_003" // Interação não encontrada

	// Conflitos de estado (CONF_*)
	ErrScheduleTerminal    = "CONF_001" // Transição sobre agendamento já finalizado
	ErrImmutableAssignment = "CONF_002" // Tentativa de trocar KAM ou lead de um registro existente

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidFrequency:      http.StatusBadRequest,
	ErrInvalidPriority:       http.StatusBadRequest,
	ErrNegativeOrderValue:    http.StatusBadRequest,
	ErrPastScheduleDate:      http.StatusBadRequest,
	ErrLeadNotFound:          http.StatusNotFound,
	ErrScheduleNotFound:      http.StatusNotFound,
	ErrInteractionNotFound:   http.StatusNotFound,
	ErrScheduleTerminal:      http.StatusConflict,
	ErrImmutableAssignment:   http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteErrorWithStatus escreve o erro padronizado com um status HTTP
// explícito, para casos fora do mapeamento por código
func WriteErrorWithStatus(w http.ResponseWriter, code string, message string, status int) {
	apiErr := APIError{
		Code:    code,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
