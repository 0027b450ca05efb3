package scheduling

import (
	"time"

	"github.com/vfg2006/lead-manager-api/internal/domain"
)

// Funções puras de cadência de ligações. Todas as comparações são feitas
// em granularidade de dia, no fuso do servidor.

// NormalizeDate descarta o componente de hora, mantendo apenas a data
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextCallDate calcula a próxima data de ligação de um lead.
// Um lead que nunca recebeu ligação está vencido imediatamente: a próxima
// data é o próprio dia de hoje. Caso contrário é a última ligação mais a
// frequência em dias, mesmo que isso caia no passado.
func NextCallDate(lastCallDate *time.Time, callFrequency int, today time.Time) time.Time {
	if lastCallDate == nil {
		return NormalizeDate(today)
	}

	return NormalizeDate(*lastCallDate).AddDate(0, 0, callFrequency)
}

// IsDueToday indica se o lead precisa de ligação hoje: leads ativos cuja
// próxima data de ligação já chegou ou passou.
func IsDueToday(lead *domain.Lead, today time.Time) bool {
	if lead == nil || lead.Status.IsTerminal() || lead.Status == domain.LeadStatusInactive {
		return false
	}

	next := NextCallDate(lead.LastCallDate, lead.CallFrequency, today)
	return !next.After(NormalizeDate(today))
}

// IsOverdue indica se um agendamento pendente ficou para trás. Apenas
// entradas PENDING contam: uma ligação agendada para hoje ainda não está
// vencida.
func IsOverdue(schedule *domain.CallSchedule, today time.Time) bool {
	if schedule == nil || schedule.Status != domain.CallStatusPending {
		return false
	}

	return NormalizeDate(schedule.ScheduledDate).Before(NormalizeDate(today))
}
