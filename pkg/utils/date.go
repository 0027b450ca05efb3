package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD vindas da query string.
// String vazia retorna uma data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
