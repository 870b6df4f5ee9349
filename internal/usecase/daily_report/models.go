package daily_report

import "time"

// Request запрос на формирование дневного отчёта
type Request struct {
	Date time.Time
}

// Response сформированный отчёт
type Response struct {
	FileName string
	Content  []byte
	// SavedPath путь сохранённой копии, пустой если копия не сохранялась
	SavedPath string
}
