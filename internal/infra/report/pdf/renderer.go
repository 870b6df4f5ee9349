package pdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	defaultTitle = "Smart Parking - Daily Report"
	timeLayout   = "2006-01-02 15:04"
	pendingLabel = "Pending"

	pageHeight   = 297.0
	bottomMargin = 20.0
	rowStep      = 7.0
)

type rgb struct{ r, g, b int }

var (
	black = rgb{0, 0, 0}
	gold  = rgb{255, 215, 0}

	typeColors = map[domain.VehicleType]rgb{
		domain.VehicleCar:   {0, 0, 255},
		domain.VehicleBike:  {0, 128, 0},
		domain.VehicleEV:    {128, 0, 128},
		domain.VehicleHeavy: {255, 0, 0},
	}
)

// колонки таблицы: заголовок и координата X в мм
var columns = []struct {
	title string
	x     float64
}{
	{"Slot", 15},
	{"Vehicle", 35},
	{"Type", 75},
	{"Entry", 100},
	{"Exit", 145},
	{"Fee", 180},
}

// Renderer формирует дневной отчёт в формате PDF (A4)
type Renderer struct {
	title    string
	currency string
}

// NewRenderer создает рендерер отчётов
// Встроенные шрифты PDF не содержат знак рупии, поэтому валюта задаётся текстом
func NewRenderer(title, currency string) *Renderer {
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	if strings.TrimSpace(currency) == "" {
		currency = "Rs."
	}
	return &Renderer{title: title, currency: currency}
}

// Render пишет PDF отчёт по сводке в w
// Строки VIP мест выделяются золотым фоном
func (r *Renderer) Render(w io.Writer, summary *domain.Summary, vipSlots []int) error {
	if summary == nil {
		return fmt.Errorf("%w: Render - summary is nil", ErrRender)
	}

	doc := r.build(summary, vipSlots)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%w: Render - output: %v", ErrRender, err)
	}
	return nil
}

func (r *Renderer) build(summary *domain.Summary, vipSlots []int) *fpdf.Fpdf {
	isVIP := make(map[int]bool, len(vipSlots))
	for _, s := range vipSlots {
		isVIP[s] = true
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(r.title, false)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Text(20, 20, r.title)
	doc.SetFont("Helvetica", "", 11)
	doc.Text(20, 27, "Date: "+summary.Date.Format(domain.DateFormat))
	doc.Text(20, 34, "Total Vehicles: "+strconv.Itoa(summary.TotalVehicles))
	doc.Text(20, 41, "Total Revenue: "+r.money(summary.TotalRevenue))

	y := r.tableHeader(doc, 55)

	for _, rec := range summary.Records {
		if y > pageHeight-bottomMargin {
			doc.AddPage()
			y = r.tableHeader(doc, 20)
		}

		if isVIP[rec.Slot] {
			setFill(doc, gold)
			doc.Rect(12, y-5, 185, 8, "F")
		}

		setText(doc, black)
		doc.Text(15, y, strconv.Itoa(rec.Slot))
		doc.Text(35, y, rec.VehicleNumber)

		color, ok := typeColors[rec.VehicleType]
		if !ok {
			color = black
		}
		setText(doc, color)
		doc.Text(75, y, strings.ToUpper(rec.VehicleType.String()))
		setText(doc, black)

		doc.Text(100, y, rec.EntryTime.Format(timeLayout))
		exit := pendingLabel
		if rec.ExitTime != nil {
			exit = rec.ExitTime.Format(timeLayout)
		}
		doc.Text(145, y, exit)
		doc.Text(180, y, r.money(rec.Fee))

		y += rowStep
	}

	return doc
}

func (r *Renderer) tableHeader(doc *fpdf.Fpdf, y float64) float64 {
	setText(doc, black)
	doc.SetFont("Helvetica", "B", 11)
	for _, c := range columns {
		doc.Text(c.x, y, c.title)
	}
	doc.SetFont("Helvetica", "", 10)
	return y + rowStep
}

func (r *Renderer) money(v float64) string {
	return fmt.Sprintf("%s %.2f", r.currency, v)
}

func setText(doc *fpdf.Fpdf, c rgb) {
	doc.SetTextColor(c.r, c.g, c.b)
}

func setFill(doc *fpdf.Fpdf, c rgb) {
	doc.SetFillColor(c.r, c.g, c.b)
}
