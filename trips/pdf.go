package trips

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"keliva/schedule"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/trips/:id/print
//
// The PDF-export adapter: renders the normalized itinerary day by day
// with a QR code pointing at the trip's public page.
func PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := loadTrip(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	days := schedule.BuildItinerary(trip.Days, schedule.ModeMulti)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Lithuanian diacritics live in the Baltic code page
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1257")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(trip.Title))
	pdf.Ln(10)

	if trip.Description != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(trip.Description), "", "", false)
		pdf.Ln(4)
	}

	for _, day := range days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d diena — %s", day.DayNumber, day.DayLabel)))
		pdf.Ln(8)

		if day.DayDescription != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, tr(day.DayDescription), "", "", false)
			pdf.Ln(1)
		}

		pdf.SetFont("Arial", "", 11)
		for _, ev := range day.Events {
			line := schedule.EventLine(ev)
			if ev.TimeInfo.TimeStr != "" {
				line = ev.TimeInfo.TimeStr + "  " + line
			}
			if ev.IsOverlapping {
				line += " (!)"
			}
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(4)
	}

	// QR to the public trip page
	publicURL := os.Getenv("PUBLIC_URL")
	if publicURL == "" {
		publicURL = "http://localhost:8080"
	}
	qrPNG, err := qrcode.Encode(publicURL+"/trips/"+tripID, qrcode.Medium, 256)
	if err == nil {
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qr", 165, 10, 30, 30, false, imageOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+tripID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
