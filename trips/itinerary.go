package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"keliva/rdx"
	"keliva/schedule"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
)

const previewCacheTTL = 5 * time.Minute

// GET /api/trips/:id/itinerary?mode=single|multi
//
// The screen-preview adapter: normalizes the trip's day-by-day events
// into the ordered, annotated schedule and caches the JSON in Redis
// until the trip changes.
func GetTripItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	mode := schedule.ModeMulti
	if r.URL.Query().Get("mode") == string(schedule.ModeSingle) {
		mode = schedule.ModeSingle
	}

	cacheKey := "itinerary:" + tripID + ":" + string(mode)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := loadTrip(ctx, tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	processed := schedule.BuildItinerary(trip.Days, mode)
	if processed == nil {
		processed = []schedule.ProcessedDay{}
	}

	payload, err := json.Marshal(processed)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error encoding itinerary")
		return
	}

	if err := rdx.SetWithExpiry(cacheKey, string(payload), previewCacheTTL); err != nil {
		log.Printf("Failed to cache itinerary for trip %s: %v", tripID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
