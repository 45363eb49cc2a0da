package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"keliva/db"
	"keliva/models"
	"keliva/mq"
	"keliva/schedule"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if clientID := r.URL.Query().Get("clientid"); clientID != "" {
		filter["clientid"] = clientID
	}
	if agentID := r.URL.Query().Get("agentid"); agentID != "" {
		filter["agentid"] = agentID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := db.TripCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	for cursor.Next(ctx) {
		var t models.Trip
		if err := cursor.Decode(&t); err == nil {
			trips = append(trips, t)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	filter := bson.M{"tripid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}
	if err := db.TripCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if trip.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	trip.TripID = "t" + utils.GenerateRandomString(13)
	if trip.Status == "" {
		trip.Status = "Draft"
	}
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TripCollection.InsertOne(ctx, trip); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting trip")
		return
	}

	mq.Emit("trip-created", models.Index{EntityType: "trip", EntityId: trip.TripID})
	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

// PUT /api/trips/:id
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	var updated models.Trip
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       updated.Title,
		"description": updated.Description,
		"clientid":    updated.ClientID,
		"agentid":     updated.AgentID,
		"start_date":  updated.StartDate,
		"end_date":    updated.EndDate,
		"status":      updated.Status,
		"published":   updated.Published,
		"days":        updated.Days,
		"updated_at":  time.Now(),
	}}

	result, err := db.TripCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	mq.Emit("trip-updated", models.Index{EntityType: "trip", EntityId: tripID})
	broadcastPreview(tripID, schedule.BuildItinerary(updated.Days, schedule.ModeMulti))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip updated successfully"})
}

// DELETE /api/trips/:id
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := db.TripCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	mq.Emit("trip-deleted", models.Index{EntityType: "trip", EntityId: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip deleted successfully"})
}

// PUT /api/trips/:id/publish
func PublishTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"published": true, "status": "Confirmed", "updated_at": time.Now()}}
	result, err := db.TripCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error publishing trip")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	mq.Emit("trip-updated", models.Index{EntityType: "trip", EntityId: tripID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip published successfully"})
}

func loadTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	filter := bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}
	if err := db.TripCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}
