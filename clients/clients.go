package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"keliva/db"
	"keliva/models"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/clients
func GetClients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if agentID := r.URL.Query().Get("agentid"); agentID != "" {
		filter["agentid"] = agentID
	}
	if q := r.URL.Query().Get("q"); q != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"surname": bson.M{"$regex": q, "$options": "i"}},
			{"email": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "surname", Value: 1}})
	cursor, err := db.ClientCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching clients")
		return
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	for cursor.Next(ctx) {
		var c models.Client
		if err := cursor.Decode(&c); err == nil {
			clients = append(clients, c)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, clients)
}

// GET /api/clients/:id
func GetClient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var client models.Client
	filter := bson.M{"clientid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}
	if err := db.ClientCollection.FindOne(ctx, filter).Decode(&client); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, client)
}

// POST /api/clients
func CreateClient(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if client.Name == "" || client.Surname == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and surname are required")
		return
	}

	client.ClientID = "c" + utils.GenerateRandomString(12)
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ClientCollection.InsertOne(ctx, client); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting client")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, client)
}

// PUT /api/clients/:id
func UpdateClient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.Client
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       updated.Name,
		"surname":    updated.Surname,
		"email":      updated.Email,
		"phone":      updated.Phone,
		"birth_date": updated.BirthDate,
		"notes":      updated.Notes,
		"agentid":    updated.AgentID,
		"updated_at": time.Now(),
	}}

	result, err := db.ClientCollection.UpdateOne(ctx, bson.M{"clientid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating client")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Client updated successfully"})
}

// DELETE /api/clients/:id
func DeleteClient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := db.ClientCollection.UpdateOne(ctx, bson.M{"clientid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting client")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Client deleted successfully"})
}
