package agents

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

// GET /api/agents
func GetAgents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "surname", Value: 1}})
	cursor, err := db.AgentCollection.Find(ctx, bson.M{"deleted": bson.M{"$ne": true}}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching agents")
		return
	}
	defer cursor.Close(ctx)

	agents := []models.Agent{}
	for cursor.Next(ctx) {
		var a models.Agent
		if err := cursor.Decode(&a); err == nil {
			agents = append(agents, a)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, agents)
}

// GET /api/agents/:id
func GetAgent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var agent models.Agent
	filter := bson.M{"agentid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}
	if err := db.AgentCollection.FindOne(ctx, filter).Decode(&agent); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Agent not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, agent)
}

// POST /api/agents
func CreateAgent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var agent models.Agent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if agent.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	agent.AgentID = "a" + utils.GenerateRandomString(12)
	agent.CreatedAt = time.Now()
	agent.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.AgentCollection.InsertOne(ctx, agent); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting agent")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, agent)
}

// PUT /api/agents/:id
func UpdateAgent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.Agent
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
		"userid":     updated.UserID,
		"updated_at": time.Now(),
	}}

	result, err := db.AgentCollection.UpdateOne(ctx, bson.M{"agentid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating agent")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Agent not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Agent updated successfully"})
}

// DELETE /api/agents/:id
func DeleteAgent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := db.AgentCollection.UpdateOne(ctx, bson.M{"agentid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting agent")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Agent not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Agent deleted successfully"})
}
