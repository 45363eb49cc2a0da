package companies

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

// GET /api/companies
func GetCompanies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.CompanyCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching companies")
		return
	}
	defer cursor.Close(ctx)

	companies := []models.Company{}
	for cursor.Next(ctx) {
		var c models.Company
		if err := cursor.Decode(&c); err == nil {
			companies = append(companies, c)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, companies)
}

// GET /api/companies/:id
func GetCompany(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var company models.Company
	filter := bson.M{"companyid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}
	if err := db.CompanyCollection.FindOne(ctx, filter).Decode(&company); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Company not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, company)
}

// POST /api/companies
func CreateCompany(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if company.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	company.CompanyID = "co" + utils.GenerateRandomString(12)
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CompanyCollection.InsertOne(ctx, company); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting company")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, company)
}

// PUT /api/companies/:id
func UpdateCompany(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.Company
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       updated.Name,
		"kind":       updated.Kind,
		"website":    updated.Website,
		"phone":      updated.Phone,
		"updated_at": time.Now(),
	}}

	result, err := db.CompanyCollection.UpdateOne(ctx, bson.M{"companyid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating company")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Company not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Company updated successfully"})
}

// DELETE /api/companies/:id
func DeleteCompany(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}}
	result, err := db.CompanyCollection.UpdateOne(ctx, bson.M{"companyid": ps.ByName("id")}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting company")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Company not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Company deleted successfully"})
}
