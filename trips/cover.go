package trips

import (
	"context"
	"log"
	"net/http"
	"time"

	"keliva/db"
	"keliva/models"
	"keliva/mq"
	"keliva/uploads"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/trips/:id/cover
func UploadTripCover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No image supplied")
		return
	}
	if !utils.ValidateImageFileType(w, files[0]) {
		return
	}

	path, thumb, err := uploads.SaveImage(files[0])
	if err != nil {
		log.Printf("Trip cover upload failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"cover_image": path, "updated_at": time.Now()}}
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
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"url": path, "thumb": thumb})
}
