package blogs

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"keliva/db"
	"keliva/models"
	"keliva/mq"
	"keliva/rdx"
	"keliva/uploads"
	"keliva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCacheTTL = 2 * time.Minute

// GET /api/blogs
func GetBlogPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// the unfiltered listing is cached; filtered requests go to Mongo
	category := r.URL.Query().Get("category")
	if category == "" {
		if cached, err := rdx.RdxGet("blogs:list"); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(cached))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.BlogCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching blog posts")
		return
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	for cursor.Next(ctx) {
		var p models.BlogPost
		if err := cursor.Decode(&p); err == nil {
			posts = append(posts, p)
		}
	}

	if category == "" {
		if payload, err := json.Marshal(posts); err == nil {
			if err := rdx.SetWithExpiry("blogs:list", string(payload), listCacheTTL); err != nil {
				log.Printf("Failed to cache blog list: %v", err)
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/blogs/:id
func GetBlogPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.BlogPost
	filter := bson.M{"postid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}
	if err := db.BlogCollection.FindOne(ctx, filter).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// POST /api/blogs
func CreateBlogPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if post.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	post.PostID = "b" + utils.GenerateRandomString(12)
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.BlogCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting blog post")
		return
	}

	mq.Emit("blog-created", models.Index{EntityType: "blog", EntityId: post.PostID})
	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// PUT /api/blogs/:id
func UpdateBlogPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	postID := ps.ByName("id")

	var updated models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       updated.Title,
		"category":    updated.Category,
		"subcategory": updated.Subcategory,
		"referenceId": updated.ReferenceID,
		"blocks":      updated.Blocks,
		"thumb":       updated.Thumb,
		"updatedAt":   time.Now(),
	}}

	result, err := db.BlogCollection.UpdateOne(ctx, bson.M{"postid": postID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating blog post")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	mq.Emit("blog-updated", models.Index{EntityType: "blog", EntityId: postID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Blog post updated successfully"})
}

// DELETE /api/blogs/:id
func DeleteBlogPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	postID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"deleted": true, "updatedAt": time.Now()}}
	result, err := db.BlogCollection.UpdateOne(ctx, bson.M{"postid": postID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting blog post")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	mq.Emit("blog-deleted", models.Index{EntityType: "blog", EntityId: postID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Blog post deleted successfully"})
}

// POST /api/blogs/upload
//
// Accepts one multipart image and answers with the stored paths; the
// editor inserts them as image blocks.
func UploadBlogImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
		log.Printf("Blog image upload failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"url": path, "thumb": thumb})
}
