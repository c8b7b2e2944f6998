package result

import (
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gegidze/arena/pkg/responses"
	"github.com/gegidze/arena/pkg/storage"
	"github.com/gegidze/arena/utils"
	"github.com/gin-gonic/gin"
)

// ResultController handles result HTTP requests.
type ResultController struct {
	repo  ResultRepository
	blobs storage.BlobStore
}

func NewResultController(repo ResultRepository, blobs storage.BlobStore) *ResultController {
	return &ResultController{repo: repo, blobs: blobs}
}

// GetAllResults godoc
// @Summary List published results, newest first
// @Tags Results
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Result}
// @Router /results [get]
func (rc *ResultController) GetAllResults(c *gin.Context) {
	results, err := rc.repo.GetAllResults()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve results")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Results retrieved successfully", results)
}

// AdminCreateResult godoc
// @Summary Publish a result (admin)
// @Description Multipart form: title, description and an optional image.
// The image is stored in the results bucket; the DB row is only written
// after a successful upload.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param image formData file false "Screenshot"
// @Success 201 {object} responses.SuccessResponse{data=Result}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/results [post]
func (rc *ResultController) AdminCreateResult(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		responses.BadRequest(c, "Title is required")
		return
	}
	description := c.PostForm("description")

	var imageURL string
	file, err := c.FormFile("image")
	if err == nil && file != nil {
		ext := filepath.Ext(file.Filename)
		path := "results/" + utils.GenerateRandomToken(16) + ext

		src, err := file.Open()
		if err != nil {
			responses.BadRequest(c, "Could not read uploaded image")
			return
		}
		defer src.Close()

		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		imageURL, err = rc.blobs.Upload(c.Request.Context(), path, contentType, src)
		if err != nil {
			log.Printf("result image upload failed: %v", err)
			responses.InternalServerError(c, "სურათის ატვირთვა ვერ მოხერხდა")
			return
		}
	}

	res := Result{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := rc.repo.CreateResult(&res); err != nil {
		responses.InternalServerError(c, "Failed to create result")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Result published successfully", res)
}

// AdminDeleteResult godoc
// @Summary Delete a result (admin)
// @Description Removes the stored image first when the result has one.
// @Tags Admin
// @Produce json
// @Param result_id path uint true "Result ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/results/{result_id} [delete]
func (rc *ResultController) AdminDeleteResult(c *gin.Context) {
	resultID, err := strconv.ParseUint(c.Param("result_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid result ID")
		return
	}

	res, err := rc.repo.GetResultByID(uint(resultID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve result")
		return
	}
	if res == nil {
		responses.NotFound(c, "Result")
		return
	}

	if res.ImageURL != "" {
		if path := blobPathFromURL(res.ImageURL); path != "" {
			if err := rc.blobs.Delete(c.Request.Context(), path); err != nil {
				log.Printf("result image delete failed for %s: %v", path, err)
			}
		}
	}

	if err := rc.repo.DeleteResult(res.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete result")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Result deleted", nil)
}

// blobPathFromURL extracts the object key from a stored public URL.
func blobPathFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
