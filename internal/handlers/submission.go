package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackxperience/hackxperience/db"
	"github.com/hackxperience/hackxperience/internal/models"
	"github.com/hackxperience/hackxperience/internal/storage"
	"github.com/hackxperience/hackxperience/internal/types"
	"github.com/hackxperience/hackxperience/internal/validate"
)

const (
	msgTeamAlreadySubmitted = "This team has already submitted a project. Please contact the organizers if you need to update your submission."
	msgSubmissionExists     = "A submission with this information already exists."
	msgSubmissionRetry      = "Error submitting project. Please try again later."
)

var presentationStore storage.Store

func SetPresentationStore(store storage.Store) {
	presentationStore = store
}

// CreateSubmission accepts two delivery modes for the presentation: a JSON
// body carrying a presentation URL, or a multipart form carrying a PowerPoint
// upload. In file mode the stored public URL lands in the same column, so the
// modes are interchangeable downstream.
func CreateSubmission(ctx *gin.Context) {
	contentType := ctx.ContentType()

	switch {
	case contentType == "application/json":
		createSubmissionFromURL(ctx)
	case strings.HasPrefix(contentType, "multipart/"):
		createSubmissionFromFile(ctx)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported content type"})
	}
}

func createSubmissionFromURL(ctx *gin.Context) {
	var req validate.SubmissionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := validate.Submission(req, true); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	insertSubmission(ctx, req, req.PresentationURL)
}

func createSubmissionFromFile(ctx *gin.Context) {
	var req validate.SubmissionRequest

	if err := ctx.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	errs := validate.Submission(req, false)

	file, err := ctx.FormFile("presentation_file")

	if err != nil {
		errs["presentation_file"] = "Presentation file is required"
	} else if !validate.IsPresentationFile(file.Filename, file.Header.Get("Content-Type")) {
		errs["presentation_file"] = "Please upload a valid PowerPoint file (.ppt or .pptx)"
	}

	if len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	src, err := file.Open()

	if err != nil {
		log.Printf("Failed to open uploaded presentation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgSubmissionRetry})
		return
	}
	defer src.Close()

	publicURL, err := presentationStore.SavePresentation(req.TeamName, file.Filename, src)

	if err != nil {
		log.Printf("Failed to store presentation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgSubmissionRetry})
		return
	}

	insertSubmission(ctx, req, publicURL)
}

func insertSubmission(ctx *gin.Context, req validate.SubmissionRequest, presentationURL string) {
	submission := models.ProjectSubmission{
		ProjectTitle:     req.ProjectTitle,
		TeamName:         req.TeamName,
		TeamMembers:      req.TeamMembers,
		ProblemStatement: req.ProblemStatement,
		DemoVideoURL:     req.DemoVideoURL,
		RepoURL:          req.RepoURL,
		PresentationURL:  presentationURL,
		SubmittedAt:      time.Now().UTC(),
	}

	if err := db.DB.Create(&submission).Error; err != nil {
		var conflict *db.ConflictError

		if errors.As(db.TranslateError(err), &conflict) {
			if conflict.Column == "team_name" {
				ctx.JSON(http.StatusConflict, gin.H{"error": msgTeamAlreadySubmitted})
			} else {
				ctx.JSON(http.StatusConflict, gin.H{"error": msgSubmissionExists})
			}
			return
		}

		log.Printf("Failed to create submission: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgSubmissionRetry})
		return
	}

	BroadcastRefresh(types.TableProjectSubmissions)

	ctx.JSON(http.StatusCreated, gin.H{
		"submission": toSubmissionResponse(submission),
	})
}

type SubmissionResponse struct {
	ID               uint      `json:"id"`
	ProjectTitle     string    `json:"project_title"`
	TeamName         string    `json:"team_name"`
	TeamMembers      string    `json:"team_members"`
	ProblemStatement string    `json:"problem_statement"`
	DemoVideoURL     string    `json:"demo_video_url"`
	RepoURL          string    `json:"repo_url"`
	PresentationURL  string    `json:"presentation_url"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

func toSubmissionResponse(submission models.ProjectSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:               submission.ID,
		ProjectTitle:     submission.ProjectTitle,
		TeamName:         submission.TeamName,
		TeamMembers:      submission.TeamMembers,
		ProblemStatement: submission.ProblemStatement,
		DemoVideoURL:     submission.DemoVideoURL,
		RepoURL:          submission.RepoURL,
		PresentationURL:  submission.PresentationURL,
		SubmittedAt:      submission.SubmittedAt,
	}
}

func ListSubmissions(ctx *gin.Context) {
	var submissions []models.ProjectSubmission

	if err := db.DB.Order("submitted_at desc").Find(&submissions).Error; err != nil {
		log.Printf("Failed to fetch submissions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submissions"})
		return
	}

	response := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		response = append(response, toSubmissionResponse(submission))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"submissions": response,
		"total":       len(response),
	})
}
