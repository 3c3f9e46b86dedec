package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type SeekerHandler struct {
	SeekerService *services.SeekerService
}

func NewSeekerHandler(seekers *services.SeekerService) *SeekerHandler {
	return &SeekerHandler{SeekerService: seekers}
}

// MyProfile is the GET /seeker/profile/my_profile endpoint. The profile is
// created on first access.
func (h *SeekerHandler) MyProfile(c *gin.Context) {
	profile, err := h.SeekerService.MyProfile(auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile is the PATCH /seeker/profile/my_profile endpoint.
func (h *SeekerHandler) UpdateMyProfile(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.SeekerService.UpdateMyProfile(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadResume is the POST /seeker/resume/upload endpoint. Multipart form
// with file field "resume" and optional "resume_title".
func (h *SeekerHandler) UploadResume(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file provided"})
		return
	}

	resume, err := h.SeekerService.UploadResume(auth.CurrentUser(c), header, c.PostForm("resume_title"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           resume.ID,
		"resume_title": resume.ResumeTitle,
		"resume_url":   resume.ResumeURL,
		"date_created": resume.CreatedAt,
		"message":      "Resume uploaded successfully",
	})
}

func (h *SeekerHandler) ListResumes(c *gin.Context) {
	resumes, err := h.SeekerService.Resumes(auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *SeekerHandler) GetResume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resume, err := h.SeekerService.Resume(auth.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *SeekerHandler) DeleteResume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.SeekerService.DeleteResume(auth.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SeekerHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.SeekerService.Experiences(auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *SeekerHandler) CreateExperience(c *gin.Context) {
	var req dtos.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	experience, err := h.SeekerService.CreateExperience(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *SeekerHandler) GetExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	experience, err := h.SeekerService.Experience(auth.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *SeekerHandler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.ExperienceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	experience, err := h.SeekerService.UpdateExperience(auth.CurrentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *SeekerHandler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.SeekerService.DeleteExperience(auth.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
