package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/agents"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/cache"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/database"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/report"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

var allowedExtensions = map[string]bool{".mp4": true, ".mov": true}

// Analyzer runs the analysis pipeline
type Analyzer interface {
	Analyze(ctx context.Context, req agents.Request) (*models.Analysis, error)
}

type AnalysisHandler struct {
	analyzer       Analyzer
	store          database.AnalysisStore
	sessions       cache.SessionCache
	metrics        *Metrics
	uploadDir      string
	defaultProfile string
}

func NewAnalysisHandler(
	analyzer Analyzer,
	store database.AnalysisStore,
	sessions cache.SessionCache,
	metrics *Metrics,
	uploadDir string,
	defaultProfile string,
) *AnalysisHandler {
	if p, err := agents.LookupProfile(defaultProfile); err == nil {
		defaultProfile = p.Name
	}

	return &AnalysisHandler{
		analyzer:       analyzer,
		store:          store,
		sessions:       sessions,
		metrics:        metrics,
		uploadDir:      uploadDir,
		defaultProfile: defaultProfile,
	}
}

type analyzeNameRequest struct {
	Filename string `json:"filename" binding:"required"`
	Profile  string `json:"profile"`
}

// CheckExtension accepts only .mp4 and .mov uploads
func CheckExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	return nil
}

// Analyze handles POST /api/analyze (multipart field "video", optional "profile")
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "MISSING_FILE", "A video file is required in the 'video' field")
		return
	}

	if err := CheckExtension(file.Filename); err != nil {
		errorResponse(c, http.StatusBadRequest, "UNSUPPORTED_FILE", "Only MP4 and MOV videos are supported")
		return
	}

	profile, ok := h.resolveProfile(c, c.PostForm("profile"))
	if !ok {
		return
	}

	req := agents.Request{Profile: profile.Name, Filename: filepath.Base(file.Filename)}

	if profile.NeedsVideo() {
		if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
			log.Printf("❌ Failed to create upload dir: %v", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store upload")
			return
		}

		path := filepath.Join(h.uploadDir, uuid.New().String()+strings.ToLower(filepath.Ext(file.Filename)))
		if err := c.SaveUploadedFile(file, path); err != nil {
			log.Printf("❌ Failed to save upload: %v", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store upload")
			return
		}
		defer os.Remove(path)
		req.VideoPath = path
	}

	h.run(c, profile, req)
}

// AnalyzeName handles POST /api/analyze/name with a JSON filename
func (h *AnalysisHandler) AnalyzeName(c *gin.Context) {
	var body analyzeNameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_BODY", "A JSON body with 'filename' is required")
		return
	}

	if err := CheckExtension(body.Filename); err != nil {
		errorResponse(c, http.StatusBadRequest, "UNSUPPORTED_FILE", "Only MP4 and MOV videos are supported")
		return
	}

	profile, ok := h.resolveProfile(c, body.Profile)
	if !ok {
		return
	}

	if profile.NeedsVideo() {
		errorResponse(c, http.StatusBadRequest, "VIDEO_REQUIRED", fmt.Sprintf("Profile %s needs an uploaded video", profile.Name))
		return
	}

	h.run(c, profile, agents.Request{Profile: profile.Name, Filename: body.Filename})
}

func (h *AnalysisHandler) resolveProfile(c *gin.Context, name string) (agents.Profile, bool) {
	if name == "" {
		name = h.defaultProfile
	}

	profile, err := agents.LookupProfile(name)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "UNKNOWN_PROFILE",
			fmt.Sprintf("Unknown profile %q, expected one of: %s", name, strings.Join(agents.ProfileNames(), ", ")))
		return agents.Profile{}, false
	}
	return profile, true
}

func (h *AnalysisHandler) run(c *gin.Context, profile agents.Profile, req agents.Request) {
	ctx := c.Request.Context()

	analysis, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		log.Printf("❌ Analysis of %q failed: %v", req.Filename, err)
		switch {
		case errors.Is(err, agents.ErrUnknownProfile):
			errorResponse(c, http.StatusBadRequest, "UNKNOWN_PROFILE", err.Error())
		case errors.Is(err, agents.ErrMissingVideo):
			errorResponse(c, http.StatusBadRequest, "VIDEO_REQUIRED", err.Error())
		case errors.Is(err, agents.ErrNoTranscriber):
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Transcription is not configured")
		case profile.NeedsVideo():
			if h.metrics != nil {
				h.metrics.TranscriptionFailures.Inc()
			}
			errorResponse(c, http.StatusBadGateway, "TRANSCRIPTION_FAILED", "Transcription of the video failed")
		default:
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to analyze video")
		}
		return
	}

	if err := h.store.Create(ctx, analysis); err != nil {
		log.Printf("❌ Failed to save analysis: %v", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save analysis")
		return
	}

	if session := sessionID(c); session != "" && h.sessions != nil {
		if err := h.sessions.SetLatest(ctx, session, analysis.ID); err != nil {
			log.Printf("⚠️ Failed to cache session result: %v", err)
		}
	}

	if h.metrics != nil {
		h.metrics.AnalysesTotal.WithLabelValues(analysis.Profile, analysis.Category()).Inc()
	}

	c.JSON(http.StatusOK, analysis)
}

// Get handles GET /api/analyses/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	analysis, ok := h.lookup(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Report handles GET /api/analyses/:id/report as a text file download
func (h *AnalysisHandler) Report(c *gin.Context) {
	analysis, ok := h.lookup(c, c.Param("id"))
	if !ok {
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+analysis.ReportFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Format(analysis)))
}

// Latest handles GET /api/session/latest
func (h *AnalysisHandler) Latest(c *gin.Context) {
	session := sessionID(c)
	if session == "" || h.sessions == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "No analysis in this session yet")
		return
	}

	id, err := h.sessions.Latest(c.Request.Context(), session)
	if errors.Is(err, cache.ErrMiss) {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "No analysis in this session yet")
		return
	}
	if err != nil {
		log.Printf("❌ Session cache lookup failed: %v", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read session")
		return
	}

	analysis, ok := h.lookup(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Recent handles GET /api/analyses?limit=N
func (h *AnalysisHandler) Recent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			errorResponse(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	analyses, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("❌ Failed to list analyses: %v", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []*models.Analysis{}
	}
	c.JSON(http.StatusOK, analyses)
}

// Stats handles GET /api/stats
func (h *AnalysisHandler) Stats(c *gin.Context) {
	counts, err := h.store.CountByCategory(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to count analyses: %v", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "by_category": counts})
}

// Profiles handles GET /api/profiles
func (h *AnalysisHandler) Profiles(c *gin.Context) {
	var out []gin.H
	for _, p := range agents.Profiles() {
		out = append(out, gin.H{
			"name":            p.Name,
			"title":           p.Title,
			"needs_video":     p.NeedsVideo(),
			"report_filename": p.ReportFilename,
			"default":         p.Name == h.defaultProfile,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalysisHandler) lookup(c *gin.Context, id string) (*models.Analysis, bool) {
	analysis, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Analysis not found")
		return nil, false
	}
	if err != nil {
		log.Printf("❌ Failed to load analysis %s: %v", id, err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analysis")
		return nil, false
	}
	return analysis, true
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
