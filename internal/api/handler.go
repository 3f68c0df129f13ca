// Package api exposes the timesheet parsing service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shudderr/timesheet-parser/internal/storage"
	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/ocr"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// maxUploadSize bounds uploaded files at 16 MiB.
const maxUploadSize = 16 << 20

// Parser converts an upload into a week record.
type Parser interface {
	Parse(data []byte, targetName string) (*model.WeekRecord, error)
}

// HistoryStore records successful parses.
type HistoryStore interface {
	SaveParse(ctx context.Context, entry storage.ParseRecord) error
	History(ctx context.Context, limit int) ([]storage.ParseRecord, error)
}

type Handler struct {
	Parser Parser
	// Store is optional; history endpoints report 503 when nil.
	Store HistoryStore
	// Target is the default employee name, overridable per request
	// with the "name" query parameter.
	Target string
}

// parseResponse is the wire shape of a successful parse: the week
// record fields inline plus a success flag.
type parseResponse struct {
	*model.WeekRecord
	Success bool `json:"success"`
}

// Register mounts the service routes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/api/parse", h.HandleParse)
	r.GET("/api/history", h.HandleHistory)
	r.GET("/healthz", h.HandleHealth)
}

func (h *Handler) HandleParse(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form file 'pdf' is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload exceeds the 16 MiB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open upload " + err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload " + err.Error()})
		return
	}

	target := c.DefaultQuery("name", h.Target)

	record, err := h.Parser.Parse(data, target)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF, PNG, JPEG and TIFF uploads are supported"})
		return
	case errors.Is(err, ocr.ErrOCRNotEnabled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Scanned uploads need OCR support, which is not enabled on this server"})
		return
	case errors.Is(err, schedule.ErrNoMatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Could not parse timesheet or %s not found", target)})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Parse failed " + err.Error()})
		return
	}

	h.saveHistory(c, fileHeader.Filename, target, record)
	c.JSON(http.StatusOK, parseResponse{WeekRecord: record, Success: true})
}

// saveHistory is best-effort; a storage failure is logged, not
// surfaced to the uploader.
func (h *Handler) saveHistory(c *gin.Context, filename, target string, record *model.WeekRecord) {
	if h.Store == nil {
		return
	}

	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("history: marshal record: %v", err)
		return
	}
	entry := storage.ParseRecord{
		Filename:   filename,
		TargetName: target,
		WeekEnding: record.WeekEnding,
		Record:     payload,
	}
	if err := h.Store.SaveParse(c.Request.Context(), entry); err != nil {
		log.Printf("history: save parse: %v", err)
	}
}

func (h *Handler) HandleHistory(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History storage is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := h.Store.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "History lookup failed " + err.Error()})
		return
	}
	if entries == nil {
		entries = []storage.ParseRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(entries),
		"parses": entries,
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
