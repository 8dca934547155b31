package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/kyc/domain"
	"github.com/lumapay/luma/src/kyc/usecase"
	"github.com/lumapay/luma/src/logger"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.KYCUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.KYCUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/status", h.GetStatus)
	r.POST("/stage1", h.SaveStage1)
	r.POST("/sessions", h.CreateSession)
	r.POST("/sessions/documents", h.UploadDocuments)
	r.POST("/sessions/process", h.ProcessSession)
}

func respondError(c *gin.Context, logg *logger.Logger, op string, err error) {
	var apiErr *notus.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		logg.Errorf("%s upstream err: %v", op, err)
		c.JSON(status, gin.H{"error": apiErr.Message, "id": apiErr.ID})
		return
	}
	if errors.Is(err, usecase.ErrSessionActive) || errors.Is(err, usecase.ErrAlreadyVerified) {
		logg.Infof("%s: %v", op, err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	logg.Errorf("%s err: %v", op, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// GetStatus godoc
//
//	@Summary		Get verification status
//	@Tags			kyc
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/kyc/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	km, err := h.service.Status(c.Request.Context(), auth.WalletAddress(c))
	if err != nil {
		respondError(c, h.logger, "GetStatus", err)
		return
	}
	c.JSON(http.StatusOK, fromMetadata(km))
}

// SaveStage1 godoc
//
//	@Summary		Save stage 1 personal data
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Stage1RequestBody	true	"Request body"
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/kyc/stage1 [post]
func (h *Handler) SaveStage1(c *gin.Context) {
	var req Stage1RequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("SaveStage1 err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	km, err := h.service.SaveStage1(c.Request.Context(), auth.WalletAddress(c), req.ToStage1())
	if err != nil {
		respondError(c, h.logger, "SaveStage1", err)
		return
	}
	c.JSON(http.StatusOK, fromMetadata(km))
}

// CreateSession godoc
//
//	@Summary		Open a stage 2 verification session
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSessionRequestBody	true	"Request body"
//	@Success		200	{object}	CreateSessionResponse
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/kyc/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CreateSession err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	resp, err := h.service.CreateSession(c.Request.Context(), auth.WalletAddress(c), req.ToRequest())
	if err != nil {
		respondError(c, h.logger, "CreateSession", err)
		return
	}
	c.JSON(http.StatusOK, fromSessionResponse(resp))
}

// UploadDocuments godoc
//
//	@Summary		Upload document images for the active session
//	@Description	Multipart form: front and back image files plus the presigned targets returned by session creation
//	@Tags			kyc
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			front	formData	file	true	"front document image"
//	@Param			back	formData	file	false	"back document image"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Router			/kyc/sessions/documents [post]
func (h *Handler) UploadDocuments(c *gin.Context) {
	in := domain.UploadDocumentsRequest{
		DocumentCategory: c.PostForm("documentCategory"),
	}

	front, err := readUpload(c, "front", "frontTarget")
	if err != nil {
		h.logger.Errorf("UploadDocuments err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Front = front

	back, err := readUpload(c, "back", "backTarget")
	if err != nil {
		h.logger.Errorf("UploadDocuments err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Back = back

	if err := h.service.UploadDocuments(c.Request.Context(), in); err != nil {
		respondError(c, h.logger, "UploadDocuments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "uploaded"})
}

// readUpload pulls one file part and its presigned target out of the form.
// A missing file part is not an error here; requiredness depends on the
// document category and is decided by the use case.
func readUpload(c *gin.Context, fileField, targetField string) (*domain.DocumentUpload, error) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	rawTarget := c.PostForm(targetField)
	if rawTarget == "" {
		return nil, errors.New(targetField + " is required")
	}
	var target notus.PresignedUpload
	if err := json.Unmarshal([]byte(rawTarget), &target); err != nil {
		return nil, errors.New(targetField + " must be the presigned upload object")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &domain.DocumentUpload{
		Target:   target,
		Filename: fh.Filename,
		Content:  content,
	}, nil
}

// ProcessSession godoc
//
//	@Summary		Process the active verification session
//	@Tags			kyc
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/kyc/sessions/process [post]
func (h *Handler) ProcessSession(c *gin.Context) {
	km, err := h.service.ProcessSession(c.Request.Context(), auth.WalletAddress(c))
	if err != nil {
		respondError(c, h.logger, "ProcessSession", err)
		return
	}
	c.JSON(http.StatusOK, fromMetadata(km))
}
