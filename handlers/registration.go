package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"buildlanka/models"
	"buildlanka/services/registration"
	"buildlanka/services/storage"
	"buildlanka/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationHandler exposes the partner registration wizard over HTTP.
type RegistrationHandler struct {
	Svc     registration.RegistrationService
	Storage storage.StorageService
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(svc registration.RegistrationService, storageSvc storage.StorageService) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc, Storage: storageSvc}
}

// respondWizardError maps wizard errors onto HTTP statuses.
func respondWizardError(c *gin.Context, err error) {
	var gate registration.StepGateError
	var invalid registration.InvalidOptionError
	switch {
	case errors.Is(err, registration.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Registration session not found or expired", "")
	case errors.As(err, &gate):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Step validation failed", gate.Error())
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid option", invalid.Error())
	case errors.Is(err, registration.ErrPartnerTypeRequired),
		errors.Is(err, registration.ErrPhotosNotAllowed),
		errors.Is(err, registration.ErrPhotoIndexOutOfRange):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid wizard operation", err.Error())
	case errors.Is(err, registration.ErrDuplicateSubmission):
		utils.JSONError(c, http.StatusConflict, "Partner already registered", err.Error())
	default:
		getLogger(c).Error("Registration wizard failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration wizard failure", "")
	}
}

// OpenHandler handles POST /api/partners/register/session.
func (h *RegistrationHandler) OpenHandler(c *gin.Context) {
	sess, err := h.Svc.Open(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetHandler handles GET /api/partners/register/session/:sessionID.
func (h *RegistrationHandler) GetHandler(c *gin.Context) {
	sess, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SelectTypeHandler handles PUT .../session/:sessionID/type.
func (h *RegistrationHandler) SelectTypeHandler(c *gin.Context) {
	var body struct {
		PartnerType models.PartnerType `json:"partnerType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := h.Svc.SelectType(c.Request.Context(), c.Param("sessionID"), body.PartnerType)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// BusinessInfoHandler handles PUT .../session/:sessionID/business.
func (h *RegistrationHandler) BusinessInfoHandler(c *gin.Context) {
	var info models.BusinessInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid business info", err.Error())
		return
	}
	sess, err := h.Svc.UpdateBusinessInfo(c.Request.Context(), c.Param("sessionID"), info)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// LocationHandler handles PUT .../session/:sessionID/location.
func (h *RegistrationHandler) LocationHandler(c *gin.Context) {
	var body struct {
		Address  string `json:"address" binding:"required"`
		District string `json:"district" binding:"required,district"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid location", err.Error())
		return
	}
	sess, err := h.Svc.UpdateLocation(c.Request.Context(), c.Param("sessionID"), body.Address, body.District)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ToggleServiceHandler handles POST .../session/:sessionID/services/toggle.
func (h *RegistrationHandler) ToggleServiceHandler(c *gin.Context) {
	h.toggle(c, h.Svc.ToggleService)
}

// ToggleCertificationHandler handles POST .../session/:sessionID/certifications/toggle.
func (h *RegistrationHandler) ToggleCertificationHandler(c *gin.Context) {
	h.toggle(c, h.Svc.ToggleCertification)
}

func (h *RegistrationHandler) toggle(c *gin.Context, fn func(ctx context.Context, sessionID, name string) (*models.PartnerRegistrationSession, error)) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := fn(c.Request.Context(), c.Param("sessionID"), body.Name)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// InsuranceHandler handles PUT .../session/:sessionID/insurance.
func (h *RegistrationHandler) InsuranceHandler(c *gin.Context) {
	var update registration.InsuranceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid insurance update", err.Error())
		return
	}
	sess, err := h.Svc.UpdateInsurance(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// DocumentHandler handles POST .../session/:sessionID/documents/:slot with a
// multipart "file" field. The uploaded bytes go straight to object storage;
// only the returned handle enters the draft.
func (h *RegistrationHandler) DocumentHandler(c *gin.Context) {
	logger := getLogger(c)
	slot := models.DocumentSlot(c.Param("slot"))
	if !models.ValidDocumentSlot(slot) {
		utils.JSONError(c, http.StatusNotFound, "Unknown document slot", c.Param("slot"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file upload", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable file upload", err.Error())
		return
	}
	defer file.Close()

	ref, err := h.Storage.UploadFile(c.Request.Context(), file, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), fileHeader.Size, "partners/documents")
	if err != nil {
		logger.Error("Document upload failed", zap.String("slot", string(slot)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store document", "")
		return
	}

	sess, err := h.Svc.AttachDocument(c.Request.Context(), c.Param("sessionID"), slot, ref)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// PhotosHandler handles POST .../session/:sessionID/photos with one or more
// multipart "photos" fields.
func (h *RegistrationHandler) PhotosHandler(c *gin.Context) {
	logger := getLogger(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart form", err.Error())
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No photos supplied", "")
		return
	}

	refs := make([]models.FileRef, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Unreadable photo upload", err.Error())
			return
		}
		ref, err := h.Storage.UploadFile(c.Request.Context(), f, fh.Filename,
			fh.Header.Get("Content-Type"), fh.Size, "partners/photos")
		f.Close()
		if err != nil {
			logger.Error("Photo upload failed", zap.String("file", fh.Filename), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to store photo", "")
			return
		}
		refs = append(refs, ref)
	}

	sess, err := h.Svc.AddPhotos(c.Request.Context(), c.Param("sessionID"), refs...)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// RemovePhotoHandler handles DELETE .../session/:sessionID/photos/:index.
func (h *RegistrationHandler) RemovePhotoHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid photo index", c.Param("index"))
		return
	}
	sess, err := h.Svc.RemovePhoto(c.Request.Context(), c.Param("sessionID"), index)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// NextHandler handles POST .../session/:sessionID/next.
func (h *RegistrationHandler) NextHandler(c *gin.Context) {
	sess, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// PreviousHandler handles POST .../session/:sessionID/previous.
func (h *RegistrationHandler) PreviousHandler(c *gin.Context) {
	sess, err := h.Svc.Previous(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SubmitHandler handles POST .../session/:sessionID/submit.
func (h *RegistrationHandler) SubmitHandler(c *gin.Context) {
	partner, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// CancelHandler handles DELETE .../session/:sessionID.
func (h *RegistrationHandler) CancelHandler(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration cancelled"})
}

// OptionsHandler handles GET /api/partners/register/options, returning the
// fixed option lists for a partner type.
func (h *RegistrationHandler) OptionsHandler(c *gin.Context) {
	t := models.PartnerType(c.Query("type"))
	services := registration.ServiceOptions(t)
	if services == nil {
		utils.JSONError(c, http.StatusBadRequest, "Unknown partner type", c.Query("type"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services":       services,
		"certifications": registration.CertificationOptions(),
	})
}
