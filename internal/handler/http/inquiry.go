package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/internal/utils"
	"github.com/inkdesk/inkdesk/internal/validators"
	"github.com/inkdesk/inkdesk/models"
)

// maxSubmissionBytes bounds the whole multipart request: two images at the
// per-file limit plus the text fields.
const maxSubmissionBytes = 64 << 20

// multipartMemory is the in-memory threshold for multipart parsing; larger
// uploads spill to temporary files.
const multipartMemory = 8 << 20

type submitResponse struct {
	Message   string `json:"message"`
	InquiryID int64  `json:"inquiry_id,omitempty"`
	Saved     bool   `json:"saved"`
}

type submitErrorResponse struct {
	Errors []string `json:"errors"`
}

// submitInquiry handles the public form submission endpoint.
func (h *Handler) submitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Err(err).Msg("rejecting unparseable inquiry submission")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	files, err := h.readUploads(r)
	if err != nil {
		log.Err(err).Msg("rejecting inquiry submission with unreadable upload")
		http.Error(w, "invalid file upload", http.StatusBadRequest)
		return
	}

	result, submitErrs := h.service.Submit(ctx, clientIP(r), fields, files)
	if len(submitErrs) > 0 {
		if errors.Is(submitErrs[0], service.ErrEncryptionFailed) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		messages := make([]string, 0, len(submitErrs))
		for _, submitErr := range submitErrs {
			messages = append(messages, submitErr.Error())
		}
		utils.WriteJSON(w, submitErrorResponse{Errors: messages}, http.StatusBadRequest)
		return
	}

	if !result.Notified {
		utils.WriteJSON(w, submitResponse{
			Message:   "Message could not be sent. Please try again later.",
			InquiryID: result.InquiryID,
			Saved:     result.Saved,
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, submitResponse{
		Message:   "Message has been sent",
		InquiryID: result.InquiryID,
		Saved:     result.Saved,
	}, http.StatusOK)
}

// readUploads collects the optional reference and placement images. A field
// that was simply not submitted is skipped; a field that was submitted but
// cannot be read fails the request.
func (h *Handler) readUploads(r *http.Request) ([]models.FileUpload, error) {
	uploadFields := []string{validators.FileFieldReferenceImage, validators.FileFieldPlacementImage}

	var files []models.FileUpload
	for _, field := range uploadFields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}

		files = append(files, models.FileUpload{
			FieldName:   field,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return files, nil
}
