package file

import (
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/filegate/service/internal/response"
)

// Handler holds HTTP handlers for the file gateway endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new file Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type presignData struct {
	SignedURL string `json:"signedUrl" example:"https://s3.example.com/uploads/report.pdf?X-Amz-Signature=..."`
	ExpiresIn int    `json:"expiresIn" example:"3600"`
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Stores the uploaded file in object storage under a randomized key. The optional folder field becomes a key prefix. Failures are reported with HTTP 200 and success=false.
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File content"
//	@Param			folder	formData	string	false	"Key prefix, e.g. documents/2024"
//	@Success		200		{object}	response.Envelope{data=UploadResult}
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	f, header, err := r.FormFile("file")
	if err != nil {
		response.Fail(w, "No file provided")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Fail(w, errMessage(err, "Upload failed"))
		return
	}

	result, err := h.svc.Upload(r.Context(), Upload{
		Name:        header.Filename,
		Folder:      r.FormValue("folder"),
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		response.Fail(w, errMessage(err, "Upload failed"))
		return
	}

	response.OK(w, "File uploaded successfully", result)
}

// Delete godoc
//
//	@Summary		Delete a file
//	@Description	Removes the object stored under the given key. The key is the full storage key and may contain slashes. Failures are reported with HTTP 200 and success=false.
//	@Tags			files
//	@Produce		json
//	@Param			fileName	path		string	true	"Storage key"
//	@Success		200			{object}	response.Envelope
//	@Router			/delete/{fileName} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), keyParam(r)); err != nil {
		response.Fail(w, errMessage(err, "Delete failed"))
		return
	}
	response.OK(w, "File deleted successfully", nil)
}

// PresignedURL godoc
//
//	@Summary		Generate a presigned upload URL
//	@Description	Issues a time-limited URL permitting a PUT of the given key without authentication. The key does not need to reference an existing object. Failures are reported with HTTP 200 and success=false.
//	@Tags			files
//	@Produce		json
//	@Param			fileName	path		string	true	"Storage key"
//	@Success		200			{object}	response.Envelope{data=presignData}
//	@Router			/presigned-url/{fileName} [get]
func (h *Handler) PresignedURL(w http.ResponseWriter, r *http.Request) {
	signedURL, expiresIn, err := h.svc.PresignedUploadURL(r.Context(), keyParam(r))
	if err != nil {
		response.Fail(w, errMessage(err, "Failed to generate presigned URL"))
		return
	}
	response.OK(w, "", presignData{SignedURL: signedURL, ExpiresIn: expiresIn})
}

// keyParam extracts the storage key from the wildcard path segment. Keys may
// contain slashes, so routes mount these handlers behind a chi wildcard.
func keyParam(r *http.Request) string {
	key := chi.URLParam(r, "*")
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}
	return key
}

// errMessage passes the error's own message through to the caller, falling
// back to a generic string only when there is none.
func errMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
