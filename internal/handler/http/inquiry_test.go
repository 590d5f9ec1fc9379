package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/internal/validators"
)

func multipartInquiry(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, data := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSubmitInquiry_Success(t *testing.T) {
	env := newTestEnv(t)
	env.service.result = service.SubmitResult{InquiryID: 7, Saved: true, Notified: true}

	fields := map[string]string{
		"name":  "John Doe",
		"email": "john@example.com",
	}
	files := map[string][]byte{
		validators.FileFieldReferenceImage: []byte("\x89PNG\r\n\x1a\nimage-bytes"),
	}

	body, contentType := multipartInquiry(t, fields, files)
	resp, err := env.client.Post(env.server.URL+"/api/inquiry", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Message has been sent", got.Message)
	assert.Equal(t, int64(7), got.InquiryID)
	assert.True(t, got.Saved)

	// the handler passed fields and files through untouched
	assert.Equal(t, "John Doe", env.service.gotFields["name"])
	require.Len(t, env.service.gotFiles, 1)
	assert.Equal(t, validators.FileFieldReferenceImage, env.service.gotFiles[0].FieldName)
	assert.NotEmpty(t, env.service.gotFiles[0].Data)
}

func TestSubmitInquiry_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	env.service.errs = []error{validators.ErrInvalidAge, validators.ErrInvalidEmail}

	body, contentType := multipartInquiry(t, map[string]string{"current_age": "17"}, nil)
	resp, err := env.client.Post(env.server.URL+"/api/inquiry", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got submitErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Errors, 2)
}

func TestSubmitInquiry_EncryptionFailure(t *testing.T) {
	env := newTestEnv(t)
	env.service.errs = []error{service.ErrEncryptionFailed}

	body, contentType := multipartInquiry(t, map[string]string{"name": "John"}, nil)
	resp, err := env.client.Post(env.server.URL+"/api/inquiry", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSubmitInquiry_NotificationFailure(t *testing.T) {
	env := newTestEnv(t)
	env.service.result = service.SubmitResult{InquiryID: 9, Saved: true, Notified: false}

	body, contentType := multipartInquiry(t, map[string]string{"name": "John"}, nil)
	resp, err := env.client.Post(env.server.URL+"/api/inquiry", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got.Message, "could not be sent")
	assert.True(t, got.Saved, "the record is still stored when mail fails")
}

func TestSubmitInquiry_NotMultipart(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Post(env.server.URL+"/api/inquiry", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
