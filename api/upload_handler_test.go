package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
)

// multipartUpload builds a multipart body with a single file part carrying an
// explicit Content-Type, the way browsers submit the admin image picker.
func multipartUpload(t *testing.T, fieldName, fileName, contentType string, content []byte, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form part: %v", err)
	}

	for k, v := range extraFields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, router http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testSecret)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadImage(t *testing.T) {
	router, _, storage := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "Cover Photo.png", "image/png", []byte("png-bytes"), nil)
	rec := doUpload(t, router, body, contentType)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[UploadResponse](t, rec)
	if !strings.HasPrefix(resp.ImageURL, "https://storage.googleapis.com/"+testBucket+"/blog-images/") {
		t.Errorf("imageUrl = %q", resp.ImageURL)
	}
	if !strings.HasSuffix(resp.Filename, "-cover-photo.png") {
		t.Errorf("filename = %q", resp.Filename)
	}
	if resp.OriginalName != "Cover Photo.png" || resp.Type != "image/png" {
		t.Errorf("resp = %+v", resp)
	}
	if len(storage.uploads) != 1 {
		t.Errorf("uploads = %v", storage.uploads)
	}
}

func TestUploadImageCustomFolder(t *testing.T) {
	router, _, storage := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "avatar.webp", "image/webp", []byte("webp"), map[string]string{"folder": "profile"})
	rec := doUpload(t, router, body, contentType)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(storage.uploads) != 1 || !strings.HasPrefix(storage.uploads[0], "profile/") {
		t.Errorf("uploads = %v", storage.uploads)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	router, _, storage := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "doc.pdf", "application/pdf", []byte("%PDF"), nil)
	rec := doUpload(t, router, body, contentType)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
	if len(storage.uploads) != 0 {
		t.Error("rejected file reached the bucket")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	router, _, storage := newTestServer(t)

	big := bytes.Repeat([]byte("x"), 6<<20)
	body, contentType := multipartUpload(t, "file", "big.jpg", "image/jpeg", big, nil)
	rec := doUpload(t, router, body, contentType)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if len(storage.uploads) != 0 {
		t.Error("oversized file reached the bucket")
	}
}

func TestUploadRequiresFileField(t *testing.T) {
	router, _, _ := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("folder", "blog-images")
	_ = w.Close()

	rec := doUpload(t, router, &buf, w.FormDataContentType())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteImage(t *testing.T) {
	router, _, storage := newTestServer(t)

	url := "https://storage.googleapis.com/" + testBucket + "/blog-images/123-cover.png"
	rec := doJSON(t, router, http.MethodDelete, "/api/admin/upload/delete?url="+url, testSecret, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(storage.deletes) != 1 || storage.deletes[0] != "blog-images/123-cover.png" {
		t.Errorf("deletes = %v", storage.deletes)
	}
}

func TestDeleteImageMalformedURL(t *testing.T) {
	router, _, storage := newTestServer(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/upload/delete?url=https://example.com/elsewhere.png", testSecret, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(storage.deletes) != 0 {
		t.Errorf("deletes = %v", storage.deletes)
	}
}

func TestDeleteImageRequiresURL(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/upload/delete", testSecret, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
