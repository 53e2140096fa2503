package session_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/bootstrap"
	"resume-editor/internal/shared/config"
)

type sessionView struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	Document struct {
		PersonalInfo struct {
			Name string `json:"name"`
		} `json:"personalInfo"`
		Experience []struct {
			Company     string `json:"company"`
			Position    string `json:"position"`
			StartDate   string `json:"startDate"`
			EndDate     string `json:"endDate"`
			Description string `json:"description"`
		} `json:"experience"`
		Education []struct {
			School string `json:"school"`
		} `json:"education"`
		Skills []string `json:"skills"`
	} `json:"document"`
	Editors map[string]struct {
		Mode string `json:"mode"`
	} `json:"editors"`
	Enhancing []string `json:"enhancing"`
}

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:             "0",
		CORSAllowOrigin:  []string{"http://localhost:5173"},
		LocalStoreDir:    t.TempDir(),
		Env:              "dev",
		ObjectStoreType:  "local",
		EnhancerProvider: "mock",
		ParserProvider:   "text",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeView(t *testing.T, resp *httptest.ResponseRecorder) sessionView {
	t.Helper()
	var view sessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode session view: %v", err)
	}
	return view
}

func createSession(t *testing.T, router *gin.Engine) sessionView {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/sessions", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	return decodeView(t, resp)
}

func TestStartFromScratch(t *testing.T) {
	router := buildTestRouter(t)

	view := createSession(t, router)
	if view.ID == "" {
		t.Fatalf("expected session id")
	}
	if view.State != "active" {
		t.Fatalf("expected active state, got %q", view.State)
	}
	if len(view.Document.Experience) != 0 || len(view.Document.Skills) != 0 {
		t.Fatalf("expected empty document, got %+v", view.Document)
	}
	if view.Editors["experience"].Mode != "idle" || view.Editors["education"].Mode != "idle" {
		t.Fatalf("expected idle editors, got %+v", view.Editors)
	}
}

func TestSkillsRoundTrip(t *testing.T) {
	router := buildTestRouter(t)
	sess := createSession(t, router)
	base := "/api/v1/sessions/" + sess.ID

	for _, text := range []string{"Python", "Go"} {
		resp := doJSON(t, router, http.MethodPost, base+"/skills", map[string]string{"text": text})
		if resp.Code != http.StatusOK {
			t.Fatalf("add skill %q: status %d", text, resp.Code)
		}
	}

	resp := doJSON(t, router, http.MethodDelete, base+"/skills/0", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("remove skill: status %d: %s", resp.Code, resp.Body.String())
	}
	view := decodeView(t, resp)
	if len(view.Document.Skills) != 1 || view.Document.Skills[0] != "Go" {
		t.Fatalf("unexpected skills %v", view.Document.Skills)
	}
}

func TestExperienceEditAndEnhance(t *testing.T) {
	router := buildTestRouter(t)
	sess := createSession(t, router)
	base := "/api/v1/sessions/" + sess.ID

	resp := doJSON(t, router, http.MethodPost, base+"/sections/experience/edits", map[string]any{"mode": "create"})
	if resp.Code != http.StatusOK {
		t.Fatalf("begin edit: status %d: %s", resp.Code, resp.Body.String())
	}
	for field, value := range map[string]string{
		"company":     "Acme",
		"position":    "Engineer",
		"startDate":   "2020",
		"endDate":     "2021",
		"description": "Worked on backend systems",
	} {
		resp := doJSON(t, router, http.MethodPatch, base+"/sections/experience/edits", map[string]string{"field": field, "value": value})
		if resp.Code != http.StatusOK {
			t.Fatalf("update field %q: status %d", field, resp.Code)
		}
	}

	resp = doJSON(t, router, http.MethodPost, base+"/sections/experience/edits/save", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("save edit: status %d: %s", resp.Code, resp.Body.String())
	}
	view := decodeView(t, resp)
	if len(view.Document.Experience) != 1 || view.Document.Experience[0].Company != "Acme" {
		t.Fatalf("unexpected experience %+v", view.Document.Experience)
	}

	resp = doJSON(t, router, http.MethodPost, base+"/enhance/experience", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("enhance: status %d: %s", resp.Code, resp.Body.String())
	}
	view = decodeView(t, resp)
	entry := view.Document.Experience[0]
	if !strings.Contains(entry.Description, "Successfully delivered") {
		t.Fatalf("expected rewritten description, got %q", entry.Description)
	}
	if entry.Company != "Acme" || entry.Position != "Engineer" || entry.StartDate != "2020" || entry.EndDate != "2021" {
		t.Fatalf("non-description fields changed: %+v", entry)
	}
	if len(view.Enhancing) != 0 {
		t.Fatalf("enhancement still marked in flight: %v", view.Enhancing)
	}
}

func TestEnhanceEmptySectionRejected(t *testing.T) {
	router := buildTestRouter(t)
	sess := createSession(t, router)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/enhance/skills", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestImportRejectsUnsupportedType(t *testing.T) {
	router := buildTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("not a resume")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error code, got %s", resp.Body.String())
	}
}

func TestImportDocxResume(t *testing.T) {
	router := buildTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="resume.docx"`)
	header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(docxResume(t)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	view := decodeView(t, resp)
	if view.State != "active" {
		t.Fatalf("expected active state, got %q", view.State)
	}
	if view.Document.PersonalInfo.Name != "Sarah Johnson" {
		t.Fatalf("unexpected name %q", view.Document.PersonalInfo.Name)
	}
}

func TestSaveAndListResumes(t *testing.T) {
	router := buildTestRouter(t)
	sess := createSession(t, router)
	base := "/api/v1/sessions/" + sess.ID

	resp := doJSON(t, router, http.MethodPatch, base+"/personal", map[string]string{"field": "name", "value": "Sarah Johnson"})
	if resp.Code != http.StatusOK {
		t.Fatalf("set personal field: status %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, base+"/save", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("save: status %d: %s", resp.Code, resp.Body.String())
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected saved resume id")
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/resumes", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: status %d: %s", resp.Code, resp.Body.String())
	}
	var list struct {
		Resumes []struct {
			ID string `json:"id"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Resumes) != 1 || list.Resumes[0].ID != saved.ID {
		t.Fatalf("unexpected list %+v", list.Resumes)
	}
}

func TestExportDocumentAndJSON(t *testing.T) {
	router := buildTestRouter(t)
	sess := createSession(t, router)
	base := "/api/v1/sessions/" + sess.ID

	resp := doJSON(t, router, http.MethodPatch, base+"/personal", map[string]string{"field": "name", "value": "Sarah Johnson"})
	if resp.Code != http.StatusOK {
		t.Fatalf("set personal field: status %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, base+"/export/document", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("export document: status %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "Sarah_Johnson_Resume.docx") {
		t.Fatalf("unexpected disposition %q", got)
	}
	if resp.Body.Len() == 0 {
		t.Fatalf("expected document bytes")
	}

	resp = doJSON(t, router, http.MethodGet, base+"/export/json", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("export json: status %d: %s", resp.Code, resp.Body.String())
	}
	var doc struct {
		PersonalInfo struct {
			Name string `json:"name"`
		} `json:"personalInfo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if doc.PersonalInfo.Name != "Sarah Johnson" {
		t.Fatalf("unexpected exported name %q", doc.PersonalInfo.Name)
	}
}

func docxResume(t *testing.T) []byte {
	t.Helper()
	const documentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Sarah Johnson</w:t></w:r></w:p>
<w:p><w:r><w:t>sarah.johnson@email.com</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills: Python, Go</w:t></w:r></w:p>
</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestUnknownSessionReturns404(t *testing.T) {
	router := buildTestRouter(t)
	resp := doJSON(t, router, http.MethodGet, "/api/v1/sessions/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
