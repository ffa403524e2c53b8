package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/async"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

const testSecret = "secreto-de-prueba"

type fakeImports struct {
	rows map[uuid.UUID]*ent.PolicyAIImport
}

func (f *fakeImports) Create(_ context.Context, p repository.CreateImportParams) (*ent.PolicyAIImport, error) {
	imp := &ent.PolicyAIImport{
		ID:               uuid.New(),
		AgentID:          p.AgentID,
		StorageDisk:      p.StorageDisk,
		FilePath:         p.FilePath,
		OriginalFilename: p.OriginalFilename,
		MimeType:         p.MIMEType,
		Status:           string(constants.ImportStatusUploaded),
	}
	f.rows[imp.ID] = imp
	return imp, nil
}

func (f *fakeImports) GetByID(_ context.Context, id uuid.UUID) (*ent.PolicyAIImport, error) {
	imp, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return imp, nil
}

func (f *fakeImports) ListForAgent(_ context.Context, agentID uuid.UUID, status string) ([]*ent.PolicyAIImport, error) {
	var out []*ent.PolicyAIImport
	for _, imp := range f.rows {
		if imp.AgentID == agentID && (status == "" || imp.Status == status) {
			out = append(out, imp)
		}
	}
	return out, nil
}

func (f *fakeImports) MarkProcessing(context.Context, uuid.UUID, bool) (bool, error) {
	return true, nil
}
func (f *fakeImports) Heartbeat(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeImports) FinishSuccess(context.Context, uuid.UUID, repository.TerminalOutcome) error {
	return nil
}
func (f *fakeImports) FinishFailure(context.Context, uuid.UUID, string, int64) error { return nil }
func (f *fakeImports) SweepStale(context.Context, time.Time, string) (int, error)    { return 0, nil }

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}
func (f *fakeQueue) Shutdown(context.Context) {}

func newTestServer(t *testing.T, imports repository.ImportRepository, queue async.Queue) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := New(common.ServerConfig{JWTSecret: testSecret}, t.TempDir(), Deps{
		Imports: imports,
		Queue:   queue,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s.Router()
}

func tokenFor(t *testing.T, agentID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AgentID: agentID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestWithoutTokenIsUnauthorized(t *testing.T) {
	router := newTestServer(t, &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}, &fakeQueue{})
	w := doRequest(router, http.MethodGet, "/api/imports", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestWithWrongSecretIsUnauthorized(t *testing.T) {
	router := newTestServer(t, &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}, &fakeQueue{})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{AgentID: uuid.New().String()})
	signed, err := token.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/imports", signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProcessImportCrossTenantIsForbidden(t *testing.T) {
	owner, intruder := uuid.New(), uuid.New()
	imports := &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}
	imp, err := imports.Create(context.Background(), repository.CreateImportParams{
		AgentID:          owner,
		StorageDisk:      "local",
		FilePath:         "x/doc.pdf",
		OriginalFilename: "doc.pdf",
		MIMEType:         "application/pdf",
	})
	require.NoError(t, err)
	queue := &fakeQueue{}
	router := newTestServer(t, imports, queue)

	w := doRequest(router, http.MethodPost, "/api/imports/"+imp.ID.String()+"/process", tokenFor(t, intruder))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, queue.jobs, "a forbidden request must not enqueue work")
}

func TestProcessImportOwnerIsAccepted(t *testing.T) {
	owner := uuid.New()
	imports := &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}
	imp, err := imports.Create(context.Background(), repository.CreateImportParams{
		AgentID:          owner,
		StorageDisk:      "local",
		FilePath:         "x/doc.pdf",
		OriginalFilename: "doc.pdf",
		MIMEType:         "application/pdf",
	})
	require.NoError(t, err)
	queue := &fakeQueue{}
	router := newTestServer(t, imports, queue)

	w := doRequest(router, http.MethodPost, "/api/imports/"+imp.ID.String()+"/process?force=true", tokenFor(t, owner))
	assert.Equal(t, http.StatusAccepted, w.Code)

	var body struct {
		Message  string    `json:"message"`
		ImportID uuid.UUID `json:"import_id"`
		Force    bool      `json:"force"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, imp.ID, body.ImportID)
	assert.True(t, body.Force)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, imp.ID, queue.jobs[0].ImportID)
	assert.True(t, queue.jobs[0].Force)
}

func uploadRequest(t *testing.T, token, filename, contentType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 contenido"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/imports", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImportCreatesRowAndEnqueues(t *testing.T) {
	imports := &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}
	queue := &fakeQueue{}
	router := newTestServer(t, imports, queue)
	agent := uuid.New()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, tokenFor(t, agent), "poliza.pdf", "application/pdf"))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, imports.rows, 1)
	for _, imp := range imports.rows {
		assert.Equal(t, agent, imp.AgentID)
		assert.Equal(t, "poliza.pdf", imp.OriginalFilename)
		assert.Equal(t, string(constants.ImportStatusUploaded), imp.Status)
	}
	assert.Len(t, queue.jobs, 1)
}

func TestUploadImportRejectsUnsupportedType(t *testing.T) {
	imports := &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}
	queue := &fakeQueue{}
	router := newTestServer(t, imports, queue)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, tokenFor(t, uuid.New()), "doc.docx", "application/msword"))

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Empty(t, imports.rows)
	assert.Empty(t, queue.jobs)
}

func TestGetImportUnknownIDIsNotFound(t *testing.T) {
	router := newTestServer(t, &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}, &fakeQueue{})
	w := doRequest(router, http.MethodGet, "/api/imports/"+uuid.NewString(), tokenFor(t, uuid.New()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListImportsRejectsUnknownStatus(t *testing.T) {
	router := newTestServer(t, &fakeImports{rows: map[uuid.UUID]*ent.PolicyAIImport{}}, &fakeQueue{})
	w := doRequest(router, http.MethodGet, "/api/imports?status=archivado", tokenFor(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
