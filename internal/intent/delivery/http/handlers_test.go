package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/intent"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/ner"
)

type mockUseCase struct {
	out intent.ParseOutput
	err error
	got intent.ParseInput
}

func (m *mockUseCase) Parse(ctx context.Context, in intent.ParseInput) (intent.ParseOutput, error) {
	m.got = in
	return m.out, m.err
}

func newRouter(uc intent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))
	return r
}

func doPost(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/parse-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestParseIntent(t *testing.T) {
	uc := &mockUseCase{out: intent.ParseOutput{
		Intent:   intent.ScheduleMeeting,
		Entities: []ner.Entity{{Text: "Alice", Label: "PERSON"}, {Text: "Paris", Label: "GPE"}},
	}}

	w := doPost(newRouter(uc), `{"input":"schedule a trip with Alice to Paris"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"intent":"schedule_meeting","entities":[["Alice","PERSON"],["Paris","GPE"]]}`, w.Body.String())
	assert.Equal(t, "schedule a trip with Alice to Paris", uc.got.Text)
}

func TestParseIntent_NullIntent(t *testing.T) {
	uc := &mockUseCase{out: intent.ParseOutput{Intent: intent.None}}

	w := doPost(newRouter(uc), `{"input":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"intent":null,"entities":[]}`, w.Body.String())
}

func TestParseIntent_MissingInput(t *testing.T) {
	for _, body := range []string{`{}`, `not json`, `{"input":null}`} {
		w := doPost(newRouter(&mockUseCase{}), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestParseIntent_UseCaseError(t *testing.T) {
	uc := &mockUseCase{err: errors.Join(intent.ErrEntityExtraction, errors.New("boom"))}

	w := doPost(newRouter(uc), `{"input":"email"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to analyse input")
}
