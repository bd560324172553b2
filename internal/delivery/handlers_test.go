package delivery

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_relay/internal/conversation"
)

type fakeConversation struct {
	res   *conversation.Result
	err   error
	audio []byte
	calls int
}

func (f *fakeConversation) Converse(_ context.Context, requestID string, audio []byte) (*conversation.Result, error) {
	f.calls++
	f.audio = audio
	if requestID == "" {
		return nil, errors.New("missing request id")
	}
	return f.res, f.err
}

func newRouter(svc Conversation, maxUpload int64) http.Handler {
	log := logger.NewZapLogger(zap.NewNop().Sugar())
	r := chi.NewRouter()
	RegisterRoutes(r, NewConversationHandler(svc, maxUpload, log))
	return r
}

func uploadRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "voice.wav")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/conversation", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestConverse_Success(t *testing.T) {
	svc := &fakeConversation{res: &conversation.Result{
		Transcription: "안녕",
		Reply:         "안녕하세요! 어떻게 도와드릴까요?",
		AudioPath:     "response0.mp3",
	}}

	rec := httptest.NewRecorder()
	newRouter(svc, 1<<20).ServeHTTP(rec, uploadRequest(t, "audio", []byte("B")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"transcription":"안녕","gptResponse":"안녕하세요! 어떻게 도와드릴까요?"}`, rec.Body.String())
	assert.Equal(t, []byte("B"), svc.audio)
}

func TestConverse_EmptyTranscription(t *testing.T) {
	svc := &fakeConversation{res: &conversation.Result{Reply: "네?"}}

	rec := httptest.NewRecorder()
	newRouter(svc, 0).ServeHTTP(rec, uploadRequest(t, "audio", []byte("silence")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"transcription":"","gptResponse":"네?"}`, rec.Body.String())
}

func TestConverse_PipelineFailure(t *testing.T) {
	svc := &fakeConversation{err: &conversation.StageError{
		Stage: conversation.StageSynthesis,
		Err:   errors.New("quota"),
	}}

	rec := httptest.NewRecorder()
	newRouter(svc, 1<<20).ServeHTTP(rec, uploadRequest(t, "audio", []byte("B")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"대화 중 에러"}`, rec.Body.String())
}

func TestConverse_UploadFailures(t *testing.T) {
	t.Run("wrong field", func(t *testing.T) {
		svc := &fakeConversation{}
		rec := httptest.NewRecorder()
		newRouter(svc, 1<<20).ServeHTTP(rec, uploadRequest(t, "file", []byte("B")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"대화 중 에러"}`, rec.Body.String())
		assert.Zero(t, svc.calls)
	})

	t.Run("not multipart", func(t *testing.T) {
		svc := &fakeConversation{}
		req := httptest.NewRequest(http.MethodPost, "/conversation", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		newRouter(svc, 1<<20).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, svc.calls)
	})

	t.Run("too large", func(t *testing.T) {
		svc := &fakeConversation{}
		rec := httptest.NewRecorder()
		newRouter(svc, 64).ServeHTTP(rec, uploadRequest(t, "audio", bytes.Repeat([]byte{1}, 4096)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"대화 중 에러"}`, rec.Body.String())
		assert.Zero(t, svc.calls)
	})
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeConversation{}, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
