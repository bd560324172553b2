package delivery

import (
	"context"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Vovarama1992/voice_relay/internal/conversation"
)

const (
	audioField = "audio"

	// сверх этого multipart уходит во временные файлы ОС
	multipartMemory = 20 << 20
)

type Conversation interface {
	Converse(ctx context.Context, requestID string, audio []byte) (*conversation.Result, error)
}

type ConversationHandler struct {
	svc       Conversation
	maxUpload int64
	log       *logger.ZapLogger
}

func NewConversationHandler(svc Conversation, maxUpload int64, log *logger.ZapLogger) *ConversationHandler {
	return &ConversationHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       log,
	}
}

type conversationResponse struct {
	Transcription string `json:"transcription"`
	GPTResponse   string `json:"gptResponse"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *ConversationHandler) Converse(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	audio, err := h.readUpload(w, r)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: conversation.MsgFailed + " [request=" + requestID + " stage=upload]",
			Error:   err,
			Service: "delivery",
		})
		writeFailure(w)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "audio received [request=" + requestID + " size=" + humanize.Bytes(uint64(len(audio))) + "]",
		Service: "delivery",
	})

	res, err := h.svc.Converse(r.Context(), requestID, audio)
	if err != nil {
		// стадия уже в логе сервиса, клиенту — только общее сообщение
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, conversationResponse{
		Transcription: res.Transcription,
		GPTResponse:   res.Reply,
	})
}

func (h *ConversationHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, err
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile(audioField)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func writeFailure(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: conversation.MsgFailed})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
