package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/svkul/docguru-back/docx"
	"github.com/svkul/docguru-back/llm"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		DocumentContent string `json:"documentContent"`
		AIProvider      string `json:"aiProvider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid json"})
		return
	}
	if strings.TrimSpace(req.DocumentContent) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "documentContent is required"})
		return
	}

	result, err := s.docs.Analyze(r.Context(), req.DocumentContent, req.AIProvider)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerateByTemplate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	result, err := s.docs.FormatByTemplate(r.Context(), req.DocumentContent, req.TemplateID, req.AIProvider)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerateByTemplateDocx(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	result, err := s.docs.FormatByTemplateDocument(r.Context(), req.DocumentContent, req.TemplateID, req.AIProvider)
	if err != nil {
		s.writeError(w, err)
		return
	}

	buf, err := docx.Encode(result.Content)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "failed to encode document"})
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write docx response")
	}
}

type generateRequest struct {
	DocumentContent string `json:"documentContent"`
	TemplateID      string `json:"templateId"`
	AIProvider      string `json:"aiProvider"`
}

func (s *Server) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid json"})
		return req, false
	}
	if strings.TrimSpace(req.DocumentContent) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "documentContent is required"})
		return req, false
	}
	if strings.TrimSpace(req.TemplateID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "templateId is required"})
		return req, false
	}
	return req, true
}

// writeError surfaces a provider failure as the uniform error envelope:
// status code from the envelope, {message, provider} as the body. Anything
// that is not an *llm.Error becomes a plain 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var envelope *llm.Error
	if errors.As(err, &envelope) {
		writeJSON(w, envelope.StatusCode, map[string]any{
			"message":  envelope.Message,
			"provider": envelope.Provider,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
