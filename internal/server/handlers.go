package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/catalog"
	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

const maxSearchLimit = 50

type analyzeRequest struct {
	Answers domain.Answers `json:"answers"`
}

type nextQuestionsRequest struct {
	Answers domain.Answers `json:"answers"`
	Count   int            `json:"count"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, perrors.NewValidationError("request body must be valid JSON", "body", nil))
		return
	}
	if len(req.Answers) == 0 {
		s.writeError(w, perrors.NewValidationError("answers must not be empty", "answers", nil))
		return
	}

	result, err := s.deps.Recommender.Recommend(r.Context(), req.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleNextQuestions serves the adaptive question sequence. GET returns
// the opening sequence; POST carries answers so far and returns the routed
// continuation.
func (s *Server) handleNextQuestions(w http.ResponseWriter, r *http.Request) {
	var answers domain.Answers
	count := constants.Questionnaire.DefaultTotal

	switch r.Method {
	case http.MethodGet:
		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				s.writeError(w, perrors.NewValidationError("count must be an integer", "count", raw))
				return
			}
			count = n
		}
	case http.MethodPost:
		var req nextQuestionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, perrors.NewValidationError("request body must be valid JSON", "body", nil))
			return
		}
		answers = req.Answers
		if req.Count > 0 {
			count = req.Count
		}
	default:
		writeMethodNotAllowed(w)
		return
	}

	// Request-size guard lives here, the sequencer honors whatever length
	// it is asked for.
	if count > constants.Questionnaire.MaxTotal {
		count = constants.Questionnaire.MaxTotal
	}

	ids := s.deps.Sequencer.NextQuestions(answers, count)
	questions := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := catalog.QuestionByID(id); ok {
			questions = append(questions, q)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     len(questions),
	})
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	genres, err := s.deps.Catalog.AvailableGenres(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"genres": genres})
}

func (s *Server) handleSearchTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.writeError(w, perrors.NewValidationError("query parameter q is required", "q", nil))
		return
	}

	limit := constants.ResolverConfig.SearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, perrors.NewValidationError("limit must be a positive integer", "limit", raw))
			return
		}
		if n > maxSearchLimit {
			n = maxSearchLimit
		}
		limit = n
	}

	tracks, err := s.deps.Catalog.SearchTracks(r.Context(), query, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tracks": tracks})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]bool{
			"spotify": s.deps.Health.SpotifyConfigured,
			"gemini":  s.deps.Health.GeminiConfigured,
			"openai":  s.deps.Health.OpenAIConfigured,
			"redis":   s.deps.Health.RedisConfigured,
		},
	})
}

// writeError maps pipeline errors onto their HTTP status. Anything
// unclassified is a 500 without internal detail.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if perr, ok := perrors.AsPipelineError(err); ok {
		s.logger.Warn("Request failed",
			zap.String("code", perr.Code),
			zap.Int("status", perr.StatusCode),
			zap.Error(err),
		)
		writeJSON(w, perr.StatusCode, map[string]any{
			"error": perr.Message,
			"code":  perr.Code,
		})
		return
	}

	s.logger.Error("Request failed with unclassified error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error": "internal server error",
	})
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"error": "method not allowed",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
