package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"stellar/internal/domain"
	"stellar/internal/ports"
)

// Server exposes profile CRUD and compatibility evaluation over HTTP. All
// handlers are thin: decode, delegate to a service port, encode.
type Server struct {
	compat   ports.Compatibility
	profiles ports.Profiles
	jobs     ports.JobRepository
	log      *zap.Logger
}

func New(compat ports.Compatibility, profiles ports.Profiles, jobs ports.JobRepository, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{compat: compat, profiles: profiles, jobs: jobs, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/profiles", s.handleCreateProfile)
	r.Post("/profiles/derive", s.handleDeriveProfile)
	r.Get("/profiles/{id}", s.handleGetProfile)
	r.Delete("/profiles/{id}", s.handleDeleteProfile)

	r.Post("/compatibility", s.handleReport)
	r.Post("/compatibility/evaluate", s.handleEvaluate)
	r.Post("/compatibility/jobs", s.handleEnqueueJob)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createProfileRequest struct {
	Name  string              `json:"name"`
	Kind  domain.PersonKind   `json:"kind"`
	Birth domain.BirthProfile `json:"birth"`
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	p, err := s.profiles.Create(r.Context(), req.Name, req.Kind, req.Birth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type deriveProfileRequest struct {
	Name      string            `json:"name"`
	Kind      domain.PersonKind `json:"kind"`
	Gender    domain.Gender     `json:"gender"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Timezone  string            `json:"timezone"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
}

func (s *Server) handleDeriveProfile(w http.ResponseWriter, r *http.Request) {
	var req deriveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	details := ports.BirthDetails{
		Date:      req.Date,
		Time:      req.Time,
		Timezone:  req.Timezone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	p, err := s.profiles.CreateFromBirth(r.Context(), req.Name, req.Kind, req.Gender, details)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reportRequest struct {
	SubjectID     string            `json:"subject_id"`
	CounterpartID string            `json:"counterpart_id"`
	Kind          domain.ReportKind `json:"kind"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !req.Kind.Valid() {
		writeError(w, http.StatusBadRequest, "kind must be romantic or friendship")
		return
	}
	res, err := s.compat.Report(r.Context(), req.SubjectID, req.CounterpartID, req.Kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.internalError(w, err)
		return
	}
	evaluationsTotal.WithLabelValues(string(req.Kind), "report").Inc()
	evaluationDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, res)
}

type evaluateRequest struct {
	A    domain.BirthProfile `json:"a"`
	B    domain.BirthProfile `json:"b"`
	Kind domain.ReportKind   `json:"kind"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !req.Kind.Valid() {
		writeError(w, http.StatusBadRequest, "kind must be romantic or friendship")
		return
	}
	res, err := s.compat.Evaluate(req.A, req.B, req.Kind)
	if err != nil {
		var oor *domain.OutOfRangeError
		if errors.As(err, &oor) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.internalError(w, err)
		return
	}
	evaluationsTotal.WithLabelValues(string(req.Kind), "evaluate").Inc()
	evaluationDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEnqueueJob(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !req.Kind.Valid() {
		writeError(w, http.StatusBadRequest, "kind must be romantic or friendship")
		return
	}
	jobID, err := s.jobs.Enqueue(r.Context(), req.SubjectID, req.CounterpartID, req.Kind)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.log.Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
