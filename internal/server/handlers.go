package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

type errorBody struct {
	Code     errors.Code `json:"code"`
	Message  string      `json:"message"`
	Raw      *string     `json:"raw,omitempty"`
	Segments int         `json:"segments,omitempty"`
	Expected string      `json:"expected,omitempty"`
}

type batchRequest struct {
	Coords []string `json:"coords"`
}

type batchResult struct {
	Coordinate *coords.Coordinate `json:"coordinate,omitempty"`
	Error      *errorBody         `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResult `json:"results"`
	Failed  int           `json:"failed"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	v, err := coords.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	q := r.URL.Query()
	if !q.Has("raw") {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "missing raw query parameter"))
		return
	}

	c, err := coords.Parse(v, q.Get("raw"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	v, err := coords.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req batchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(req.Coords) > maxBatch {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "too many coords (max %d)", maxBatch))
		return
	}

	resp := batchResponse{Results: make([]batchResult, len(req.Coords))}
	for i, raw := range req.Coords {
		c, err := coords.Parse(v, raw)
		if err != nil {
			resp.Results[i].Error = newErrorBody(err)
			resp.Failed++
			continue
		}
		resp.Results[i].Coordinate = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

func newErrorBody(err error) *errorBody {
	body := &errorBody{
		Code:    errors.GetCode(err),
		Message: errors.UserMessage(err),
	}
	if body.Code == "" {
		body.Code = errors.ErrCodeInternal
	}
	var se *coords.SyntaxError
	if stderrors.As(err, &se) {
		raw := se.Raw
		body.Raw = &raw
		body.Segments = se.Segments
		body.Expected = se.Expected()
	}
	return body
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, newErrorBody(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
