package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/datazip-inc/rogue-records/cleaner"
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/generator"
	"github.com/datazip-inc/rogue-records/service"
	"github.com/go-chi/render"
)

type GenerateRequest struct {
	Records   *int     `json:"records,omitempty"`
	RogueProb *float64 `json:"rogue_prob,omitempty"`
	Seed      uint64   `json:"seed,omitempty"`
}

type CleanRequest struct {
	// Input is a file name inside the raw directory and defaults to the
	// newest raw file.
	Input string `json:"input,omitempty"`
}

type UploadRequest struct {
	Kind service.Kind `json:"kind"`
	// Name overrides the object name; defaults to the file's base name.
	Name string `json:"name,omitempty"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Upload    bool      `json:"upload_configured"`
}

// decode reads an optional JSON body; an empty body leaves dest untouched.
func decode(r *http.Request, dest any) error {
	if err := render.DecodeJSON(r.Body, dest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %s", err)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Upload:    s.client != nil,
	})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	req := GenerateRequest{}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	config := generator.DefaultConfig()
	if req.Records != nil {
		config.Records = *req.Records
	}
	if req.RogueProb != nil {
		config.RogueProb = *req.RogueProb
	}
	config.Seed = req.Seed

	result, err := s.service.Generate(r.Context(), config)
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{Msg: fmt.Sprintf("file saved successfully as %s", result.Path), JobID: result.JobID, Data: result})
}

func (s *Server) clean(w http.ResponseWriter, r *http.Request) {
	req := CleanRequest{}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	input := ""
	if req.Input != "" {
		path, err := s.service.RawFile(req.Input)
		if err != nil {
			fail(w, r, http.StatusBadRequest, err)
			return
		}
		input = path
	}

	result, err := s.service.Clean(r.Context(), input)
	switch {
	case errors.Is(err, cleaner.ErrMissingColumn), errors.Is(err, cleaner.ErrInvalidInput):
		fail(w, r, http.StatusUnprocessableEntity, err)
		return
	case err != nil && result != nil:
		// the pipeline ran but the save did not
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, Response{Status: http.StatusInternalServerError, Msg: result.Save.Message, JobID: result.JobID, Data: result})
		return
	case err != nil:
		fail(w, r, http.StatusNotFound, err)
		return
	}

	render.JSON(w, r, Response{Msg: result.Save.Message, JobID: result.JobID, Data: result})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		fail(w, r, http.StatusServiceUnavailable, fmt.Errorf("no upload destination configured"))
		return
	}

	req := UploadRequest{Kind: service.Cleaned}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	path, err := s.service.Latest(req.Kind)
	if err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}

	file := destination.File{Source: path, Name: req.Name}
	if err := s.service.Upload(r.Context(), s.client, file); err != nil {
		fail(w, r, http.StatusBadGateway, err)
		return
	}
	ok(w, r, map[string]string{"source": path, "bucket": s.client.Bucket()})
}

func (s *Server) files(w http.ResponseWriter, r *http.Request) {
	files, err := s.service.Files()
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	ok(w, r, files)
}
