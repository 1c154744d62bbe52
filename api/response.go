package api

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response wraps every JSON body the dashboard returns. Status is 0 on
// success and the HTTP status code otherwise.
type Response struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	JobID  string `json:"job_id,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func ok(w http.ResponseWriter, r *http.Request, data any) {
	render.JSON(w, r, Response{Msg: "success", Data: data})
}

func fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	render.Status(r, code)
	render.JSON(w, r, Response{Status: code, Msg: err.Error()})
}
