package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/cardform/cardform"
	log "gopkg.in/inconshreveable/log15.v2"
)

type EnvHandlerFunc func(w http.ResponseWriter, req *http.Request, env *environment)

func EnvHandler(store *formStore, logger log.Logger, f EnvHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		env := &environment{store: store, logger: logger}
		f(w, req, env)
	})
}

// FormSessionHandler loads the form session named by the id URL parameter.
// Unknown or expired sessions are not found.
func FormSessionHandler(f EnvHandlerFunc) EnvHandlerFunc {
	return EnvHandlerFunc(func(w http.ResponseWriter, req *http.Request, env *environment) {
		formID, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			// If not a UUID it clearly can't be found
			http.NotFound(w, req)
			return
		}

		form, ok := env.store.get(formID)
		if !ok {
			http.NotFound(w, req)
			return
		}

		env.formID = formID
		env.form = form
		f(w, req, env)
	})
}

type environment struct {
	store  *formStore
	logger log.Logger
	formID uuid.UUID
	form   *formSession
}

func NewFormHandler(w http.ResponseWriter, req *http.Request, env *environment) {
	formID, form := env.store.create()
	env.logger.Debug("form created", "form", formID, "live", env.store.len())

	form.mutex.Lock()
	page := newFormPage(formID, form.controller)
	form.mutex.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := RenderForm(w, page); err != nil {
		env.logger.Error("render form failed", "error", err)
	}
}

// maxChangeBodyBytes bounds a field change request. The longest legal value is
// the 30 character owner name.
const maxChangeBodyBytes = 1024

type changeResponse struct {
	Accepted bool   `json:"accepted"`
	Value    string `json:"value"`
	Focus    string `json:"focus"`
	Complete bool   `json:"complete"`
}

func ChangeFieldHandler(w http.ResponseWriter, req *http.Request, env *environment) {
	field, err := cardform.ParseFieldID(chi.URLParam(req, "field"))
	if err != nil {
		http.NotFound(w, req)
		return
	}

	var input struct {
		Value string `json:"value"`
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxChangeBodyBytes))
	if err := decoder.Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(422)
		fmt.Fprintf(w, "Error decoding request: %v", err)
		return
	}

	env.form.mutex.Lock()
	change := env.form.controller.Change(field, input.Value)
	env.form.mutex.Unlock()

	if !change.Accepted {
		env.logger.Debug("input rejected", "form", env.formID, "field", field)
	}

	response := changeResponse{
		Accepted: change.Accepted,
		Value:    change.Value,
		Focus:    change.Focus.String(),
		Complete: change.Complete,
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.Encode(response)
}

type submitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func SubmitHandler(w http.ResponseWriter, req *http.Request, env *environment) {
	env.form.mutex.Lock()
	_, err := env.form.controller.Submit()
	message := env.form.takeAlert()
	env.form.mutex.Unlock()

	if err != nil {
		env.logger.Info("form submit incomplete", "form", env.formID, "error", err)
	} else {
		env.logger.Info("form submitted", "form", env.formID)
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.Encode(submitResponse{OK: err == nil, Message: message})
}

func DeleteFormHandler(w http.ResponseWriter, req *http.Request, env *environment) {
	env.store.delete(env.formID)
	env.logger.Debug("form discarded", "form", env.formID)
	w.WriteHeader(http.StatusNoContent)
}
