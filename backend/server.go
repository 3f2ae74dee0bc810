// Package backend serves the card entry form over HTTP. Each rendered page is
// bound to an in-memory form session that runs the cardform controller; the
// page forwards keystrokes and applies the controller's answers.
package backend

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	log "gopkg.in/inconshreveable/log15.v2"
)

type HTTPConfig struct {
	ListenAddress string `validate:"omitempty,ip|hostname"`
	ListenPort    string `validate:"omitempty,numeric"`
	// MaxSessions bounds the number of live forms. Zero selects the default.
	MaxSessions int `validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the config for malformed values.
func (c HTTPConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid http config: %w", err)
	}
	return nil
}

func NewAppServer(config HTTPConfig, logger log.Logger) (http.Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	store := newFormStore(config.MaxSessions)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	router.Method(http.MethodGet, "/", EnvHandler(store, logger, NewFormHandler))
	router.Method(http.MethodPost, "/forms/{id}/fields/{field}", EnvHandler(store, logger, FormSessionHandler(ChangeFieldHandler)))
	router.Method(http.MethodPost, "/forms/{id}/submit", EnvHandler(store, logger, FormSessionHandler(SubmitHandler)))
	router.Method(http.MethodDelete, "/forms/{id}", EnvHandler(store, logger, FormSessionHandler(DeleteFormHandler)))

	return router, nil
}
