// Package rest adapta los puertos de persistencia al backend REST remoto
// (/persons, /contacts, /categories).
package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/contactos-api/internal/domain"
)

// Config conexión al backend.
type Config struct {
	BaseURL    string
	Token      string // Bearer opcional
	Timeout    time.Duration
	RetryCount int
}

// Client cliente HTTP compartido por los tres adaptadores.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewClient construye el cliente. Los reintentos solo aplican a verbos idempotentes
// (GET, PUT, DELETE) y ante errores de red o respuestas 5xx.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		AddRetryCondition(retryIdempotent)
	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}
	return &Client{http: c, log: log}
}

// Persons adaptador de personas.
func (c *Client) Persons() *PersonRepo { return &PersonRepo{c: c} }

// Associations adaptador de contactos.
func (c *Client) Associations() *AssociationRepo { return &AssociationRepo{c: c} }

// Categories adaptador de categorías.
func (c *Client) Categories() *CategoryRepo { return &CategoryRepo{c: c} }

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
	default:
		return false
	}
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

// check traduce la respuesta a la taxonomía de errores del dominio.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.log.Debug().Err(err).Str("op", op).Msg("backend sin respuesta")
		return &domain.TransportError{Op: op, Err: err}
	}
	if !resp.IsError() {
		return nil
	}
	msg := payloadMessage(resp.Body())
	c.log.Debug().Str("op", op).Int("status", resp.StatusCode()).Str("payload", msg).Msg("backend respondió con error")
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, op, msg)
	}
	return &domain.TransportError{Op: op, StatusCode: resp.StatusCode(), Payload: msg}
}

// payloadMessage extrae "message" o "error" del cuerpo JSON; si no, el texto recortado.
func payloadMessage(body []byte) string {
	var generic struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &generic) == nil {
		if generic.Message != "" {
			return generic.Message
		}
		if generic.Error != "" {
			return generic.Error
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 512 {
		s = s[:512]
	}
	return s
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

func idPath(collection string, id int64) string {
	return "/" + collection + "/" + strconv.FormatInt(id, 10)
}
