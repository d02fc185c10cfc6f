package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/apperr"
	"github.com/pribehari/forms-api/internal/idempotency"
	"github.com/pribehari/forms-api/internal/logger"
	"github.com/pribehari/forms-api/internal/notify"
	"github.com/pribehari/forms-api/internal/submission"
	"github.com/pribehari/forms-api/internal/validation"
)

const (
	headerRequestID      = "X-Request-Id"
	headerIdempotencyKey = "Idempotency-Key"

	msgMethodNotAllowed = "Method not allowed"
	msgInProgress       = "Požadavek se již zpracovává."

	legacyPrefix = "/.netlify/functions"
)

// Submitter runs the submission pipelines.
type Submitter interface {
	CreateOrder(ctx context.Context, req validation.CreateOrderRequest) (*submission.OrderResult, error)
	CreateDonation(ctx context.Context, req validation.CreateDonationRequest) error
}

// IdempotencyStore is the subset of idempotency.Store the handlers use.
type IdempotencyStore interface {
	Claim(ctx context.Context, key, scope string) (bool, error)
	Get(ctx context.Context, key string) (*idempotency.IdempotencyRecord, error)
	MarkDone(ctx context.Context, key, responseBody string, responseStatus int) error
	MarkFailed(ctx context.Context, key, note string) error
}

// HandlerConfig groups dependencies for the submission handlers.
type HandlerConfig struct {
	Service     Submitter
	Idempotency IdempotencyStore // nil disables Idempotency-Key handling
	Logger      *zap.Logger
}

// RegisterSubmissionRoutes registers the form endpoints and their legacy aliases.
func RegisterSubmissionRoutes(r *gin.Engine, cfg HandlerConfig) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	h := &submissionHandler{cfg: cfg}
	r.HandleMethodNotAllowed = true

	for _, prefix := range []string{"", legacyPrefix} {
		g := r.Group(prefix, RequestID(cfg.Logger))
		g.POST("/create-order", h.withIdempotency(string(submission.KindOrder), h.createOrder))
		g.POST("/create-donation", h.withIdempotency(string(submission.KindDonation), h.createDonation))
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": msgMethodNotAllowed})
	})
}

// RequestID reads or assigns X-Request-Id and stores a request-scoped logger
// in the request context.
func RequestID(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)

		log := base.With(zap.String("request_id", id), zap.String("path", c.FullPath()))
		ctx := logger.WithContext(c.Request.Context(), log)
		ctx = notify.WithCorrelationID(ctx, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

type submissionHandler struct {
	cfg HandlerConfig
}

// reply is a finished response, kept so it can be stored for duplicates.
type reply struct {
	status int
	body   gin.H
}

func (h *submissionHandler) createOrder(c *gin.Context) reply {
	var req validation.CreateOrderRequest
	if err := validation.Bind(c, &req); err != nil {
		return failure(err)
	}

	res, err := h.cfg.Service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		return failure(err)
	}
	return reply{http.StatusOK, gin.H{
		"success":              true,
		"amount":               res.Amount.InexactFloat64(),
		"variableSymbol":       res.VariableSymbol,
		"qrDataUrl":            res.QRDataURL,
		"accountHumanReadable": res.AccountHuman,
		"message":              res.Message,
	}}
}

func (h *submissionHandler) createDonation(c *gin.Context) reply {
	var req validation.CreateDonationRequest
	if err := validation.Bind(c, &req); err != nil {
		return failure(err)
	}

	if err := h.cfg.Service.CreateDonation(c.Request.Context(), req); err != nil {
		return failure(err)
	}
	return reply{http.StatusOK, gin.H{"success": true}}
}

// failure maps err to the client response: validation messages verbatim,
// everything else as the generic 500.
func failure(err error) reply {
	if ve, ok := apperr.AsValidation(err); ok {
		return reply{http.StatusBadRequest, gin.H{"success": false, "message": ve.Message}}
	}
	return reply{http.StatusInternalServerError, gin.H{"success": false, "message": apperr.GenericMessage}}
}

// withIdempotency wraps run with Idempotency-Key handling. Without a key or
// a store the request simply runs. Only successful responses are stored;
// anything else marks the key FAILED so the client may resend it.
func (h *submissionHandler) withIdempotency(scope string, run func(c *gin.Context) reply) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader(headerIdempotencyKey)
		if h.cfg.Idempotency == nil || clientKey == "" {
			write(c, run(c))
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx, h.cfg.Logger)
		key := idempotency.Key(scope, clientKey)

		claimed, err := h.cfg.Idempotency.Claim(ctx, key, scope)
		if err != nil {
			log.Error("idempotency claim failed", zap.String("key", key), zap.Error(err))
			write(c, reply{http.StatusInternalServerError, gin.H{"success": false, "message": apperr.GenericMessage}})
			return
		}
		if !claimed {
			h.replay(c, key)
			return
		}

		rep := run(c)
		if rep.status == http.StatusOK {
			body, _ := json.Marshal(rep.body)
			if err := h.cfg.Idempotency.MarkDone(ctx, key, string(body), rep.status); err != nil {
				log.Warn("idempotency mark done failed", zap.String("key", key), zap.Error(err))
			}
		} else {
			note := fmt.Sprintf("status %d", rep.status)
			if err := h.cfg.Idempotency.MarkFailed(ctx, key, note); err != nil {
				log.Warn("idempotency release failed", zap.String("key", key), zap.Error(err))
			}
		}
		write(c, rep)
	}
}

// replay answers a duplicate request from the stored record.
func (h *submissionHandler) replay(c *gin.Context, key string) {
	ctx := c.Request.Context()
	rec, err := h.cfg.Idempotency.Get(ctx, key)
	if err != nil {
		logger.FromContext(ctx, h.cfg.Logger).Error("idempotency lookup failed", zap.String("key", key), zap.Error(err))
		write(c, reply{http.StatusInternalServerError, gin.H{"success": false, "message": apperr.GenericMessage}})
		return
	}
	if rec != nil && rec.Status == idempotency.StatusDone && rec.ResponseBody != "" {
		c.Header("Idempotent-Replayed", "true")
		c.Data(rec.ResponseStatus, "application/json; charset=utf-8", []byte(rec.ResponseBody))
		return
	}
	// in progress, or claimed by a retry in the meantime
	write(c, reply{http.StatusConflict, gin.H{"success": false, "message": msgInProgress}})
}

func write(c *gin.Context, r reply) {
	c.JSON(r.status, r.body)
}
