package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"cropcycle/models"

	"go.uber.org/zap"
)

// predictionFailedMsg is the user-facing message for any prediction failure.
const predictionFailedMsg = "Failed to get predictions. Please try again."

// PredictionError carries the user-facing message; the cause is kept for
// logging only.
type PredictionError struct {
	Message string
	cause   error
}

func (e *PredictionError) Error() string { return e.Message }
func (e *PredictionError) Unwrap() error { return e.cause }

func predictionError(cause error) *PredictionError {
	return &PredictionError{Message: predictionFailedMsg, cause: cause}
}

// PredictorClient calls the external crop/waste prediction service.
type PredictorClient struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

func NewPredictorClient(base string, log *zap.Logger) *PredictorClient {
	if base == "" || base == "local" {
		base = "http://127.0.0.1:8000"
	}
	return &PredictorClient{
		base: base,
		hc:   &http.Client{Timeout: 25 * time.Second},
		log:  log,
	}
}

// Submit calls POST {base}/predict with the normalized form. Any failure
// (transport, non-2xx, decode) surfaces as a PredictionError; there is no
// retry.
func (c *PredictorClient) Submit(ctx context.Context, form NormalizedForm) (*models.PredictionResult, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, predictionError(fmt.Errorf("marshal predict req: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, predictionError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("predictor call failed", zap.Error(err))
		return nil, predictionError(fmt.Errorf("predictor call failed: %w", err))
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("predictor non-2xx: %s, body: %s", resp.Status, string(data))
		c.log.Warn("predictor rejected request", zap.Error(err))
		return nil, predictionError(err)
	}

	var out models.PredictionResult
	if err := json.Unmarshal(data, &out); err != nil {
		c.log.Warn("predictor response decode failed", zap.Error(err))
		return nil, predictionError(fmt.Errorf("decode predictor resp: %w", err))
	}
	return &out, nil
}

// ErrStaleResponse marks a prediction whose request was superseded by a
// newer submit from the same form instance.
var ErrStaleResponse = errors.New("stale prediction response")

type predictionSubmitter interface {
	Submit(ctx context.Context, form NormalizedForm) (*models.PredictionResult, error)
}

// SessionPredictor guards one form instance against overlapping submits.
// Each Submit takes a fresh generation from a monotonic counter; a response
// arriving after a newer submit has started is discarded rather than
// returned. The loading flag covers every exit path.
type SessionPredictor struct {
	client   predictionSubmitter
	gen      atomic.Uint64
	inflight atomic.Int64
}

func NewSessionPredictor(client predictionSubmitter) *SessionPredictor {
	return &SessionPredictor{client: client}
}

func (s *SessionPredictor) Submit(ctx context.Context, form NormalizedForm) (*models.PredictionResult, error) {
	gen := s.gen.Add(1)
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	res, err := s.client.Submit(ctx, form)
	if s.gen.Load() != gen {
		return nil, ErrStaleResponse
	}
	return res, err
}

// Loading reports whether any submit is still in flight.
func (s *SessionPredictor) Loading() bool { return s.inflight.Load() > 0 }

// predictorPool hands out one SessionPredictor per form instance, keyed by
// the X-Form-Instance header value.
type predictorPool struct {
	mu       sync.Mutex
	sessions map[string]*SessionPredictor
	client   predictionSubmitter
}

func newPredictorPool(client predictionSubmitter) *predictorPool {
	return &predictorPool{
		sessions: make(map[string]*SessionPredictor),
		client:   client,
	}
}

func (p *predictorPool) get(id string) *SessionPredictor {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.sessions[id]; ok {
		return s
	}
	s := NewSessionPredictor(p.client)
	p.sessions[id] = s
	return s
}
