package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/config"
	"snarkify-prover/internal/interfaces"
	"snarkify-prover/internal/metrics"
	"snarkify-prover/internal/types"
)

// API version used by the Snarkify platform
const apiVersion = "v1"

// apiKeyHeader carries the caller's secret credential on every request
const apiKeyHeader = "X-Api-Key"

// SnarkifyClient Snarkify proving service client. Configuration is fixed
// at construction and shared read-only across concurrent calls; the
// client keeps no per-task state between calls.
type SnarkifyClient struct {
	baseURL     string
	apiKey      string
	serviceID   string
	sendTimeout time.Duration
	httpClient  *http.Client
	logger      *logrus.Logger
}

// NewSnarkifyClient creates a new Snarkify client
func NewSnarkifyClient(cfg config.SnarkifyConfig, logger *logrus.Logger) *SnarkifyClient {
	timeout := 300 * time.Second
	if cfg.ConnectionTimeoutSec > 0 {
		timeout = time.Duration(cfg.ConnectionTimeoutSec) * time.Second
	}
	retryWait := 10 * time.Second
	if cfg.RetryWaitTimeSec > 0 {
		retryWait = time.Duration(cfg.RetryWaitTimeSec) * time.Second
	}

	transport := &retryTransport{
		next: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
		policy: newRetryPolicy(retryWait, cfg.RetryCount),
	}

	return &SnarkifyClient{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		serviceID:   cfg.ServiceID,
		sendTimeout: timeout,
		httpClient:  &http.Client{Transport: transport},
		logger:      logger,
	}
}

// IsLocal proofs are generated by the remote service
func (c *SnarkifyClient) IsLocal() bool {
	return false
}

// GetVk retrieves the verification key for a circuit version/type
func (c *SnarkifyClient) GetVk(ctx context.Context, req *types.GetVkRequest) *types.GetVkResponse {
	path := fmt.Sprintf("/%s/scroll/sdk/vks/versions/%s/types/%d",
		apiVersion, req.CircuitVersion, uint8(req.CircuitType))

	body, err := c.get(ctx, "get_vk", path)
	if err != nil {
		c.logger.WithError(err).Error("get_vk method failed")
		return &types.GetVkResponse{
			Vk:    "",
			Error: strPtr(fmt.Sprintf("Failed to get vk: %s", err)),
		}
	}

	var resp SnarkifyGetVkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.WithError(err).Error("get_vk method failed")
		return &types.GetVkResponse{
			Vk:    "",
			Error: strPtr(fmt.Sprintf("Failed to get vk: failed to unmarshal response: %s", err)),
		}
	}

	return &types.GetVkResponse{Vk: resp.Vk}
}

// Prove submits a proof task to the remote service
func (c *SnarkifyClient) Prove(ctx context.Context, req *types.ProveRequest) *types.ProveResponse {
	taskReq, err := NewSnarkifyCreateTaskRequest(req)
	if err != nil {
		c.logger.WithError(err).Error("prove method failed")
		return c.buildProveErrorResponse(req, fmt.Sprintf("Failed to request proof: %s", err))
	}

	path := fmt.Sprintf("/%s/services/%s", apiVersion, c.serviceID)

	body, err := c.post(ctx, "prove", path, taskReq)
	if err != nil {
		c.logger.WithError(err).Error("prove method failed")
		return c.buildProveErrorResponse(req, fmt.Sprintf("Failed to request proof: %s", err))
	}

	var resp SnarkifyGetTaskResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.WithError(err).Error("prove method failed")
		return c.buildProveErrorResponse(req,
			fmt.Sprintf("Failed to request proof: failed to unmarshal response: %s", err))
	}

	// a freshly created task cannot have finished: finished_at,
	// compute_time_sec, proof and vk stay unset
	return &types.ProveResponse{
		TaskID:         resp.TaskID,
		CircuitType:    req.CircuitType,
		CircuitVersion: req.CircuitVersion,
		HardForkName:   req.HardForkName,
		Status:         types.ParseTaskState(resp.State),
		CreatedAt:      types.EpochSecondsOrZero(resp.Created),
		StartedAt:      types.EpochSeconds(resp.Started),
		Input:          strPtr(req.Input),
	}
}

// QueryTask observes the current remote state of a task
func (c *SnarkifyClient) QueryTask(ctx context.Context, req *types.QueryTaskRequest) *types.QueryTaskResponse {
	path := fmt.Sprintf("/%s/tasks/%s", apiVersion, req.TaskID)

	body, err := c.get(ctx, "query_task", path)
	if err != nil {
		c.logger.WithError(err).Error("query_task method failed")
		return c.buildQueryTaskErrorResponse(req, fmt.Sprintf("Failed to query proof: %s", err))
	}

	var resp SnarkifyGetTaskResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.WithError(err).Error("query_task method failed")
		return c.buildQueryTaskErrorResponse(req,
			fmt.Sprintf("Failed to query proof: failed to unmarshal response: %s", err))
	}

	// the task's input field is itself JSON-encoded; a decode failure
	// here is handled exactly like a transport failure
	var taskInput SnarkifyCreateTaskInput
	if err := json.Unmarshal([]byte(resp.Input), &taskInput); err != nil {
		c.logger.WithError(err).Error("query_task method failed")
		return c.buildQueryTaskErrorResponse(req, fmt.Sprintf("Failed to parse task input: %s", err))
	}

	startedAt := types.EpochSeconds(resp.Started)
	finishedAt := types.EpochSeconds(resp.Finished)

	return &types.QueryTaskResponse{
		TaskID:         resp.TaskID,
		CircuitType:    taskInput.CircuitType,
		CircuitVersion: taskInput.CircuitVersion,
		HardForkName:   taskInput.HardForkName,
		Status:         types.ParseTaskState(resp.State),
		CreatedAt:      types.EpochSecondsOrZero(resp.Created),
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
		ComputeTimeSec: types.ComputeTimeSec(startedAt, finishedAt),
		Input:          strPtr(taskInput.TaskData),
		Proof:          resp.Proof,
		Error:          resp.Error,
	}
}

// buildProveErrorResponse canonical prove failure: no task was created
// as far as the caller knows, the original input is echoed back
func (c *SnarkifyClient) buildProveErrorResponse(req *types.ProveRequest, errMsg string) *types.ProveResponse {
	return &types.ProveResponse{
		TaskID:         "",
		CircuitType:    req.CircuitType,
		CircuitVersion: req.CircuitVersion,
		HardForkName:   req.HardForkName,
		Status:         types.TaskStatusFailed,
		CreatedAt:      0.0,
		Input:          strPtr(req.Input),
		Error:          strPtr(errMsg),
	}
}

// buildQueryTaskErrorResponse canonical query failure: the requested id
// is echoed and the status stays queued rather than claiming a terminal
// state the adapter could not observe
func (c *SnarkifyClient) buildQueryTaskErrorResponse(req *types.QueryTaskRequest, errMsg string) *types.QueryTaskResponse {
	return &types.QueryTaskResponse{
		TaskID:         req.TaskID,
		CircuitType:    types.CircuitUndefined,
		CircuitVersion: "",
		HardForkName:   "",
		Status:         types.TaskStatusQueued,
		CreatedAt:      0.0,
		Error:          strPtr(errMsg),
	}
}

// buildURL composes the absolute endpoint URL and validates it
func (c *SnarkifyClient) buildURL(path string) (*url.URL, error) {
	fullURL := c.baseURL + path
	u, err := url.Parse(fullURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL '%s': %w", fullURL, err)
	}
	return u, nil
}

// get sends an authenticated GET request and returns the raw body
func (c *SnarkifyClient) get(ctx context.Context, method, path string) ([]byte, error) {
	return c.do(ctx, method, http.MethodGet, path, nil)
}

// post sends an authenticated POST request with a JSON body and returns
// the raw response body
func (c *SnarkifyClient) post(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, method, http.MethodPost, path, data)
}

func (c *SnarkifyClient) do(ctx context.Context, method, httpMethod, path string, payload []byte) ([]byte, error) {
	u, err := c.buildURL(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.WithFields(logrus.Fields{
		"method": httpMethod,
		"path":   path,
	}).Info("[Snarkify Client] sent request")
	if payload != nil {
		c.logger.WithField("path", path).Debugf("[Snarkify Client] request: %s", payload)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.SnarkifyRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SnarkifyRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SnarkifyRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// success or accepted only; anything else is the server explicitly
	// rejecting the request and is surfaced without retry
	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusAccepted {
		metrics.SnarkifyRequestsTotal.WithLabelValues(method, "status_error").Inc()
		return nil, fmt.Errorf("snarkify service returned error for %s (status %d): %s",
			path, resp.StatusCode, string(respBody))
	}

	metrics.SnarkifyRequestsTotal.WithLabelValues(method, "success").Inc()
	c.logger.WithFields(logrus.Fields{
		"method": httpMethod,
		"path":   path,
	}).Info("[Snarkify Client] received response")
	c.logger.WithField("path", path).Debugf("[Snarkify Client] response: %s", respBody)

	return respBody, nil
}

func strPtr(s string) *string {
	return &s
}

// ensure the client implements the host contract
var _ interfaces.ProvingService = (*SnarkifyClient)(nil)
