package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"snarkify-prover/internal/interfaces"
	"snarkify-prover/internal/metrics"
	"snarkify-prover/internal/types"
)

// ProverHandler exposes the proving-service contract over HTTP for the
// host system. Adapter responses are total, so handlers answer 200 with
// the error folded into the body; 400 is reserved for requests the
// facade itself cannot parse.
type ProverHandler struct {
	prover interfaces.ProvingService
	logger *logrus.Logger
}

// NewProverHandler creates a new prover handler
func NewProverHandler(prover interfaces.ProvingService, logger *logrus.Logger) *ProverHandler {
	return &ProverHandler{
		prover: prover,
		logger: logger,
	}
}

// GetVk GET /api/v1/vks/versions/:version/types/:type
func (h *ProverHandler) GetVk(c *gin.Context) {
	metrics.FacadeRequestsTotal.WithLabelValues("get_vk").Inc()

	circuitType, err := strconv.ParseUint(c.Param("type"), 10, 8)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"type":  c.Param("type"),
			"error": err.Error(),
		}).Warn("get_vk request with invalid circuit type")

		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid circuit type",
			"message": "The :type path segment must be an unsigned 8-bit integer",
		})
		return
	}

	resp := h.prover.GetVk(c.Request.Context(), &types.GetVkRequest{
		CircuitVersion: c.Param("version"),
		CircuitType:    types.CircuitType(circuitType),
	})
	c.JSON(http.StatusOK, resp)
}

// Prove POST /api/v1/prove
func (h *ProverHandler) Prove(c *gin.Context) {
	metrics.FacadeRequestsTotal.WithLabelValues("prove").Inc()

	var req types.ProveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("prove request with invalid body")

		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.prover.Prove(c.Request.Context(), &req))
}

// QueryTask GET /api/v1/tasks/:task_id
func (h *ProverHandler) QueryTask(c *gin.Context) {
	metrics.FacadeRequestsTotal.WithLabelValues("query_task").Inc()

	resp := h.prover.QueryTask(c.Request.Context(), &types.QueryTaskRequest{
		TaskID: c.Param("task_id"),
	})
	c.JSON(http.StatusOK, resp)
}
