package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
	"github.com/magnani/pagseguro-pix/internal/logger"
	"github.com/magnani/pagseguro-pix/internal/ports"
)

// PixHandler expõe as cobranças e devoluções PIX via HTTP
type PixHandler struct {
	provider ports.PixProvider
	logger   logrus.FieldLogger
}

// NewPixHandler cria um novo handler de PIX
func NewPixHandler(provider ports.PixProvider) *PixHandler {
	return &PixHandler{
		provider: provider,
		logger:   logger.NewModuleLogger("pix-handler"),
	}
}

type createChargeRequest struct {
	TxID          string `json:"txid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"` // centavos
	Description   string `json:"description"`
	ExpiresIn     int    `json:"expires_in"`
	PayerName     string `json:"payer_name"`
	PayerDocument string `json:"payer_document"`
}

type chargeResponse struct {
	TxID      string `json:"txid"`
	Revision  int    `json:"revision"`
	Status    string `json:"status"`
	Location  string `json:"location,omitempty"`
	PixCode   string `json:"pix_code,omitempty"`
	QRCodeURL string `json:"qrcode_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type refundRequest struct {
	EndToEndID string `json:"end_to_end_id" binding:"required"`
	RefundID   string `json:"refund_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

type refundResponse struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
}

// CreateCharge trata POST /api/v1/pix/charges
func (h *PixHandler) CreateCharge(c *gin.Context) {
	var req createChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requisição inválida: " + err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	charge, err := h.provider.CreatePixCharge(c.Request.Context(), &ports.PixChargeRequest{
		TxID:          req.TxID,
		Amount:        req.Amount,
		Description:   req.Description,
		ExpiresIn:     req.ExpiresIn,
		PayerName:     req.PayerName,
		PayerDocument: req.PayerDocument,
	})
	if err != nil {
		h.writeError(c, "Erro ao criar cobrança", err)
		return
	}

	c.JSON(http.StatusCreated, toChargeResponse(charge))
}

// GetCharge trata GET /api/v1/pix/charges/:txid
func (h *PixHandler) GetCharge(c *gin.Context) {
	charge, err := h.provider.GetPixCharge(c.Request.Context(), c.Param("txid"))
	if err != nil {
		h.writeError(c, "Erro ao consultar cobrança", err)
		return
	}
	c.JSON(http.StatusOK, toChargeResponse(charge))
}

// CancelCharge trata DELETE /api/v1/pix/charges/:txid
func (h *PixHandler) CancelCharge(c *gin.Context) {
	if err := h.provider.CancelPixCharge(c.Request.Context(), c.Param("txid")); err != nil {
		h.writeError(c, "Erro ao cancelar cobrança", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestRefund trata POST /api/v1/pix/refunds
func (h *PixHandler) RequestRefund(c *gin.Context) {
	var req refundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requisição inválida: " + err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	refund, err := h.provider.RefundPix(c.Request.Context(), &ports.PixRefundRequest{
		EndToEndID: req.EndToEndID,
		RefundID:   req.RefundID,
		Amount:     req.Amount,
	})
	if err != nil {
		h.writeError(c, "Erro ao solicitar devolução", err)
		return
	}

	c.JSON(http.StatusCreated, refundResponse{
		RefundID: refund.RefundID,
		Status:   refund.Status,
		Amount:   refund.Amount,
	})
}

// writeError converte os erros do cliente PagSeguro em status HTTP
func (h *PixHandler) writeError(c *gin.Context, msg string, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, pagseguro.ErrUsage):
		status, code = http.StatusBadRequest, "INVALID_REQUEST"
	case pagseguro.IsNotFound(err):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, pagseguro.ErrRemoteAPI):
		status, code = http.StatusBadGateway, "PROVIDER_ERROR"
	case errors.Is(err, pagseguro.ErrTransport):
		status, code = http.StatusGatewayTimeout, "PROVIDER_UNAVAILABLE"
	}

	entry := logger.LoggerWithContext(h.logger, c).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"error": msg, "code": code})
}

func toChargeResponse(c *ports.PixChargeResponse) chargeResponse {
	return chargeResponse{
		TxID:      c.TxID,
		Revision:  c.Revision,
		Status:    c.Status,
		Location:  c.Location,
		PixCode:   c.PixCode,
		QRCodeURL: c.QRCodeURL,
		CreatedAt: c.CreatedAt,
	}
}
