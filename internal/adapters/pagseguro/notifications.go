package pagseguro

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

// Notification é o corpo enviado pela PagSeguro para a URL de webhook
type Notification struct {
	Pix []ReceivedPix `json:"pix"`
}

// ParseNotification decodifica o corpo de uma notificação PIX
func ParseNotification(body []byte) (*Notification, error) {
	if len(body) == 0 {
		return nil, &DecodeError{Endpoint: "webhook", Cause: errors.New("corpo vazio")}
	}

	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, &DecodeError{Endpoint: "webhook", Body: trimBody(body, 4096), Cause: err}
	}
	return &n, nil
}

// ValidateSignature valida a assinatura HMAC-SHA256 (hex) do corpo.
// A PagSeguro autentica o webhook via mTLS; a assinatura é uma camada
// adicional para quando há um proxy entre o PSP e o serviço.
func ValidateSignature(body []byte, signature, secret string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expectedSig := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(expectedSig))
}
