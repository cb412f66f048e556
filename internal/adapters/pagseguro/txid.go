package pagseguro

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// txidPattern segue o formato do BACEN para cobranças imediatas: 26 a 35 alfanuméricos
var txidPattern = regexp.MustCompile(`^[a-zA-Z0-9]{26,35}$`)

// NewTxID gera um txid de 32 caracteres (UUID v4 sem hífens)
func NewTxID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidTxID verifica se o txid respeita o formato aceito em PUT /cob/{txid}
func ValidTxID(txid string) bool {
	return txidPattern.MatchString(txid)
}
