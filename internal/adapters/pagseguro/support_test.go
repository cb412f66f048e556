package pagseguro

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/magnani/pagseguro-pix/internal/ports"
)

func TestQueryParams_Encode(t *testing.T) {
	tests := []struct {
		name   string
		params QueryParams
		want   string
	}{
		{
			name:   "vazio",
			params: QueryParams{},
			want:   "",
		},
		{
			name:   "período",
			params: QueryParams{}.Add("inicio", "2024-01-01T00:00:00Z").Add("fim", "2024-01-31T00:00:00Z"),
			want:   "inicio=2024-01-01T00:00:00Z&fim=2024-01-31T00:00:00Z",
		},
		{
			name:   "sem escape",
			params: QueryParams{}.Add("nome", "João Silva"),
			want:   "nome=João Silva",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReceivedPixListQuery_Params(t *testing.T) {
	q := ReceivedPixListQuery{
		Inicio:         "2024-01-01T00:00:00Z",
		Fim:            "2024-01-31T00:00:00Z",
		TxID:           "tx1",
		CNPJ:           "12345678000199",
		PaginaAtual:    2,
		ItensPorPagina: 50,
		Extra:          QueryParams{}.Add("devolucaoPresente", "true"),
	}

	want := "inicio=2024-01-01T00:00:00Z&fim=2024-01-31T00:00:00Z&txid=tx1&cnpj=12345678000199" +
		"&paginacao.paginaAtual=2&paginacao.itensPorPagina=50&devolucaoPresente=true"
	if got := q.Params().Encode(); got != want {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	got := FormatTime(time.Date(2024, 1, 1, 9, 30, 0, 0, loc))
	if got != "2024-01-01T12:30:00Z" {
		t.Errorf("FormatTime() = %v, want 2024-01-01T12:30:00Z", got)
	}
}

func TestChargeStatus(t *testing.T) {
	tests := []struct {
		status  ChargeStatus
		final   bool
		paid    bool
		removed bool
	}{
		{ChargeActive, false, false, false},
		{ChargeCompleted, true, true, false},
		{ChargeRemovedByPayee, true, false, true},
		{ChargeRemovedByProvider, true, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsFinal(); got != tt.final {
				t.Errorf("IsFinal() = %v, want %v", got, tt.final)
			}
			if got := tt.status.IsPaid(); got != tt.paid {
				t.Errorf("IsPaid() = %v, want %v", got, tt.paid)
			}
			if got := tt.status.IsRemoved(); got != tt.removed {
				t.Errorf("IsRemoved() = %v, want %v", got, tt.removed)
			}
		})
	}
}

func TestCharge_DecodesPixArray(t *testing.T) {
	body := `{"txid":"tx","revisao":1,"status":"CONCLUIDA","valor":{"original":"10.00"},"chave":"k",
		"calendario":{"criacao":"2024-01-01T10:00:00Z","expiracao":3600},
		"pix":[{"endToEndId":"E1","txid":"tx","valor":"10.00","horario":"2024-01-01T10:05:00Z",
		"devolucoes":[{"id":"d1","rtrId":"D1","valor":"1.00","status":"DEVOLVIDO"}]}]}`

	var c Charge
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !c.Status.IsPaid() {
		t.Errorf("Status = %v", c.Status)
	}
	if len(c.Pix) != 1 || len(c.Pix[0].Devolucoes) != 1 {
		t.Fatalf("Pix = %+v", c.Pix)
	}
	if !c.Pix[0].Devolucoes[0].Status.IsFinal() {
		t.Error("devolução DEVOLVIDO deveria ser final")
	}
}

func TestTxID(t *testing.T) {
	id := NewTxID()
	if len(id) != 32 {
		t.Errorf("len(NewTxID()) = %v, want 32", len(id))
	}
	if !ValidTxID(id) {
		t.Errorf("ValidTxID(%v) = false", id)
	}
	if NewTxID() == id {
		t.Error("NewTxID() repetiu o valor")
	}

	tests := []struct {
		txid string
		want bool
	}{
		{strings.Repeat("a", 26), true},
		{strings.Repeat("a", 35), true},
		{strings.Repeat("a", 25), false},
		{strings.Repeat("a", 36), false},
		{"7978c0c9-7ea8-47e7-8e88-49634473c1f1", false},
	}
	for _, tt := range tests {
		if got := ValidTxID(tt.txid); got != tt.want {
			t.Errorf("ValidTxID(%v) = %v, want %v", tt.txid, got, tt.want)
		}
	}
}

func TestLoadCredentials(t *testing.T) {
	creds := testCredentials(t)
	dir := t.TempDir()

	certPath := filepath.Join(dir, "cert.crt")
	keyPath := filepath.Join(dir, "cert.key")
	if err := os.WriteFile(certPath, creds.Certificate, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(keyPath, creds.PrivateKey, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadCredentials(certPath, keyPath, "id", "secret")
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if loaded.ClientID != "id" || loaded.ClientSecret != "secret" {
		t.Errorf("credenciais = %+v", loaded)
	}
	if string(loaded.Certificate) != string(creds.Certificate) {
		t.Error("certificado lido difere do gravado")
	}

	_, err = LoadCredentials(filepath.Join(dir, "nao-existe.crt"), keyPath, "id", "secret")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist na cadeia", err)
	}
}

func TestDecodePKCS12_Invalid(t *testing.T) {
	_, err := DecodePKCS12([]byte("não é um p12"), "senha", "id", "secret")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}

	_, err = LoadPKCS12Credentials(filepath.Join(t.TempDir(), "cert.p12"), "", "id", "secret")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestParseNotification(t *testing.T) {
	body := []byte(`{"pix":[{"endToEndId":"E1","txid":"tx1","chave":"k","valor":"10.00","horario":"2024-01-01T10:00:00Z","pagador":{"nome":"Fulano","cpf":"12345678901"},"infoPagador":"mensalidade"}]}`)

	n, err := ParseNotification(body)
	if err != nil {
		t.Fatalf("ParseNotification() error = %v", err)
	}
	if len(n.Pix) != 1 || n.Pix[0].TxID != "tx1" || n.Pix[0].Pagador.Nome != "Fulano" {
		t.Errorf("Pix = %+v", n.Pix)
	}

	for _, bad := range []string{"", "{"} {
		if _, err := ParseNotification([]byte(bad)); !errors.Is(err, ErrDecode) {
			t.Errorf("ParseNotification(%q) error = %v, want ErrDecode", bad, err)
		}
	}
}

func TestValidateSignature(t *testing.T) {
	body := []byte(`{"pix":[]}`)
	secret := "segredo"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	tests := []struct {
		name      string
		signature string
		secret    string
		want      bool
	}{
		{"válida", sig, secret, true},
		{"maiúsculas", strings.ToUpper(sig), secret, true},
		{"secret errado", sig, "outro", false},
		{"vazia", "", secret, false},
		{"sem secret", sig, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSignature(body, tt.signature, tt.secret); got != tt.want {
				t.Errorf("ValidateSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1234, "12.34"},
		{100000, "1000.00"},
		{-250, "-2.50"},
	}

	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Errorf("FormatCents(%d) = %v, want %v", tt.cents, got, tt.want)
		}
	}
}

func TestProvider_CreatePixCharge(t *testing.T) {
	ft := &fakeTransport{handler: func(req *http.Request) (int, string) {
		return http.StatusCreated, `{"txid":"` + strings.TrimPrefix(req.URL.Path, pathCob+"/") + `","revisao":0,"status":"ATIVA","location":"pix.example.com/qr/v2/1","pixCopiaECola":"000201...","calendario":{"criacao":"2024-01-01T10:00:00Z","expiracao":600}}`
	}}
	provider := NewProvider(newAuthenticatedClient(t, true, ft), "chave-recebedor", "")

	resp, err := provider.CreatePixCharge(context.Background(), &ports.PixChargeRequest{
		Amount:        1234,
		Description:   "Plano mensal",
		ExpiresIn:     600,
		PayerName:     "Fulano",
		PayerDocument: "12345678901",
	})
	if err != nil {
		t.Fatalf("CreatePixCharge() error = %v", err)
	}
	if !ValidTxID(resp.TxID) {
		t.Errorf("TxID gerado inválido: %v", resp.TxID)
	}
	if resp.Status != "ATIVA" || resp.PixCode == "" || resp.CreatedAt == "" {
		t.Errorf("resp = %+v", resp)
	}

	var sent CreateChargeRequest
	if err := json.Unmarshal(ft.last(t).Body, &sent); err != nil {
		t.Fatalf("body inválido: %v", err)
	}
	if sent.Valor.Original != "12.34" || sent.Chave != "chave-recebedor" {
		t.Errorf("body = %+v", sent)
	}
	if sent.Devedor == nil || sent.Devedor.CPF != "12345678901" || sent.Devedor.CNPJ != "" {
		t.Errorf("Devedor = %+v", sent.Devedor)
	}
	if sent.Calendario == nil || sent.Calendario.Expiracao != 600 {
		t.Errorf("Calendario = %+v", sent.Calendario)
	}

	_, err = provider.CreatePixCharge(context.Background(), &ports.PixChargeRequest{Amount: 0})
	if !errors.Is(err, ErrUsage) {
		t.Errorf("valor zero: error = %v, want ErrUsage", err)
	}
}

func TestProvider_RefundPix(t *testing.T) {
	ft := &fakeTransport{handler: func(req *http.Request) (int, string) {
		return http.StatusCreated, `{"rtrId":"D1","valor":"5.00","status":"EM_PROCESSAMENTO"}`
	}}
	provider := NewProvider(newAuthenticatedClient(t, true, ft), "k", "")

	resp, err := provider.RefundPix(context.Background(), &ports.PixRefundRequest{EndToEndID: "E1", Amount: 500})
	if err != nil {
		t.Fatalf("RefundPix() error = %v", err)
	}
	if resp.RefundID == "" || resp.Status != "EM_PROCESSAMENTO" || resp.Amount != "5.00" {
		t.Errorf("resp = %+v", resp)
	}
	if !strings.HasPrefix(ft.last(t).Path, "/instant-payments/pix/E1/devolucao/") {
		t.Errorf("path = %v", ft.last(t).Path)
	}
}

func TestProvider_Webhook(t *testing.T) {
	ft := &fakeTransport{handler: routeHandler}
	provider := NewProvider(newAuthenticatedClient(t, true, ft), "chave-padrao", "segredo")

	if err := provider.RegisterWebhook(context.Background(), "", "https://meu.app/api/webhooks/pagseguro"); err != nil {
		t.Fatalf("RegisterWebhook() error = %v", err)
	}
	if got := ft.last(t).Path; got != "/instant-payments/webhook/chave-padrao" {
		t.Errorf("path = %v", got)
	}

	body := []byte(`{"pix":[{"endToEndId":"E1","txid":"tx","valor":"1.00","horario":"h","pagador":{"nome":"Fulano"}}]}`)
	if provider.ValidateWebhookSignature(body, "assinatura-errada") {
		t.Error("assinatura inválida aceita")
	}

	payments, err := provider.ParseWebhookEvent(body)
	if err != nil {
		t.Fatalf("ParseWebhookEvent() error = %v", err)
	}
	if len(payments) != 1 || payments[0].PayerName != "Fulano" || payments[0].Amount != "1.00" {
		t.Errorf("payments = %+v", payments)
	}

	open := NewProvider(nil, "", "")
	if !open.ValidateWebhookSignature(body, "") {
		t.Error("sem secret toda notificação deveria ser aceita")
	}
}
