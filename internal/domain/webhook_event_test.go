package domain

import "testing"

func TestNewWebhookEvent(t *testing.T) {
	e := NewWebhookEvent("req-1", "E123", "tx1", "10.00")

	if e.Status != WebhookStatusPending {
		t.Errorf("Status = %v, want pending", e.Status)
	}
	if e.EventID != "E123" || e.TxID != "tx1" || e.Amount != "10.00" || e.RequestID != "req-1" {
		t.Errorf("evento = %+v", e)
	}
	if e.ReceivedAt.IsZero() {
		t.Error("ReceivedAt não preenchido")
	}
	if e.ProcessingTime() != 0 {
		t.Errorf("ProcessingTime() = %v, want 0", e.ProcessingTime())
	}
}

func TestWebhookEventLifecycle(t *testing.T) {
	t.Run("processado", func(t *testing.T) {
		e := NewWebhookEvent("", "E1", "", "1.00")
		e.MarkProcessing()
		if e.Status.IsFinal() {
			t.Error("processing não deveria ser final")
		}
		e.MarkProcessed()
		if e.Status != WebhookStatusProcessed || e.ProcessedAt == nil {
			t.Errorf("evento = %+v", e)
		}
		if e.ProcessingTime() < 0 {
			t.Errorf("ProcessingTime() = %v", e.ProcessingTime())
		}
	})

	t.Run("falho", func(t *testing.T) {
		e := NewWebhookEvent("", "E1", "", "1.00")
		e.MarkFailed("timeout")
		if e.Status != WebhookStatusFailed || e.ErrorMessage == nil || *e.ErrorMessage != "timeout" {
			t.Errorf("evento = %+v", e)
		}
		if !e.Status.IsFinal() {
			t.Error("failed deveria ser final")
		}
	})

	t.Run("pulado", func(t *testing.T) {
		e := NewWebhookEvent("", "E1", "", "1.00")
		e.MarkSkipped()
		if !e.Status.IsFinal() || e.ProcessedAt != nil {
			t.Errorf("evento = %+v", e)
		}
	})
}

func TestWebhookStatus_IsValid(t *testing.T) {
	for _, s := range ValidWebhookStatuses {
		if !s.IsValid() {
			t.Errorf("%q deveria ser válido", s)
		}
	}
	if WebhookStatus("received").IsValid() {
		t.Error("status desconhecido aceito")
	}
}
