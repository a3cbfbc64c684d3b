package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/stakeledger/pkg/clients"
)

type Webhook struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhook(url string, client clients.HTTPClientI) *Webhook {
	return &Webhook{url: url, client: client}
}

func (w *Webhook) Notify(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Event-Id", e.ID)

	status, _, err := w.client.Post(ctx, w.url, headers, body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("webhook responded with status %d", status)
	}
	return nil
}

func (w *Webhook) Close() error {
	return nil
}
