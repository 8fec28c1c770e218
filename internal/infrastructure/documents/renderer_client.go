package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"rrportal/internal/usecase/interfaces"
)

var ErrMissingRendererURL = errors.New("missing PDF_RENDERER_URL")

// RendererClient delegates quotation PDF rendering to the external document
// service. The portal only assembles the payload; layout and rendering live
// on the other side of this call.

type RendererClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IDocumentRenderer = (*RendererClient)(nil)

func NewRendererClient(baseURL string) (*RendererClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingRendererURL
	}
	return &RendererClient{baseURL: baseURL, httpClient: &http.Client{}}, nil
}

func (c *RendererClient) RenderQuotationPDF(ctx context.Context, doc interfaces.QuotationDocument) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/render/quotation"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	log.Printf("[documents][renderer] render start quotation_no=%s payload_len=%d", doc.Quotation.QuotationNo, len(body))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[documents][renderer] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[documents][renderer] render failed status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(msg)))
		return nil, fmt.Errorf("renderer responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("[documents][renderer] render success quotation_no=%s pdf_len=%d", doc.Quotation.QuotationNo, len(blob))
	return blob, nil
}
