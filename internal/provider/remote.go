package provider

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/privault/privault/internal/config"
	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/models"
)

// Remote delegates encryption to an external trust service over HTTPS. The
// service holds the keys; this adapter only moves tagged parts back and
// forth. Requests carry the externally issued session token as a bearer
// token.
type Remote struct {
	client *resty.Client
	logger *logger.Logger
}

type encryptRequest struct {
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Payload []byte `json:"payload"`
	Tag     string `json:"tag"`
}

type encryptResponse struct {
	Ciphertexts []models.Ciphertext `json:"ciphertexts"`
}

type decryptRequest struct {
	Parts []wireCipherPart `json:"parts"`
}

type wireCipherPart struct {
	Ciphertext models.Ciphertext `json:"ciphertext"`
	Tag        string            `json:"tag"`
}

type decryptResponse struct {
	Plaintexts [][]byte `json:"plaintexts"`
}

func NewRemote(cfg config.Provider, token string, log *logger.Logger) *Remote {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json")

	return &Remote{
		client: client,
		logger: log,
	}
}

func (r *Remote) EncryptParts(ctx context.Context, parts []envelope.Part) ([]models.Ciphertext, error) {
	req := encryptRequest{Parts: make([]wirePart, len(parts))}
	for i, part := range parts {
		req.Parts[i] = wirePart{Payload: part.Payload, Tag: part.Tag}
	}

	var res encryptResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&res).
		Post("/vault/encrypt")
	if err != nil {
		r.logger.Err(err).Str("func", "Remote.EncryptParts").Msg("encrypt request failed")
		return nil, fmt.Errorf("%w: %s", ErrTrustService, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: encrypt returned %s", ErrTrustService, resp.Status())
	}

	return res.Ciphertexts, nil
}

func (r *Remote) DecryptParts(ctx context.Context, parts []envelope.CipherPart) ([][]byte, error) {
	req := decryptRequest{Parts: make([]wireCipherPart, len(parts))}
	for i, part := range parts {
		req.Parts[i] = wireCipherPart{Ciphertext: part.Ciphertext, Tag: part.Tag}
	}

	var res decryptResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&res).
		Post("/vault/decrypt")
	if err != nil {
		r.logger.Err(err).Str("func", "Remote.DecryptParts").Msg("decrypt request failed")
		return nil, fmt.Errorf("%w: %s", ErrTrustService, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: decrypt returned %s", ErrTrustService, resp.Status())
	}

	return res.Plaintexts, nil
}
