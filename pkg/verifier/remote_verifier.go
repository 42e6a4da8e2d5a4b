package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	didauth "github.com/Volland/did-auth-oidc-siop"
)

// RemoteVerifier delegates signature checking to an external verification
// service instead of resolving and checking locally.
type RemoteVerifier struct {
	verifyURI  string
	authZToken string
	httpClient *http.Client
}

// NewRemoteVerifier creates a RemoteVerifier posting to verifyURI with the
// given bearer token. A nil httpClient falls back to http.DefaultClient.
func NewRemoteVerifier(verifyURI, authZToken string, httpClient *http.Client) *RemoteVerifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteVerifier{
		verifyURI:  verifyURI,
		authZToken: authZToken,
		httpClient: httpClient,
	}
}

// VerifyAuthResponse submits the token for verification. Any non-success
// response or transport error is wrapped with the original message appended;
// nothing is swallowed or retried.
func (r *RemoteVerifier) VerifyAuthResponse(ctx context.Context, token string) error {
	body, err := json.Marshal(map[string]string{"jwt": token})
	if err != nil {
		return fmt.Errorf("marshal verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURI, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", didauth.UserAgent)
	if r.authZToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.authZToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteVerification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrRemoteVerification, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}
