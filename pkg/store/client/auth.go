package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

const (
	serverInfoVersion = "2.4"
	signOutTimeout    = 10 * time.Second
)

// Session is a signed-in REST session on one site.
type Session struct {
	Token      string
	SiteID     string
	UserID     string
	APIVersion string
}

// Authenticator signs in with a personal access token.
type Authenticator struct {
	client *Client
	cfg    *config.Config
}

func NewAuthenticator(client *Client, cfg *config.Config) *Authenticator {
	return &Authenticator{client: client, cfg: cfg}
}

// SignIn exchanges the personal access token for a session.
func (a *Authenticator) SignIn(ctx context.Context) (*Session, error) {
	logger := zerolog.Ctx(ctx)

	version, err := a.apiVersion(ctx)
	if err != nil {
		return nil, err
	}

	var resp api.SignInResponse
	err = a.client.do(ctx, request{
		op:     "sign in",
		method: http.MethodPost,
		path:   []string{"api", version, "auth", "signin"},
		body: api.SignInRequest{Credentials: api.Credentials{
			PersonalAccessTokenName:   a.cfg.TokenName,
			PersonalAccessTokenSecret: a.cfg.TokenSecret,
			Site:                      api.Site{ContentURL: a.cfg.Site},
		}},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Credentials == nil {
		return nil, malformed("sign in", http.StatusOK, errors.New("missing credentials object"))
	}
	if resp.Credentials.Token == "" {
		return nil, &domain.APIError{Op: "sign in", StatusCode: http.StatusOK, Err: fmt.Errorf("%w: empty token", domain.ErrAuthentication)}
	}

	session := &Session{
		Token:      resp.Credentials.Token,
		SiteID:     resp.Credentials.Site.ID,
		APIVersion: version,
	}
	if resp.Credentials.User != nil {
		session.UserID = resp.Credentials.User.ID
	}

	logger.Debug().Str("site_id", session.SiteID).Str("api_version", version).Msg("signed in")
	return session, nil
}

// SignOut invalidates the session token.
func (a *Authenticator) SignOut(ctx context.Context, s *Session) error {
	return a.client.do(ctx, request{
		op:     "sign out",
		method: http.MethodPost,
		path:   []string{"api", s.APIVersion, "auth", "signout"},
		token:  s.Token,
	}, nil)
}

// WithSession signs in, runs fn and always signs out afterwards. A sign-out failure is
// only reported when fn itself succeeded.
func (a *Authenticator) WithSession(ctx context.Context, fn func(ctx context.Context, s *Session) error) (err error) {
	logger := zerolog.Ctx(ctx)

	session, err := a.SignIn(ctx)
	if err != nil {
		return err
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signOutTimeout)
		defer cancel()

		signOutErr := a.SignOut(releaseCtx, session)
		if signOutErr == nil {
			return
		}
		logger.Warn().Err(signOutErr).Msg("failed to sign out")
		if err == nil {
			err = signOutErr
		}
	}()

	return fn(ctx, session)
}

// Token signs in and returns the bearer token for REST calls. The session is left open.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	session, err := a.SignIn(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func (a *Authenticator) apiVersion(ctx context.Context) (string, error) {
	if a.cfg.APIVersion != config.AutoAPIVersion {
		return a.cfg.APIVersion, nil
	}

	var resp api.ServerInfoResponse
	err := a.client.do(ctx, request{
		op:     "server info",
		method: http.MethodGet,
		path:   []string{"api", serverInfoVersion, "serverinfo"},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ServerInfo == nil || resp.ServerInfo.RestAPIVersion == "" {
		return "", malformed("server info", http.StatusOK, errors.New("missing restApiVersion"))
	}

	zerolog.Ctx(ctx).Debug().
		Str("product_version", resp.ServerInfo.ProductVersion.Value).
		Str("api_version", resp.ServerInfo.RestAPIVersion).
		Msg("server version resolved")
	return resp.ServerInfo.RestAPIVersion, nil
}
