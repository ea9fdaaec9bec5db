// Package backend отправляет действия дашборда на бэкенд: form-encoded POST с
// анти-CSRF токеном из cookie _xsrf и JSON-полезной нагрузкой.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	// XSRFCookie: имя cookie с анти-CSRF токеном.
	XSRFCookie = "_xsrf"
	// SessionCookie: имя cookie сессии пользователя.
	SessionCookie = "tier_user"

	// FieldBody: поле формы с JSON-нагрузкой для большинства действий.
	FieldBody = "_body"
	// FieldCreateInfo: поле формы с JSON-нагрузкой при создании команды.
	FieldCreateInfo = "_create_info"

	// RequestIDHeader: заголовок с идентификатором запроса для сопоставления логов.
	RequestIDHeader = "X-Request-ID"
)

// Request: одноразовый запрос действия. Собирается заново при каждом вызове.
type Request struct {
	Endpoint  string
	Field     string
	Payload   any
	RequestID string
}

// Response: сырой ответ бэкенда с кодом 2xx.
type Response struct {
	Status int
	Body   []byte
}

// Options задаёт параметры клиента.
type Options struct {
	BaseURL   string
	XSRF      string
	Session   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

type bodyForm struct {
	XSRF string `form:"_xsrf"`
	Body string `form:"_body"`
}

type createInfoForm struct {
	XSRF       string `form:"_xsrf"`
	CreateInfo string `form:"_create_info"`
}

// Client выполняет POST-запросы к бэкенду дашборда.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	jar     http.CookieJar
	enc     *form.Encoder
}

// NewClient создаёт клиента с собственным cookie jar. Если заданы XSRF или Session,
// соответствующие cookie кладутся в jar для адреса бэкенда.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, ErrNoBaseURL
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	var seed []*http.Cookie
	if opts.XSRF != "" {
		seed = append(seed, &http.Cookie{Name: XSRFCookie, Value: opts.XSRF, Path: "/"})
	}
	if opts.Session != "" {
		seed = append(seed, &http.Cookie{Name: SessionCookie, Value: opts.Session, Path: "/"})
	}
	if len(seed) > 0 {
		jar.SetCookies(base, seed)
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Jar:       jar,
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		jar: jar,
		enc: form.NewEncoder(),
	}, nil
}

// XSRF возвращает значение cookie _xsrf или пустую строку, если cookie нет.
func (c *Client) XSRF() string {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == XSRFCookie {
			return ck.Value
		}
	}
	return ""
}

// Encode собирает тело формы: _xsrf и JSON-нагрузку в поле req.Field.
func (c *Client) Encode(req Request) (url.Values, error) {
	raw, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	var v any
	switch req.Field {
	case FieldCreateInfo:
		v = createInfoForm{XSRF: c.XSRF(), CreateInfo: string(raw)}
	case FieldBody, "":
		v = bodyForm{XSRF: c.XSRF(), Body: string(raw)}
	default:
		return nil, errors.Errorf("unknown payload field %q", req.Field)
	}

	values, err := c.enc.Encode(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode form")
	}
	return values, nil
}

// Post отправляет запрос и возвращает тело ответа. Ответ вне 2xx возвращается как *StatusError.
// Повторов и собственного таймаута нет: ожидание ограничено только ctx и Options.Timeout.
func (c *Client) Post(ctx context.Context, req Request) (*Response, error) {
	values, err := c.Encode(req)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath(req.Endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(values.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Requested-With", "XMLHttpRequest")
	if req.RequestID != "" {
		httpReq.Header.Set(RequestIDHeader, req.RequestID)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "post %s", req.Endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", req.Endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}
