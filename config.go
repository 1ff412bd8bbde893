package litecoind

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultPort is the port used when the connection URL does not specify
	// one.
	DefaultPort = 9332

	// DefaultURL is the connection URL used when New() is called with an
	// empty URL.
	DefaultURL = "http://127.0.0.1:9332/"
)

// Config is the connection configuration of a Client.
type Config struct {
	// Scheme is the URL scheme, either "http" or "https".
	Scheme string `validate:"required,oneof=http https"`

	// Host is the host name or IP address of the daemon.
	Host string `validate:"required"`

	// Port is the TCP port of the daemon's RPC server.
	Port int `validate:"min=1,max=65535"`

	// Path is a path prefix that is prepended to every endpoint. It is empty
	// unless the daemon is behind a proxy.
	Path string

	// Username and Password are the basic-auth credentials sent with each
	// request.
	Username string
	Password string

	// CA is the path to a PEM-encoded CA bundle used to verify the daemon's
	// TLS certificate. If it is empty the system roots are used.
	CA string `validate:"omitempty,file"`

	// CookieFile is the path to the daemon's authentication cookie. If it is
	// non-empty it takes precedence over Username and Password.
	CookieFile string
}

var validate = validator.New()

// ParseURL parses a connection URL of the form
// scheme://[user[:pass]@]host[:port][/].
//
// If the URL is invalid it returns a *ClientError with the message
// "Invalid url".
func ParseURL(raw string) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, invalidURL(err)
	}

	if u.Scheme == "" || u.Hostname() == "" {
		return Config{}, invalidURL(
			fmt.Errorf("connection URL (%s) must include a scheme and a host", raw),
		)
	}

	cfg := Config{
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Hostname(),
		Port:   DefaultPort,
		Path:   strings.TrimSuffix(u.Path, "/"),
	}

	if p := u.Port(); p != "" {
		cfg.Port, err = strconv.Atoi(p)
		if err != nil {
			return Config{}, invalidURL(err)
		}
	}

	if u.User != nil {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, invalidURL(err)
	}

	return cfg, nil
}

// BaseURL returns the URL of the daemon's root endpoint, without credentials.
func (c Config) BaseURL() *url.URL {
	return &url.URL{
		Scheme: c.Scheme,
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   c.Path + "/",
	}
}

// Auth returns the basic-auth credentials in the configuration.
func (c Config) Auth() (username, password string) {
	return c.Username, c.Password
}

// Validate returns an error if the configuration is invalid.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			if v.Field() == "CA" {
				return NewClientError(
					0,
					fmt.Sprintf("CA bundle (%s) does not exist", c.CA),
					err,
				)
			}
		}
	}

	return invalidURL(err)
}

// newHTTPClient returns the HTTP client used for a configuration.
func newHTTPClient(cfg Config) (*http.Client, error) {
	if cfg.CA == "" {
		return &http.Client{}, nil
	}

	pem, err := os.ReadFile(cfg.CA)
	if err != nil {
		return nil, NewClientError(
			0,
			fmt.Sprintf("unable to read CA bundle: %s", err),
			err,
		)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, NewClientError(
			0,
			fmt.Sprintf("CA bundle (%s) does not contain any PEM-encoded certificates", cfg.CA),
			nil,
		)
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{Transport: t}, nil
}

func invalidURL(cause error) *ClientError {
	return NewClientError(0, "Invalid url", cause)
}
