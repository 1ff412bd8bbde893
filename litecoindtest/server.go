package litecoindtest

import (
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/dogmatiq/litecoind"
)

// Server is an in-process fake of the daemon's JSON-RPC server.
//
// It speaks the legacy JSON-RPC 1.0 dialect used by the daemon, in which error
// responses are sent with a non-2xx HTTP status code.
type Server struct {
	httpServer  *httptest.Server
	routes      map[string]Handler
	useTLS      bool
	requireAuth bool
	username    string
	password    string

	m        sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest is an HTTP request received by the fake daemon.
type RecordedRequest struct {
	// Path is the HTTP request path.
	Path string

	// Header is the HTTP request header.
	Header http.Header

	// Username and Password are the basic-auth credentials. HasAuth is false
	// if the request did not carry any credentials.
	Username string
	Password string
	HasAuth  bool

	// Body is the raw HTTP request body.
	Body []byte

	// Call is the JSON-RPC call in the request. It is zero-valued if the body
	// could not be parsed.
	Call Call
}

// NewServer starts and returns a new fake daemon.
//
// The server must be closed when it is no longer needed.
func NewServer(options ...ServerOption) *Server {
	s := &Server{
		routes: map[string]Handler{},
	}

	for _, opt := range options {
		opt(s)
	}

	s.httpServer = httptest.NewUnstartedServer(s)

	if s.useTLS {
		s.httpServer.StartTLS()
	} else {
		s.httpServer.Start()
	}

	return s
}

// CertificatePEM returns the server's TLS certificate, PEM-encoded, for use as
// a CA bundle. It returns nil if the server was not started with WithTLS().
func (s *Server) CertificatePEM() []byte {
	cert := s.httpServer.Certificate()
	if cert == nil {
		return nil
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: cert.Raw,
	})
}

// URL returns the connection URL of the server, without credentials.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts down the server.
func (s *Server) Close() {
	s.httpServer.Close()
}

// Requests returns the requests received by the server, in order.
func (s *Server) Requests() []RecordedRequest {
	s.m.Lock()
	defer s.m.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

// ServeHTTP handles an HTTP request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
	}
	rec.Username, rec.Password, rec.HasAuth = r.BasicAuth()

	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}

	body, bodyErr := readBody(r)
	rec.Body = body
	parseErr := json.Unmarshal(body, &req)

	wallet, pathOK := walletFromPath(r.URL.Path)
	if parseErr == nil {
		rec.Call = Call{
			Method:     req.Method,
			Wallet:     wallet,
			Parameters: req.Params,
		}
	}

	s.m.Lock()
	s.requests = append(s.requests, rec)
	s.m.Unlock()

	switch {
	case s.requireAuth && (!rec.HasAuth || rec.Username != s.username || rec.Password != s.password):
		w.WriteHeader(http.StatusUnauthorized)
		return
	case r.Method != http.MethodPost:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	case !pathOK:
		w.WriteHeader(http.StatusNotFound)
		return
	case bodyErr != nil || parseErr != nil:
		writeError(w, nil, litecoind.NewLitecoindError(litecoind.ParseErrorCode, "Parse error"))
		return
	}

	result, err := s.route(r.Context(), rec.Call)
	if err != nil {
		writeError(w, req.ID, err)
		return
	}

	writeResponse(w, http.StatusOK, response{
		Result: result,
		ID:     req.ID,
	})
}

// response is the JSON-RPC 1.0 response envelope.
type response struct {
	Result any                  `json:"result"`
	Error  *litecoind.ErrorInfo `json:"error"`
	ID     json.RawMessage      `json:"id"`
}

// writeError writes a JSON-RPC error response.
func writeError(w http.ResponseWriter, id json.RawMessage, err error) {
	var daemonErr *litecoind.LitecoindError
	if !errors.As(err, &daemonErr) {
		daemonErr = litecoind.NewLitecoindError(litecoind.MiscErrorCode, err.Error())
	}

	writeResponse(
		w,
		httpStatusFromError(daemonErr.Code()),
		response{
			Error: &litecoind.ErrorInfo{
				Code:    daemonErr.Code(),
				Message: daemonErr.Message(),
			},
			ID: id,
		},
	)
}

// writeResponse writes a JSON-RPC response with the given HTTP status.
func writeResponse(w http.ResponseWriter, status int, res response) {
	if res.ID == nil {
		res.ID = json.RawMessage(`null`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Errors can not be reported to the client once the headers are written.
	json.NewEncoder(w).Encode(res) // nolint:errcheck
}

// httpStatusFromError returns the HTTP status code that the daemon uses for
// errors with the given code.
func httpStatusFromError(c litecoind.ErrorCode) int {
	switch c {
	case litecoind.InvalidRequestCode:
		return http.StatusBadRequest
	case litecoind.MethodNotFoundCode:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// walletFromPath returns the wallet name encoded in an endpoint path.
func walletFromPath(p string) (wallet string, ok bool) {
	if p == "" || p == "/" {
		return "", true
	}

	if name, ok := strings.CutPrefix(p, "/wallet/"); ok {
		return name, true
	}

	return "", false
}
