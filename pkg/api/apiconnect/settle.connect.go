// Package apiconnect wires the settleup services to Connect handlers and
// clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/pkg/api"
)

const (
	// SettleServiceName is the fully-qualified name of the SettleService service.
	SettleServiceName = "settleup.v1.SettleService"
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "settleup.v1.AuthService"
)

const (
	// SettleServiceSettleProcedure is the path of the SettleService's Settle RPC.
	SettleServiceSettleProcedure = "/settleup.v1.SettleService/Settle"
	// AuthServiceLoginProcedure is the path of the AuthService's Login RPC.
	AuthServiceLoginProcedure = "/settleup.v1.AuthService/Login"
	// AuthServiceGetCurrentUserProcedure is the path of the AuthService's GetCurrentUser RPC.
	AuthServiceGetCurrentUserProcedure = "/settleup.v1.AuthService/GetCurrentUser"
)

// SettleServiceClient is a client for the settleup.v1.SettleService service.
type SettleServiceClient interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
}

// NewSettleServiceClient constructs a client for the settleup.v1.SettleService
// service. baseURL is the server root, e.g. http://localhost:8080.
func NewSettleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &settleServiceClient{
		settle: connect.NewClient[api.SettleRequest, api.SettleResponse](
			httpClient,
			baseURL+SettleServiceSettleProcedure,
			opts...,
		),
	}
}

type settleServiceClient struct {
	settle *connect.Client[api.SettleRequest, api.SettleResponse]
}

func (c *settleServiceClient) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

// SettleServiceHandler is implemented by the settle service.
type SettleServiceHandler interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
}

// NewSettleServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and
// the handler itself.
func NewSettleServiceHandler(svc SettleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	settleHandler := connect.NewUnaryHandler(
		SettleServiceSettleProcedure,
		svc.Settle,
		opts...,
	)
	return "/" + SettleServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettleServiceSettleProcedure:
			settleHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettleServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettleServiceHandler struct{}

func (UnimplementedSettleServiceHandler) Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("settleup.v1.SettleService.Settle is not implemented"))
}
