package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/agenda/internal/api"
	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/dmitrijs2005/agenda/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.AgendaClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.accessToken = t
	s.mu.Unlock()
}

// accessTokenInterceptor bounds every call by the configured timeout and
// attaches the current access token.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx = withAccessToken(ctx, s.token())

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewAgendaClientService dials endpointURL lazily; no network traffic
// happens until the first call.
func NewAgendaClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewAgendaClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username, digest string) ([]models.User, error) {

	resp, err := s.client.Login(ctx, &api.LoginRequest{Usuario: username, Password: digest})
	if err != nil {
		return nil, s.mapError(err)
	}

	users := make([]models.User, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		users = append(users, models.User{Columns: r.AsMap()})
	}

	if len(users) == 1 {
		s.setToken(resp.AccessToken)
	}

	return users, nil
}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) ListContacts(ctx context.Context, order models.SortOrder) ([]models.Contact, error) {

	resp, err := s.client.ListContacts(ctx, &api.ListContactsRequest{Ascending: order == models.Ascending})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.Contact, 0, len(resp.Contacts))
	for _, c := range resp.Contacts {
		if c == nil {
			continue
		}
		out = append(out, fromWire(c))
	}

	return out, nil
}

func (s *GRPCClient) GetContact(ctx context.Context, id string) (models.Contact, error) {

	resp, err := s.client.GetContact(ctx, &api.GetContactRequest{ID: id})
	if err != nil {
		return models.Contact{}, s.mapError(err)
	}
	if resp.Contact == nil {
		return models.Contact{}, ErrNotFound
	}

	return fromWire(resp.Contact), nil
}

func (s *GRPCClient) InsertContact(ctx context.Context, c models.Contact) (models.Contact, error) {

	w := toWire(c)
	w.ID = ""

	resp, err := s.client.InsertContact(ctx, &api.InsertContactRequest{Contact: w})
	if err != nil {
		return models.Contact{}, s.mapError(err)
	}
	if resp.Contact == nil {
		return c, nil
	}

	return fromWire(resp.Contact), nil
}

func (s *GRPCClient) UpdateContact(ctx context.Context, c models.Contact) (models.Contact, error) {

	resp, err := s.client.UpdateContact(ctx, &api.UpdateContactRequest{Contact: toWire(c)})
	if err != nil {
		return models.Contact{}, s.mapError(err)
	}
	if resp.Contact == nil {
		return c, nil
	}

	return fromWire(resp.Contact), nil
}

func (s *GRPCClient) DeleteContact(ctx context.Context, id string) error {

	if _, err := s.client.DeleteContact(ctx, &api.DeleteContactRequest{ID: id}); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) ExportContacts(ctx context.Context) (string, string, error) {

	resp, err := s.client.ExportContacts(ctx, &api.ExportContactsRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.Key, resp.URL, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.FailedPrecondition:
		return ErrExportUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toWire(c models.Contact) *api.Contact {
	return &api.Contact{ID: c.ID, Nombre: c.Name, Telefono: c.Phone, Email: c.Email}
}

func fromWire(c *api.Contact) models.Contact {
	return models.Contact{ID: c.ID, Name: c.Nombre, Phone: c.Telefono, Email: c.Email}
}
