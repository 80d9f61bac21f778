package api

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeAgenda struct {
	UnimplementedAgendaServer

	lastLogin *LoginRequest
	lastList  *ListContactsRequest
}

func (f *fakeAgenda) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (f *fakeAgenda) Login(_ context.Context, in *LoginRequest) (*LoginResponse, error) {
	f.lastLogin = in
	rec, err := NewRecord(map[string]any{"usuario": in.Usuario, "password": in.Password, "edad": 30})
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Rows: []*Record{rec}, AccessToken: "tok"}, nil
}

func (f *fakeAgenda) ListContacts(_ context.Context, in *ListContactsRequest) (*ListContactsResponse, error) {
	f.lastList = in
	return &ListContactsResponse{Contacts: []*Contact{
		{ID: "2", Nombre: "Beto"},
		{ID: "1", Nombre: "Ana", Telefono: "555", Email: "ana@example.com"},
	}}, nil
}

func startServer(t *testing.T, srv AgendaServer, opts ...grpc.ServerOption) AgendaClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterAgendaServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewAgendaClient(conn)
}

func TestAgenda_RoundTripOverJSONCodec(t *testing.T) {
	fake := &fakeAgenda{}
	c := startServer(t, fake)
	ctx := context.Background()

	pong, err := c.Ping(ctx, &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	resp, err := c.Login(ctx, &LoginRequest{Usuario: "ana", Password: "abc123"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, map[string]any{"usuario": "ana", "password": "abc123", "edad": float64(30)}, resp.Rows[0].AsMap())
	assert.Equal(t, &LoginRequest{Usuario: "ana", Password: "abc123"}, fake.lastLogin)

	list, err := c.ListContacts(ctx, &ListContactsRequest{Ascending: true})
	require.NoError(t, err)
	require.Len(t, list.Contacts, 2)
	assert.Equal(t, "Beto", list.Contacts[0].Nombre)
	assert.Equal(t, "ana@example.com", list.Contacts[1].Email)
	assert.True(t, fake.lastList.Ascending)
}

func TestAgenda_UnimplementedMethods(t *testing.T) {
	c := startServer(t, &fakeAgenda{})

	_, err := c.ExportContacts(context.Background(), &ExportContactsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestAgenda_InterceptorSeesFullMethod(t *testing.T) {
	var seen []string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = append(seen, info.FullMethod)
		return handler(ctx, req)
	}
	c := startServer(t, &fakeAgenda{}, grpc.UnaryInterceptor(interceptor))

	_, err := c.Ping(context.Background(), &PingRequest{})
	require.NoError(t, err)
	_, err = c.ListContacts(context.Background(), &ListContactsRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{MethodPing, MethodListContacts}, seen)
}

func TestRecord_NilAndInvalid(t *testing.T) {
	var r *Record
	assert.Empty(t, r.AsMap())

	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	_, err = NewRecord(map[string]any{"bad": struct{}{}})
	require.Error(t, err)
}
