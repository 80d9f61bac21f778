package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "agenda.v1.Agenda"

// Full method names, as seen by interceptors.
const (
	MethodPing           = "/" + ServiceName + "/Ping"
	MethodLogin          = "/" + ServiceName + "/Login"
	MethodListContacts   = "/" + ServiceName + "/ListContacts"
	MethodGetContact     = "/" + ServiceName + "/GetContact"
	MethodInsertContact  = "/" + ServiceName + "/InsertContact"
	MethodUpdateContact  = "/" + ServiceName + "/UpdateContact"
	MethodDeleteContact  = "/" + ServiceName + "/DeleteContact"
	MethodExportContacts = "/" + ServiceName + "/ExportContacts"
)

// AgendaServer is the server API for the agenda service.
type AgendaServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	GetContact(context.Context, *GetContactRequest) (*ContactResponse, error)
	InsertContact(context.Context, *InsertContactRequest) (*ContactResponse, error)
	UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error)
	DeleteContact(context.Context, *DeleteContactRequest) (*DeleteContactResponse, error)
	ExportContacts(context.Context, *ExportContactsRequest) (*ExportContactsResponse, error)
}

// UnimplementedAgendaServer answers every method with codes.Unimplemented.
// Embed it to stay source compatible when methods are added.
type UnimplementedAgendaServer struct{}

func (UnimplementedAgendaServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAgendaServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAgendaServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListContacts not implemented")
}
func (UnimplementedAgendaServer) GetContact(context.Context, *GetContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContact not implemented")
}
func (UnimplementedAgendaServer) InsertContact(context.Context, *InsertContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertContact not implemented")
}
func (UnimplementedAgendaServer) UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateContact not implemented")
}
func (UnimplementedAgendaServer) DeleteContact(context.Context, *DeleteContactRequest) (*DeleteContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteContact not implemented")
}
func (UnimplementedAgendaServer) ExportContacts(context.Context, *ExportContactsRequest) (*ExportContactsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportContacts not implemented")
}

func unary[Req, Resp any](name string, call func(AgendaServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AgendaServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AgendaServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AgendaServiceDesc describes agenda.v1.Agenda for grpc.Server.RegisterService.
var AgendaServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AgendaServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", AgendaServer.Ping),
		unary("Login", AgendaServer.Login),
		unary("ListContacts", AgendaServer.ListContacts),
		unary("GetContact", AgendaServer.GetContact),
		unary("InsertContact", AgendaServer.InsertContact),
		unary("UpdateContact", AgendaServer.UpdateContact),
		unary("DeleteContact", AgendaServer.DeleteContact),
		unary("ExportContacts", AgendaServer.ExportContacts),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agenda/v1/agenda.proto",
}

// RegisterAgendaServer attaches srv to s.
func RegisterAgendaServer(s grpc.ServiceRegistrar, srv AgendaServer) {
	s.RegisterService(&AgendaServiceDesc, srv)
}

// AgendaClient is the client API for the agenda service.
type AgendaClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error)
	GetContact(ctx context.Context, in *GetContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	InsertContact(ctx context.Context, in *InsertContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	UpdateContact(ctx context.Context, in *UpdateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	DeleteContact(ctx context.Context, in *DeleteContactRequest, opts ...grpc.CallOption) (*DeleteContactResponse, error)
	ExportContacts(ctx context.Context, in *ExportContactsRequest, opts ...grpc.CallOption) (*ExportContactsResponse, error)
}

type agendaClient struct {
	cc grpc.ClientConnInterface
}

// NewAgendaClient returns a client that speaks the JSON codec over cc.
func NewAgendaClient(cc grpc.ClientConnInterface) AgendaClient {
	return &agendaClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agendaClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *agendaClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *agendaClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	return invoke[ListContactsResponse](ctx, c.cc, MethodListContacts, in, opts)
}

func (c *agendaClient) GetContact(ctx context.Context, in *GetContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, MethodGetContact, in, opts)
}

func (c *agendaClient) InsertContact(ctx context.Context, in *InsertContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, MethodInsertContact, in, opts)
}

func (c *agendaClient) UpdateContact(ctx context.Context, in *UpdateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, MethodUpdateContact, in, opts)
}

func (c *agendaClient) DeleteContact(ctx context.Context, in *DeleteContactRequest, opts ...grpc.CallOption) (*DeleteContactResponse, error) {
	return invoke[DeleteContactResponse](ctx, c.cc, MethodDeleteContact, in, opts)
}

func (c *agendaClient) ExportContacts(ctx context.Context, in *ExportContactsRequest, opts ...grpc.CallOption) (*ExportContactsResponse, error) {
	return invoke[ExportContactsResponse](ctx, c.cc, MethodExportContacts, in, opts)
}
