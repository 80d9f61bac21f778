package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/agenda/internal/api"
	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	result, err := s.users.Login(ctx, req.Usuario, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	rows := make([]*api.Record, 0, len(result.Rows))
	for _, u := range result.Rows {
		r, err := api.NewRecord(u.Columns)
		if err != nil {
			s.logger.Error(ctx, "cannot encode user row", "error", err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		rows = append(rows, r)
	}

	s.logger.Debug(ctx, "login lookup", "usuario", req.Usuario, "matches", len(rows))
	return &api.LoginResponse{Rows: rows, AccessToken: result.AccessToken}, nil
}

func (s *GRPCServer) ListContacts(ctx context.Context, req *api.ListContactsRequest) (*api.ListContactsResponse, error) {

	list, err := s.contacts.List(ctx, req.Ascending)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*api.Contact, 0, len(list))
	for _, c := range list {
		out = append(out, toWire(c))
	}

	return &api.ListContactsResponse{Contacts: out}, nil
}

func (s *GRPCServer) GetContact(ctx context.Context, req *api.GetContactRequest) (*api.ContactResponse, error) {

	c, err := s.contacts.Get(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.ContactResponse{Contact: toWire(c)}, nil
}

func (s *GRPCServer) InsertContact(ctx context.Context, req *api.InsertContactRequest) (*api.ContactResponse, error) {

	c, err := s.contacts.Create(ctx, fromWire(req.Contact))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.ContactResponse{Contact: toWire(c)}, nil
}

func (s *GRPCServer) UpdateContact(ctx context.Context, req *api.UpdateContactRequest) (*api.ContactResponse, error) {

	c, err := s.contacts.Update(ctx, fromWire(req.Contact))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.ContactResponse{Contact: toWire(c)}, nil
}

func (s *GRPCServer) DeleteContact(ctx context.Context, req *api.DeleteContactRequest) (*api.DeleteContactResponse, error) {

	if err := s.contacts.Delete(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.DeleteContactResponse{}, nil
}

func (s *GRPCServer) ExportContacts(ctx context.Context, req *api.ExportContactsRequest) (*api.ExportContactsResponse, error) {

	key, url, err := s.contacts.Export(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	subject, _ := SubjectFromContext(ctx)
	s.logger.Info(ctx, "contacts exported", "key", key, "usuario", subject)
	return &api.ExportContactsResponse{Key: key, URL: url}, nil
}

// toStatus maps service errors onto gRPC codes. Unexpected errors are logged
// and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorNameRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorExportUnavailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func toWire(c *models.Contact) *api.Contact {
	if c == nil {
		return nil
	}
	return &api.Contact{ID: c.ID, Nombre: c.Name, Telefono: c.Phone, Email: c.Email}
}

func fromWire(c *api.Contact) *models.Contact {
	if c == nil {
		return nil
	}
	return &models.Contact{ID: c.ID, Name: c.Nombre, Phone: c.Telefono, Email: c.Email}
}
