package api

// Contact is a row of the contacts table as it travels on the wire.
type Contact struct {
	ID       string `json:"id,omitempty"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// LoginRequest filters the users table by username and password digest.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse lists every matching row. AccessToken is set only when
// exactly one row matched.
type LoginResponse struct {
	Rows        []*Record `json:"rows"`
	AccessToken string    `json:"access_token,omitempty"`
}

type ListContactsRequest struct {
	Ascending bool `json:"ascending"`
}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

type GetContactRequest struct {
	ID string `json:"id"`
}

type InsertContactRequest struct {
	Contact *Contact `json:"contact"`
}

type UpdateContactRequest struct {
	Contact *Contact `json:"contact"`
}

type ContactResponse struct {
	Contact *Contact `json:"contact"`
}

type DeleteContactRequest struct {
	ID string `json:"id"`
}

type DeleteContactResponse struct{}

type ExportContactsRequest struct{}

type ExportContactsResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
