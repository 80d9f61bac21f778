package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/client/session"
	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

// DefaultPageSize is the number of contacts shown per page.
const DefaultPageSize = 5

// DeletePrompt is the question asked before a contact is removed.
const DeletePrompt = "Delete this contact?"

// ErrFetch wraps every failure of Refresh.
var ErrFetch = errors.New("failed to load contacts")

type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Error
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// ContactForm is the draft being created or edited.
type ContactForm struct {
	Name  string
	Phone string
	Email string
}

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type Option func(*ContactListController)

// WithPageSize overrides DefaultPageSize. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(c *ContactListController) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithFreshEdits makes StartEdit reload the row from the repository instead
// of copying the cached one.
func WithFreshEdits(on bool) Option {
	return func(c *ContactListController) { c.freshEdits = on }
}

// ContactListController owns the contact list view state. It is not safe
// for concurrent use; the REPL drives it from a single goroutine.
type ContactListController struct {
	repo      contacts.Repository
	store     *session.Store
	confirmer Confirmer
	logger    logging.Logger

	pageSize   int
	freshEdits bool

	contacts    []models.Contact
	search      string
	order       models.SortOrder
	page        int
	form        ContactForm
	editingID   string
	state       LoadState
	fetchErr    string
	mutationErr string
}

func NewContactListController(repo contacts.Repository, store *session.Store, confirmer Confirmer, logger logging.Logger, opts ...Option) *ContactListController {
	c := &ContactListController{
		repo:      repo,
		store:     store,
		confirmer: confirmer,
		logger:    logger.With("module", "contacts"),
		pageSize:  DefaultPageSize,
		order:     models.Ascending,
		page:      1,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Refresh reloads every contact in the current sort order. On failure the
// previous list is kept and the error is wrapped in ErrFetch.
func (c *ContactListController) Refresh(ctx context.Context) error {
	c.state = Loading
	c.fetchErr = ""

	list, err := c.repo.List(ctx, c.order)
	if err != nil {
		c.state = Error
		c.fetchErr = ErrFetch.Error()
		c.logger.Warn(ctx, "refresh failed", "error", err.Error())
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	c.contacts = list
	c.state = Ready
	c.logger.Debug(ctx, "contacts loaded", "count", len(list), "order", c.order.String())
	return nil
}

// SetSearch changes the filter text and goes back to page 1 when it
// changed. Nothing is fetched.
func (c *ContactListController) SetSearch(text string) {
	if text != c.search {
		c.page = 1
	}
	c.search = text
}

// SetSortOrder stores o and reloads when it changed.
func (c *ContactListController) SetSortOrder(ctx context.Context, o models.SortOrder) error {
	if o == c.order {
		return nil
	}
	c.order = o
	return c.Refresh(ctx)
}

func (c *ContactListController) ToggleSortOrder(ctx context.Context) error {
	return c.SetSortOrder(ctx, c.order.Toggle())
}

// Filtered returns the cached contacts matching the search text.
func (c *ContactListController) Filtered() []models.Contact {
	return FilterContacts(c.contacts, c.search)
}

// Page returns the slice of Filtered shown on the current page.
func (c *ContactListController) Page() []models.Contact {
	return Paginate(c.Filtered(), c.page, c.pageSize)
}

func (c *ContactListController) PageCount() int {
	return PageCount(len(c.Filtered()), c.pageSize)
}

// ChangePage moves to page n when 1 <= n <= PageCount and reports whether
// it did.
func (c *ContactListController) ChangePage(n int) bool {
	if n < 1 || n > c.PageCount() {
		return false
	}
	c.page = n
	return true
}

func (c *ContactListController) NextPage() bool { return c.ChangePage(c.page + 1) }

func (c *ContactListController) PrevPage() bool { return c.ChangePage(c.page - 1) }

// SetForm replaces the draft.
func (c *ContactListController) SetForm(f ContactForm) {
	c.form = f
}

// Submit saves the draft. A blank name is ignored without touching the
// repository. Otherwise the edited row is updated, or a new one inserted,
// and the list is reloaded from page 1. A failed save keeps the draft and
// the edited id and records the mutation error.
func (c *ContactListController) Submit(ctx context.Context) error {
	if common.IsBlank(c.form.Name) {
		return nil
	}

	c.mutationErr = ""
	contact := models.Contact{ID: c.editingID, Name: c.form.Name, Phone: c.form.Phone, Email: c.form.Email}

	var err error
	if c.editingID != "" {
		_, err = c.repo.Update(ctx, contact)
	} else {
		_, err = c.repo.Insert(ctx, contact)
	}
	if err != nil {
		c.mutationErr = "failed to save contact"
		c.logger.Warn(ctx, "save failed", "id", c.editingID, "error", err.Error())
		return fmt.Errorf("save contact: %w", err)
	}

	c.editingID = ""
	c.form = ContactForm{}
	c.page = 1

	return c.Refresh(ctx)
}

// StartEdit loads contact into the draft and remembers its id.
func (c *ContactListController) StartEdit(ctx context.Context, contact models.Contact) error {
	if c.freshEdits && contact.ID != "" {
		fresh, err := c.repo.Get(ctx, contact.ID)
		if err != nil {
			c.mutationErr = "failed to load contact"
			return fmt.Errorf("load contact: %w", err)
		}
		contact = fresh
	}

	c.mutationErr = ""
	c.editingID = contact.ID
	c.form = ContactForm{Name: contact.Name, Phone: contact.Phone, Email: contact.Email}
	return nil
}

// StartEditByID is StartEdit for a row of the cached list.
func (c *ContactListController) StartEditByID(ctx context.Context, id string) error {
	for _, contact := range c.contacts {
		if contact.ID == id {
			return c.StartEdit(ctx, contact)
		}
	}
	return contacts.ErrNotFound
}

func (c *ContactListController) CancelEdit() {
	c.editingID = ""
	c.form = ContactForm{}
}

// Delete asks for confirmation and then removes id. After the reload the
// current page is pulled back to the last page if it no longer exists.
// It reports whether the contact was deleted.
func (c *ContactListController) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := c.confirmer.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	c.mutationErr = ""
	if err := c.repo.Delete(ctx, id); err != nil {
		c.mutationErr = "failed to delete contact"
		c.logger.Warn(ctx, "delete failed", "id", id, "error", err.Error())
		return false, fmt.Errorf("delete contact: %w", err)
	}

	if id == c.editingID {
		c.CancelEdit()
	}

	if err := c.Refresh(ctx); err != nil {
		return true, err
	}

	if total := c.PageCount(); c.page > total && total > 0 {
		c.page = total
	}

	return true, nil
}

// Logout drops the session. The caller navigates back to login.
func (c *ContactListController) Logout() {
	c.store.Clear()
}

func (c *ContactListController) Search() string              { return c.search }
func (c *ContactListController) SortOrder() models.SortOrder { return c.order }
func (c *ContactListController) CurrentPage() int            { return c.page }
func (c *ContactListController) PageSize() int               { return c.pageSize }
func (c *ContactListController) Form() ContactForm           { return c.form }
func (c *ContactListController) EditingID() string           { return c.editingID }
func (c *ContactListController) State() LoadState            { return c.state }
func (c *ContactListController) FetchError() string          { return c.fetchErr }
func (c *ContactListController) MutationError() string       { return c.mutationErr }

// Contacts returns the cached list in server order.
func (c *ContactListController) Contacts() []models.Contact {
	out := make([]models.Contact, len(c.contacts))
	copy(out, c.contacts)
	return out
}

// FilterContacts keeps the contacts whose name, email or phone contains text,
// ignoring case. Empty text keeps everything. Order is preserved.
func FilterContacts(list []models.Contact, text string) []models.Contact {
	if text == "" {
		out := make([]models.Contact, len(list))
		copy(out, list)
		return out
	}

	needle := strings.ToLower(text)
	out := make([]models.Contact, 0, len(list))
	for _, c := range list {
		for _, field := range []string{c.Name, c.Email, c.Phone} {
			if field != "" && strings.Contains(strings.ToLower(field), needle) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Paginate returns list[(page-1)*size : page*size], clipped to the list.
func Paginate(list []models.Contact, page, size int) []models.Contact {
	if size < 1 || page < 1 {
		return []models.Contact{}
	}
	start := (page - 1) * size
	if start >= len(list) {
		return []models.Contact{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// PageCount is ceil(n/size).
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
