package order

import (
	"errors"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/handoff"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingFields is returned when a required customer field is
	// blank.
	ErrMissingFields = errors.New("name, phone and address are required")
)

// Service turns a session cart plus customer details into the WhatsApp
// hand-off link and clears the cart once the link is built. There is no
// payment step behind it.
type Service struct {
	carts  *cart.Store
	number string
}

func New(carts *cart.Store, whatsAppNumber string) *Service {
	return &Service{carts: carts, number: whatsAppNumber}
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Checkout validates the customer info, renders the order summary for the
// current session cart and returns the wa.me link. The cart is cleared on
// success.
func (s *Service) Checkout(sessionID string, info CustomerInfo) (string, error) {
	name := strings.TrimSpace(info.Name)
	phone := strings.TrimSpace(info.Phone)
	address := strings.TrimSpace(info.Address)
	if name == "" || phone == "" || address == "" {
		return "", ErrMissingFields
	}

	lines := s.carts.Lines(sessionID)
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	msg := handoff.OrderMessage(handoff.Order{
		CustomerName: name,
		Phone:        phone,
		Address:      address,
		Notes:        strings.TrimSpace(info.Notes),
		Lines:        lines,
		TotalCents:   s.carts.TotalCents(sessionID),
	})
	link := handoff.Link(s.number, msg)

	s.carts.Clear(sessionID)
	return link, nil
}

// StoreApplication renders a merchant "add my store" request into its
// hand-off link.
func (s *Service) StoreApplication(app handoff.StoreApplication) (string, error) {
	if strings.TrimSpace(app.StoreName) == "" ||
		strings.TrimSpace(app.Category) == "" ||
		strings.TrimSpace(app.OwnerName) == "" ||
		strings.TrimSpace(app.Phone) == "" {
		return "", ErrMissingFields
	}
	return handoff.Link(s.number, handoff.StoreApplicationMessage(app)), nil
}
