package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/handoff"
)

func TestCheckoutRequiresCustomerFields(t *testing.T) {
	svc := New(cart.NewStore(), "201000000000")
	_, err := svc.Checkout("s1", CustomerInfo{Name: "x", Phone: " ", Address: "y"})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := New(cart.NewStore(), "201000000000")
	_, err := svc.Checkout("s1", CustomerInfo{Name: "x", Phone: "0100", Address: "y"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty cart, got %v", err)
	}
}

func TestCheckoutBuildsLinkAndClearsCart(t *testing.T) {
	carts := cart.NewStore()
	carts.AddLine("s1", cart.Line{ID: "b1", Name: "Burger", PriceCents: 9000, Quantity: 2})
	svc := New(carts, "201000000000")

	link, err := svc.Checkout("s1", CustomerInfo{Name: "أحمد", Phone: "0100", Address: "القاهرة"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/201000000000?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if len(carts.Lines("s1")) != 0 {
		t.Fatal("expected cart cleared after checkout")
	}
}

func TestCheckoutDoesNotTouchOtherSessions(t *testing.T) {
	carts := cart.NewStore()
	carts.AddLine("s1", cart.Line{ID: "b1", Name: "Burger", PriceCents: 9000, Quantity: 1})
	carts.AddLine("s2", cart.Line{ID: "b1", Name: "Burger", PriceCents: 9000, Quantity: 1})
	svc := New(carts, "201000000000")

	if _, err := svc.Checkout("s1", CustomerInfo{Name: "a", Phone: "b", Address: "c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carts.Lines("s2")) != 1 {
		t.Fatal("other session cart must be untouched")
	}
}

func TestStoreApplication(t *testing.T) {
	svc := New(cart.NewStore(), "201000000000")

	if _, err := svc.StoreApplication(handoff.StoreApplication{StoreName: "x"}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}

	link, err := svc.StoreApplication(handoff.StoreApplication{
		StoreName: "صيدلية النور",
		Category:  "صيدلية",
		OwnerName: "محمد",
		Phone:     "0111",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/201000000000?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
}
