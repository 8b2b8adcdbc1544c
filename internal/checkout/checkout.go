package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/cart"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
)

// Service builds the human-readable order summary and the messaging
// deep link. It only initiates the handoff; delivery of the message
// is never confirmed.
type Service struct {
	Store        storage.Store
	Cart         *cart.Service
	WhatsAppLink string
}

func NewService(store storage.Store, cartSvc *cart.Service, whatsappLink string) *Service {
	return &Service{Store: store, Cart: cartSvc, WhatsAppLink: whatsappLink}
}

// Contact returns the last delivery info entered, empty when none.
func (s *Service) Contact(ctx context.Context) models.ContactInfo {
	return storage.Load(ctx, s.Store, storage.ContactKey, models.ContactInfo{})
}

// Confirm persists the contact info, composes the order message over
// the current cart, clears the cart and returns the deep link. A
// failed contact write is non-fatal; the order still goes out.
func (s *Service) Confirm(ctx context.Context, info models.ContactInfo) (string, error) {
	saveErr := storage.Save(ctx, s.Store, storage.ContactKey, info)

	lines := s.Cart.Lines(ctx)
	message := BuildMessage(info, lines, cart.Total(lines))

	link, err := MessageURL(s.WhatsAppLink, message)
	if err != nil {
		return "", fmt.Errorf("checkout: build link: %w", err)
	}

	return link, errors.Join(saveErr, s.Cart.Clear(ctx))
}

// BuildMessage renders the order summary text: contact block, one
// line per cart line with its customizations, then the total.
func BuildMessage(info models.ContactInfo, lines []models.CartLine, total float64) string {
	var b strings.Builder
	b.WriteString("Hello Oukrim Meals,\n")
	b.WriteString("Here is my delivery info:\n")
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	fmt.Fprintf(&b, "City: %s\n", info.City)
	if info.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", info.Phone)
	}
	b.WriteString("\nAnd here is my order:\n\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "- %s (x%d) - %s MAD\n", line.Name, line.Quantity, formatPrice(line.Price*float64(line.Quantity)))
		if line.Customizations != nil {
			if len(line.Customizations.Removed) > 0 {
				fmt.Fprintf(&b, "  (without: %s)\n", strings.Join(line.Customizations.Removed, ", "))
			}
			if line.Customizations.Added != "" {
				fmt.Fprintf(&b, "  (note: %s)\n", line.Customizations.Added)
			}
		}
	}
	fmt.Fprintf(&b, "\nTotal: %s MAD", formatPrice(total))

	return b.String()
}

// MessageURL appends the URL-encoded message as the text query
// parameter of the configured deep link.
func MessageURL(base, message string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("text", message)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
