package notify

import (
	"fmt"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// BuildMessage renders the notification text for an event. Pure: same event,
// same message, no side effects.
func BuildMessage(event models.Event) (string, error) {
	switch e := event.(type) {
	case models.BookingCreatedEvent:
		return fmt.Sprintf("New booking received with ID: %d", e.Booking), nil

	case models.BookingStatusUpdatedEvent:
		return fmt.Sprintf("Your booking with ID %d has been updated to status: %s", e.Booking, e.Status), nil

	case models.BookingConfirmedEvent:
		return fmt.Sprintf("Your booking with ID %d has been confirmed", e.Booking), nil

	case models.BlogCreatedEvent:
		return fmt.Sprintf("New blog created by %d with ID: %d", e.Author, e.Blog), nil

	case models.BlogLikedEvent:
		return fmt.Sprintf("Your blog with ID %d has been liked", e.Blog), nil

	case models.BlogCommentedEvent:
		return fmt.Sprintf("Your blog with ID %d has been commented", e.Blog), nil

	case models.CheckoutProductEvent:
		return fmt.Sprintf("New checkout completed!\n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Amount: %d\n"+
			"User ID: %d\n"+
			"Product ID: %d\n"+
			"Reference ID: %s\n"+
			"Session ID: %s\n"+
			"Track the session at: %s",
			e.ProductName, e.Quantity, e.Amount, e.User, e.Product, e.Reference, e.Session, e.SessionURL), nil

	default:
		return "", fmt.Errorf("no message template for channel %q", event.Channel())
	}
}
