package notify

import (
	"strings"
	"testing"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

func TestBuildMessage_Templates(t *testing.T) {
	tests := []struct {
		name     string
		event    models.Event
		expected string
	}{
		{
			"booking created",
			models.BookingCreatedEvent{Booking: 42, User: 7},
			"New booking received with ID: 42",
		},
		{
			"booking status updated",
			models.BookingStatusUpdatedEvent{Booking: 42, Status: "CANCELLED", User: 7},
			"Your booking with ID 42 has been updated to status: CANCELLED",
		},
		{
			"booking confirmed",
			models.BookingConfirmedEvent{Booking: 42, User: 7},
			"Your booking with ID 42 has been confirmed",
		},
		{
			"blog created",
			models.BlogCreatedEvent{Blog: 9, Title: "Alps", Author: 3},
			"New blog created by 3 with ID: 9",
		},
		{
			"blog liked",
			models.BlogLikedEvent{Blog: 9, User: 3},
			"Your blog with ID 9 has been liked",
		},
		{
			"blog commented",
			models.BlogCommentedEvent{Blog: 9, User: 3, Comment: "Nice"},
			"Your blog with ID 9 has been commented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := BuildMessage(tt.event)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if message != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, message)
			}
		})
	}
}

func TestBuildMessage_CheckoutProduct(t *testing.T) {
	event := models.CheckoutProductEvent{
		ProductName: "Trekking Poles",
		Quantity:    2,
		Product:     11,
		User:        7,
		Reference:   "ref-77f1",
		Amount:      5998,
		Session:     "cs_test_a1b2",
		SessionURL:  "https://checkout.stripe.com/c/pay/cs_test_a1b2",
	}

	message, err := BuildMessage(event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(message, "\n") {
		t.Error("expected a multi-line seller summary")
	}

	for _, want := range []string{
		"Product: Trekking Poles",
		"Quantity: 2",
		"Amount: 5998",
		"User ID: 7",
		"Product ID: 11",
		"Reference ID: ref-77f1",
		"Session ID: cs_test_a1b2",
		"Track the session at: https://checkout.stripe.com/c/pay/cs_test_a1b2",
	} {
		if !strings.Contains(message, want) {
			t.Errorf("message missing %q:\n%s", want, message)
		}
	}
}

func TestBuildMessage_Deterministic(t *testing.T) {
	event := models.BookingConfirmedEvent{Booking: 42, User: 7}

	first, err := BuildMessage(event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := BuildMessage(event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first != second {
		t.Errorf("expected identical output, got %q then %q", first, second)
	}
}
