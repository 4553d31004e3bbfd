package models

// Channel names the domain services publish on. Each channel carries exactly
// one payload shape; the routing key on the events exchange is the channel name.
const (
	ChannelNewBooking          = "new-booking"
	ChannelUpdateBookingStatus = "update-booking-status"
	ChannelBookingConfirmed    = "booking-confirmed"
	ChannelNewBlog             = "new-blog"
	ChannelBlogLiked           = "blog-liked"
	ChannelBlogCommented       = "blog-commented"
	ChannelCheckoutProduct     = "checkout-product"
)

// Channels lists every channel the notification consumer subscribes to.
var Channels = []string{
	ChannelNewBooking,
	ChannelUpdateBookingStatus,
	ChannelBookingConfirmed,
	ChannelNewBlog,
	ChannelBlogLiked,
	ChannelBlogCommented,
	ChannelCheckoutProduct,
}

// Event is the tagged union of domain event payloads. Events are ephemeral:
// decoded from the bus, turned into notifications, then dropped. Payloads
// carry no event ID, so a redelivered message is indistinguishable from a
// new one.
type Event interface {
	// Channel returns the channel name the event is published on.
	Channel() string
}

// BookingCreatedEvent is published on new-booking when a booking is placed.
type BookingCreatedEvent struct {
	Booking     int64   `json:"booking"`
	User        int64   `json:"user"`
	Destination int64   `json:"destination"`
	BookingDate string  `json:"bookingDate"`
	TravelDate  string  `json:"travelDate"`
	TotalPrice  float64 `json:"totalPrice"`
}

// BookingStatusUpdatedEvent is published on update-booking-status.
type BookingStatusUpdatedEvent struct {
	Booking int64  `json:"booking"`
	Status  string `json:"status"`
	User    int64  `json:"user"`
}

// BookingConfirmedEvent is published on booking-confirmed.
type BookingConfirmedEvent struct {
	Booking int64 `json:"booking"`
	User    int64 `json:"user"`
}

// BlogCreatedEvent is published on new-blog.
type BlogCreatedEvent struct {
	Blog   int64  `json:"blog"`
	Title  string `json:"title"`
	Author int64  `json:"author"`
}

// BlogLikedEvent is published on blog-liked.
type BlogLikedEvent struct {
	Blog int64 `json:"blog"`
	User int64 `json:"user"`
}

// BlogCommentedEvent is published on blog-commented.
type BlogCommentedEvent struct {
	Blog    int64  `json:"blog"`
	User    int64  `json:"user"`
	Comment string `json:"comment"`
}

// CheckoutProductEvent is published on checkout-product after a Stripe
// checkout session completes. Amount is in minor currency units as the
// payment service reports it.
type CheckoutProductEvent struct {
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	Product     int64  `json:"product"`
	User        int64  `json:"user"`
	Reference   string `json:"reference"`
	Amount      int64  `json:"amount"`
	Session     string `json:"session"`
	SessionURL  string `json:"sessionUrl"`
}

func (BookingCreatedEvent) Channel() string       { return ChannelNewBooking }
func (BookingStatusUpdatedEvent) Channel() string { return ChannelUpdateBookingStatus }
func (BookingConfirmedEvent) Channel() string     { return ChannelBookingConfirmed }
func (BlogCreatedEvent) Channel() string          { return ChannelNewBlog }
func (BlogLikedEvent) Channel() string            { return ChannelBlogLiked }
func (BlogCommentedEvent) Channel() string        { return ChannelBlogCommented }
func (CheckoutProductEvent) Channel() string      { return ChannelCheckoutProduct }
