package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/config"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/rabbitmq"
)

// ANSI
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

// sampleEvents are canned payloads for exercising each channel end to end.
var sampleEvents = map[string]models.Event{
	models.ChannelNewBooking: models.BookingCreatedEvent{
		Booking: 42, User: 7, Destination: 3,
		BookingDate: "2025-06-01", TravelDate: "2025-07-15", TotalPrice: 1899.99,
	},
	models.ChannelUpdateBookingStatus: models.BookingStatusUpdatedEvent{
		Booking: 42, Status: "PENDING", User: 7,
	},
	models.ChannelBookingConfirmed: models.BookingConfirmedEvent{
		Booking: 42, User: 7,
	},
	models.ChannelNewBlog: models.BlogCreatedEvent{
		Blog: 9, Title: "Alps", Author: 3,
	},
	models.ChannelBlogLiked: models.BlogLikedEvent{
		Blog: 9, User: 3,
	},
	models.ChannelBlogCommented: models.BlogCommentedEvent{
		Blog: 9, User: 3, Comment: "Great trip!",
	},
	models.ChannelCheckoutProduct: models.CheckoutProductEvent{
		ProductName: "Trekking Poles", Quantity: 2, Product: 11, User: 7,
		Reference: "ref-77f1", Amount: 5998, Session: "cs_test_a1b2",
		SessionURL: "https://checkout.stripe.com/c/pay/cs_test_a1b2",
	},
}

func main() {
	cfg := config.Load()

	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		fmt.Printf("%sCould not connect to RabbitMQ: %v%s\n", Red, err, Reset)
		os.Exit(1)
	}
	defer rmqConn.Close()

	publisher, err := rabbitmq.NewPublisher(rmqConn)
	if err != nil {
		fmt.Printf("%sCould not create publisher: %v%s\n", Red, err, Reset)
		os.Exit(1)
	}
	defer publisher.Close()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		db = nil
	}

	printBanner()
	shellLoop(publisher, db)
}

func shellLoop(publisher *rabbitmq.Publisher, db *sql.DB) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("%stripezzy>%s ", Bold+Cyan, Reset)

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit" || input == "q":
			fmt.Println("Bye")
			return

		case input == "help" || input == "?":
			printHelp()

		case input == "clear" || input == "cls":
			fmt.Print("\033[2J\033[H")
			printBanner()

		case input == "channels":
			for _, ch := range models.Channels {
				fmt.Printf("  %s\n", ch)
			}

		case input == "status" || input == "s":
			printStatus(db)

		case strings.HasPrefix(input, "publish "):
			publishSample(publisher, strings.TrimSpace(strings.TrimPrefix(input, "publish ")))

		default:
			fmt.Printf("%sUnknown command: %s%s (try 'help')\n", Yellow, input, Reset)
		}
	}
}

func publishSample(publisher *rabbitmq.Publisher, channel string) {
	event, ok := sampleEvents[channel]
	if !ok {
		fmt.Printf("%sUnknown channel: %s%s (try 'channels')\n", Yellow, channel, Reset)
		return
	}

	body, _ := json.Marshal(event)
	correlationID := uuid.New().String()
	if err := publisher.Publish(channel, body, correlationID); err != nil {
		fmt.Printf("%sPublish failed: %v%s\n", Red, err, Reset)
		return
	}
	fmt.Printf("%sPublished%s %s correlation_id=%s\n", Green, Reset, channel, correlationID)
}

func printStatus(db *sql.DB) {
	if db == nil {
		fmt.Printf("%sDatabase not connected%s\n", Dim, Reset)
		return
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM notifications").Scan(&total); err != nil {
		fmt.Printf("%sQuery failed: %v%s\n", Red, err, Reset)
		return
	}
	fmt.Printf("Total notifications: %s%d%s\n", Bold, total, Reset)

	rows, err := db.Query("SELECT user_id, COUNT(*) FROM notifications GROUP BY user_id ORDER BY user_id")
	if err != nil {
		fmt.Printf("%sQuery failed: %v%s\n", Red, err, Reset)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			continue
		}
		fmt.Printf("  user %-6d %d\n", userID, count)
	}
}

func printBanner() {
	fmt.Printf("%sTripezzy notification shell%s — publish sample events, watch them land\n", Bold, Reset)
	fmt.Printf("%stype 'help' for commands%s\n\n", Dim, Reset)
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  publish <channel>   publish a canned sample event on a channel")
	fmt.Println("  channels            list the seven event channels")
	fmt.Println("  status, s           notification counts per user")
	fmt.Println("  clear, cls          clear the screen")
	fmt.Println("  exit, quit, q       leave")
}
