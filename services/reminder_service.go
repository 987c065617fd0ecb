// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageSender abstracts the Twilio call so reminder logic can be tested
// without the network.
type messageSender interface {
	Send(to, from, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
}

func (t *twilioSender) Send(to, from, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)
	_, err := t.client.Api.CreateMessage(params)
	return err
}

// ReminderService nudges clients whose orders are overdue, once per daily
// run, over SMS or WhatsApp. Each sent reminder lands on the order timeline.
type ReminderService struct {
	store    *repositories.Store
	settings *repositories.SettingRepository
	timeline *repositories.TimelineRepository
	sender   messageSender
	enabled  bool
}

func NewReminderService(store *repositories.Store) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &ReminderService{
		store:    store,
		settings: repositories.NewSettingRepository(store),
		timeline: repositories.NewTimelineRepository(store),
		enabled:  accountSid != "" && authToken != "",
	}
	if s.enabled {
		s.sender = &twilioSender{client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})}
	}
	return s
}

func (s *ReminderService) StartScheduler() {
	if !s.enabled {
		log.Println("Payment reminders disabled: Twilio credentials not configured")
		return
	}

	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		s.SendOverdueReminders()
	})
	c.Start()
	log.Println("Payment reminder scheduler started")
}

// SendOverdueReminders messages every client with an overdue order.
func (s *ReminderService) SendOverdueReminders() {
	log.Println("Starting overdue payment reminder run...")

	db, err := s.store.DB()
	if err != nil {
		log.Printf("Reminder run skipped: %v", err)
		return
	}

	workshopName := "the workshop"
	if setting, err := s.settings.Get(); err == nil && setting != nil && setting.WorkshopName != "" {
		workshopName = setting.WorkshopName
	}

	var overdue []models.Order
	if err := db.Where("payment_status = ?", "overdue").Find(&overdue).Error; err != nil {
		log.Printf("Failed to fetch overdue orders: %v", err)
		return
	}

	for _, order := range overdue {
		var client models.Client
		if err := db.First(&client, "id = ?", order.ClientID).Error; err != nil {
			log.Printf("Order %d: client %d not found: %v", order.ID, order.ClientID, err)
			continue
		}
		if client.Phone == "" {
			continue
		}
		s.remind(order, client, workshopName)
	}

	log.Println("Overdue payment reminder run completed")
}

func (s *ReminderService) remind(order models.Order, client models.Client, workshopName string) {
	overdueFor := ""
	if order.CompletionDate != nil {
		if days := utils.DaysBetween(*order.CompletionDate, time.Now()); days > 0 {
			overdueFor = fmt.Sprintf(" (%d days since completion)", days)
		}
	}
	message := fmt.Sprintf("Hi %s, a friendly reminder from %s: payment of %.2f for \"%s\" is overdue%s.",
		client.FirstName, workshopName, order.TotalCost, order.Title, overdueFor)

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	to := client.Phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	comment := fmt.Sprintf("Payment reminder sent to %s", client.Phone)
	if err := s.sender.Send(to, from, message); err != nil {
		log.Printf("Failed to send reminder for order %d to %s: %v", order.ID, client.Phone, err)
		comment = fmt.Sprintf("Payment reminder to %s failed: %v", client.Phone, err)
	}

	event := models.TimelineEvent{
		OrderID:   order.ID,
		EventType: "payment_reminder",
		Comment:   comment,
	}
	if err := s.timeline.AddEvent(&event); err != nil {
		log.Printf("Failed to record reminder event for order %d: %v", order.ID, err)
	}
}
