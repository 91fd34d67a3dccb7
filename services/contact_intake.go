package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

// maxUserAgentLen bounds the stored user agent.
const maxUserAgentLen = 500

// ContactSubmission is the validated shape of an inbound contact form.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactIntake validates contact-form submissions, persists them, and
// triggers a best-effort notification email.
type ContactIntake struct {
	messages *database.ContactMessageRepo
	settings *database.SiteSettingsRepo
	notifier Notifier
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewContactIntake(db database.Database, notifier Notifier) *ContactIntake {
	return &ContactIntake{
		messages: db.ContactMessageRepo(),
		settings: db.SiteSettingsRepo(),
		notifier: notifier,
		validate: validator.New(),
		logger:   log.With().Str("serviceName", "contactIntake").Logger(),
	}
}

// Validate checks the submission's structural constraints and returns
// field-level errors. Nothing is persisted on failure.
func (s *ContactIntake) Validate(submission ContactSubmission) *errs.ValidationErr {
	err := s.validate.Struct(submission)
	if err == nil {
		return nil
	}

	validationErr := errs.NewValidationError()
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		validationErr.AddFieldError("form", "Invalid submission.")
		return validationErr
	}

	for _, fieldError := range fieldErrors {
		field := fieldName(fieldError)
		switch fieldError.Tag() {
		case "required":
			validationErr.AddFieldError(field, "This field is required.")
		case "email":
			validationErr.AddFieldError(field, "Enter a valid email address.")
		default:
			validationErr.AddFieldError(field, "This value is invalid.")
		}
	}
	return validationErr
}

// Submit validates and persists a contact message, then dispatches the
// notification email. A delivery failure is logged and swallowed: the
// persisted message is the durable outcome of the request.
func (s *ContactIntake) Submit(submission ContactSubmission, ipAddress, userAgent string) (*models.ContactMessage, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}
	if !settings.EnableContactForm {
		return nil, errs.NewNotFoundError("contact form is disabled")
	}

	if validationErr := s.Validate(submission); validationErr != nil {
		return nil, validationErr
	}

	if len(userAgent) > maxUserAgentLen {
		userAgent = userAgent[:maxUserAgentLen]
	}

	message := &models.ContactMessage{
		Name:      submission.Name,
		Email:     submission.Email,
		Subject:   submission.Subject,
		Message:   submission.Message,
		Status:    models.MessageNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.messages.Add(message); err != nil {
		return nil, errs.NewDatabaseError("create", "contact message", err)
	}

	s.notify(message, settings)
	return message, nil
}

// notify sends the notification email to the configured address, falling
// back to the general contact address. Failure never affects the request.
func (s *ContactIntake) notify(message *models.ContactMessage, settings *models.SiteSettings) {
	recipient := settings.NotificationEmail
	if recipient == "" {
		recipient = settings.ContactEmail
	}
	if recipient == "" {
		s.logger.Warn().Msg("no notification recipient configured, skipping email")
		return
	}

	if err := s.notifier.NotifyNewMessage(message, recipient); err != nil {
		s.logger.Error().Err(err).
			Str("messageID", message.ID.String()).
			Msg("contact notification email failed")
	}
}

// fieldName maps a validator field to its form/json name.
func fieldName(fieldError validator.FieldError) string {
	switch fieldError.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Subject":
		return "subject"
	case "Message":
		return "message"
	}
	return fieldError.Field()
}
