package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/email"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/validation"
)

type contactUsecase struct {
	contacts domain.ContactRepository
	mailer   *email.EmailService
}

func NewContactUsecase(contacts domain.ContactRepository, mailer *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{contacts: contacts, mailer: mailer}
}

// SubmitContact persists the message and then notifies staff by email. The
// notification is best effort: a failed send never fails the submission.
func (u *contactUsecase) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	checks := []error{
		validation.TextInput(msg.Name, 2, 150),
		validation.SafeEmail(msg.Email),
		validation.PhoneNumber(msg.Phone),
		validation.TextInput(msg.Message, 10, 2000),
	}
	for _, err := range checks {
		if err != nil {
			return apperror.BadRequest(err.Error())
		}
	}

	if err := u.contacts.Create(ctx, msg); err != nil {
		return apperror.Internal(err)
	}

	if u.mailer != nil && u.mailer.IsConfigured() {
		err := u.mailer.SendContactEmail(email.ContactEmailData{
			SenderName:  msg.Name,
			SenderEmail: msg.Email,
			SenderPhone: msg.Phone,
			Message:     msg.Message,
		})
		if err != nil && logger.Log != nil {
			logger.Log.Warn("contact notification email failed", "error", err)
		}
	}
	return nil
}
