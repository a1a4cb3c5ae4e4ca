package usecase

import (
	"strings"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/utils"
)

// ContactAction returns the link that opens a contact: a tel: URI for
// phones and messenger deep links for handles. ok is false when the
// contact kind has no action.
func ContactAction(c models.Contact) (string, bool) {
	switch c.Type {
	case models.ContactTypePhone:
		return "tel:" + c.Value, true
	case models.ContactTypeTelegram, models.ContactTypeTG:
		return "https://t.me/" + strings.ReplaceAll(c.Value, "@", ""), true
	case models.ContactTypeWhatsApp:
		return "https://wa.me/" + utils.DigitsOnly(c.Value), true
	default:
		return "", false
	}
}

// ContactLabel is the human name of a contact channel
func ContactLabel(t models.ContactType) string {
	switch t {
	case models.ContactTypePhone:
		return "Телефон"
	case models.ContactTypeTelegram, models.ContactTypeTG:
		return "Telegram"
	case models.ContactTypeWhatsApp:
		return "WhatsApp"
	default:
		return "Контакт"
	}
}

func contactViews(contacts []models.Contact) []models.ContactView {
	views := make([]models.ContactView, 0, len(contacts))
	for _, c := range contacts {
		action, _ := ContactAction(c)
		views = append(views, models.ContactView{
			Type:      c.Type,
			Label:     ContactLabel(c.Type),
			Value:     c.Value,
			ActionURL: action,
		})
	}
	return views
}
