package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/utils"
)

const noteWidth = 60

func renderCards(w io.Writer, criteria models.SearchCriteria, cards []models.TripCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "Поездок не найдено")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, card := range cards {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s → %s\t%s\n",
			card.TripID,
			card.DepartureClock,
			card.DepartureDay,
			card.FromCity,
			card.ToCity,
			strings.Join(cardBadges(card), " "))
		if card.Note != "" {
			fmt.Fprintf(tw, "\t\t\t%s\t\n", utils.Truncate(utils.SanitizeString(card.Note), noteWidth))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Найдено: %d (%s)\n", len(cards), describeCriteria(criteria))
	return err
}

func cardBadges(card models.TripCard) []string {
	badges := []string{}
	if card.IsTaxi {
		badges = append(badges, "[TAXI]")
	}
	if card.BoardsMidway {
		badges = append(badges, "[промежуточная посадка]")
	}
	if card.Car != "" {
		badges = append(badges, card.Car)
	}
	if card.HasChildSeat {
		badges = append(badges, "[детское кресло]")
	}
	if card.HasCargo {
		badges = append(badges, "[груз]")
	}
	return badges
}

func describeCriteria(c models.SearchCriteria) string {
	from, to := c.FromCity, c.ToCity
	if from == "" {
		from = "*"
	}
	if to == "" {
		to = "*"
	}
	return fmt.Sprintf("%s → %s, %s", from, to, models.FormatDate(c.Date))
}

func renderDetail(w io.Writer, d *models.TripDetail) error {
	var b strings.Builder

	if d.TripID != 0 {
		fmt.Fprintf(&b, "Поездка #%d\n", d.TripID)
	}
	day := d.DayLabel
	if day == "" {
		day = "дата не указана"
	}
	fmt.Fprintf(&b, "%s, %s (время отправления)\n", day, d.Clock)

	if len(d.Contacts) > 0 {
		fmt.Fprintf(&b, "\nСвязь с водителем (%d):\n", len(d.Contacts))
		for _, c := range d.Contacts {
			fmt.Fprintf(&b, "  %-9s %s", c.Label, c.Value)
			if c.ActionURL != "" {
				fmt.Fprintf(&b, "  %s", c.ActionURL)
			}
			b.WriteString("\n")
		}
	}

	if len(d.Stops) > 0 {
		b.WriteString("\nМаршрут:\n")
		for _, s := range d.Stops {
			marker := "○"
			if s.Highlighted {
				marker = "●"
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", marker, s.Clock, s.CityName)
		}
	}
	if len(d.Via) > 0 {
		fmt.Fprintf(&b, "Через: %s\n", strings.Join(d.Via, ", "))
	}

	var options []string
	if d.IsTaxi {
		options = append(options, "такси")
	}
	if d.Car != "" {
		options = append(options, d.Car)
	}
	if d.HasChildSeat {
		options = append(options, "детское кресло")
	}
	if d.HasCargo {
		options = append(options, "можно с грузом")
	}
	if len(options) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(options, ", "))
	}

	if d.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Note)
	}
	if d.MessageLink != "" {
		fmt.Fprintf(&b, "\nСообщение: %s\n", d.MessageLink)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
