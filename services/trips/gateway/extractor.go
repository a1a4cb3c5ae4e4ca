package gateway

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/utils"
	"github.com/piresc/poputchik/services/trips"
)

// DraftPlatform marks trips produced by an extractor rather than a chat
const DraftPlatform = "ai-draft"

// StubExtractor stands in for the text recognition service. It waits,
// then recognises known city names in the announcement.
type StubExtractor struct {
	cities []string
	delay  time.Duration
}

// NewStubExtractor creates an extractor that knows cities
func NewStubExtractor(cities []string, delay time.Duration) *StubExtractor {
	return &StubExtractor{
		cities: cities,
		delay:  delay,
	}
}

type cityHit struct {
	city string
	pos  int
}

// Extract builds a draft trip from rawText. Stops follow the order the
// cities are mentioned in; times are left empty.
func (e *StubExtractor) Extract(ctx context.Context, rawText string) (*models.Trip, error) {
	text := utils.SanitizeString(rawText)
	if text == "" {
		return nil, trips.ErrEmptyText
	}

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	folded := utils.Fold(text)
	hits := make([]cityHit, 0, len(e.cities))
	for _, city := range e.cities {
		if pos := indexWord(folded, utils.Fold(cityStem(city))); pos >= 0 {
			hits = append(hits, cityHit{city: city, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	stops := make([]models.Stop, 0, len(hits))
	cities := make([]string, 0, len(hits))
	for i, h := range hits {
		stops = append(stops, models.Stop{CityName: h.city, StopOrder: i + 1})
		cities = append(cities, h.city)
	}

	logger.Debug("Trip draft extracted",
		logger.Strings("cities", cities),
		logger.String("text", utils.Truncate(text, 40)))

	return &models.Trip{
		Contacts:     []models.Contact{},
		PlatformName: DraftPlatform,
		RawText:      &rawText,
		Stops:        stops,
	}, nil
}

// cityStem drops a final vowel or soft sign so inflected forms ("в Уфу",
// "из Гая") still match. Names ending in a consonant inflect by suffix
// ("из Орска") and are kept whole.
func cityStem(city string) string {
	runes := []rune(city)
	if len(runes) < 3 {
		return city
	}
	if strings.ContainsRune(inflectedEndings, unicode.ToLower(runes[len(runes)-1])) {
		return string(runes[:len(runes)-1])
	}
	return city
}

const inflectedEndings = "аяоеёыиуюьй"

// indexWord returns the position of the first occurrence of prefix that
// starts a word, or -1
func indexWord(s, prefix string) int {
	if prefix == "" {
		return -1
	}
	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], prefix)
		if i < 0 {
			return -1
		}
		pos := offset + i
		prev, _ := utf8.DecodeLastRuneInString(s[:pos])
		if pos == 0 || !unicode.IsLetter(prev) {
			return pos
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		offset = pos + size
	}
	return -1
}
