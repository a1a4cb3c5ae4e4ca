package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const apiTrips = `[
  {
    "id": 1,
    "created_at": "2026-10-17T20:00:00Z",
    "contacts": [{"type": "whatsapp", "value": "+7 917 123-45-67"}],
    "car": "Kia Rio",
    "platform_name": "telegram",
    "driver_id": 5,
    "departure_time": "2026-10-18T06:00:00Z",
    "has_cargo": true,
    "has_child_seat": false,
    "is_taxi": false,
    "message_link": "https://t.me/poputki/1",
    "raw_text": "Аскарово - Магнитогорск - Уфа",
    "stops": [
      {"id": 12, "trip_id": 1, "city_name": "Уфа", "arrival_time": "2026-10-18T14:15:00Z", "stop_order": 3},
      {"id": 10, "trip_id": 1, "city_name": "Аскарово", "arrival_time": "2026-10-18T06:00:00Z", "stop_order": 1},
      {"id": 11, "trip_id": 1, "city_name": "Магнитогорск", "arrival_time": "2026-10-18T07:30:00Z", "stop_order": 2}
    ]
  }
]`

func newAPI(t *testing.T, status int) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"detail":"database is down"}`))
			return
		}
		w.Write([]byte(apiTrips))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Search(t *testing.T) {
	api := newAPI(t, http.StatusOK)

	code, out, _ := run("--api-url", api.URL, "--timezone", "UTC", "--log-level", "error",
		"search", "--from", "Магнитогорск", "--to", "Уфа", "--date", "2026-10-18")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "07:30")
	assert.Contains(t, out, "Магнитогорск → Уфа")
	assert.Contains(t, out, "[промежуточная посадка]")
	assert.Contains(t, out, "Kia Rio")
	assert.Contains(t, out, "Найдено: 1 (Магнитогорск → Уфа, вс, 18 октября)")
}

func TestRun_List(t *testing.T) {
	api := newAPI(t, http.StatusOK)

	code, out, _ := run("--api-url", api.URL, "--timezone", "UTC", "--log-level", "error", "list")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Аскарово → Уфа")
	assert.Contains(t, out, "06:00")
}

func TestRun_Show(t *testing.T) {
	api := newAPI(t, http.StatusOK)

	code, out, _ := run("--api-url", api.URL, "--timezone", "UTC", "--log-level", "error",
		"show", "--from", "Магнитогорск", "--date", "2026-10-18", "1")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Поездка #1")
	assert.Contains(t, out, "https://wa.me/79171234567")
	assert.Contains(t, out, "● 07:30  Магнитогорск")
	assert.Contains(t, out, "○ 06:00  Аскарово")
	assert.Contains(t, out, "Через: Магнитогорск")
	assert.Contains(t, out, "можно с грузом")
	assert.Contains(t, out, "https://t.me/poputki/1")

	code, _, errOut := run("--api-url", api.URL, "--log-level", "error", "show", "99")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "trip not found")

	code, _, _ = run("--api-url", api.URL, "--log-level", "error", "show", "abc")
	assert.Equal(t, ExitUsage, code)
}

func TestRun_Draft(t *testing.T) {
	t.Setenv("EXTRACTOR_DELAY", "0s")

	code, out, _ := run("--log-level", "error", "draft", "Завтра", "из", "Белорецка", "в", "Уфа")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "дата не указана, --:--")
	assert.Contains(t, out, "--:--  Белорецк")
	assert.Contains(t, out, "--:--  Уфа")

	code, _, _ = run("--log-level", "error", "draft")
	assert.Equal(t, ExitUsage, code)
}

func TestRun_UpstreamError(t *testing.T) {
	api := newAPI(t, http.StatusInternalServerError)

	code, out, errOut := run("--api-url", api.URL, "--log-level", "error", "search", "--from", "Уфа")

	assert.Equal(t, ExitError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "database is down")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := run()
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "Usage: poputchik")

	code, _, errOut = run("book")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, `unknown command "book"`)

	code, _, _ = run("--help")
	assert.Equal(t, ExitOK, code)

	code, _, _ = run("--log-level", "error", "search", "--seats", "2")
	assert.Equal(t, ExitUsage, code)

	code, _, errOut = run("--log-level", "error", "search", "--date", "18.10.2026")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "YYYY-MM-DD")
}

func TestRun_MissingConfigFile(t *testing.T) {
	code, _, errOut := run("--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")

	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "failed to read config")
}

func TestNewApp_String(t *testing.T) {
	cfg := &models.Config{
		App:     models.AppConfig{Name: "poputchik", Version: "1.2.0", Environment: "test"},
		API:     models.APIConfig{BaseURL: "http://trips.local"},
		Display: models.DisplayConfig{Timezone: "UTC"},
	}

	app, err := NewApp(cfg, logger.NewFromZap(zap.NewNop()))

	require.NoError(t, err)
	assert.Equal(t, "poputchik 1.2.0 (test) api=http://trips.local tz=UTC", app.String())
}
