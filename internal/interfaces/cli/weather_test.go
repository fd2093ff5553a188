package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/infrastructure/weather"
	"github.com/jhoicas/tienda-inventario/internal/interfaces/cli"
)

func fakeOpenMeteo(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			if r.URL.Query().Get("name") != "San José" {
				_, _ = w.Write([]byte(`{}`))
				return
			}
			_, _ = w.Write([]byte(`{"results":[{"name":"San José","country":"Costa Rica","latitude":9.93,"longitude":-84.08}]}`))
		case "/v1/forecast":
			_, _ = w.Write([]byte(`{"current_weather":{"temperature":22.5,"windspeed":11,"winddirection":90,"weathercode":61}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runWeather(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewWeatherCommand(weather.Config{
		GeocodingURL: baseURL,
		ForecastURL:  baseURL,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
		Logger:       zerolog.Nop(),
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWeather_PrintsReport(t *testing.T) {
	srv := fakeOpenMeteo(t)
	out, err := runWeather(t, srv.URL, "San", "José")
	require.NoError(t, err)
	assert.Contains(t, out, "Clima actual en San José, Costa Rica")
	assert.Contains(t, out, "22.5 °C")
	assert.Contains(t, out, "lluvia (código 61)")
}

func TestWeather_UnknownCity(t *testing.T) {
	srv := fakeOpenMeteo(t)
	_, err := runWeather(t, srv.URL, "Atlantis")
	assert.ErrorIs(t, err, weather.ErrCityNotFound)
}

func TestWeather_RequiresCity(t *testing.T) {
	_, err := runWeather(t, "http://127.0.0.1:1")
	assert.Error(t, err)
}
