// Package weather consulta el clima actual de una ciudad en open-meteo.
package weather

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// ErrCityNotFound la geocodificación no devolvió resultados.
var ErrCityNotFound = errors.New("ciudad no encontrada")

// Config parámetros del cliente. Los campos en cero toman los valores por defecto.
type Config struct {
	GeocodingURL string        // https://geocoding-api.open-meteo.com
	ForecastURL  string        // https://api.open-meteo.com
	Language     string        // idioma de los nombres devueltos
	Timeout      time.Duration // por intento
	RetryMax     int           // reintentos además del primer intento
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Logger       zerolog.Logger
}

func (c *Config) applyDefaults() {
	if c.GeocodingURL == "" {
		c.GeocodingURL = "https://geocoding-api.open-meteo.com"
	}
	if c.ForecastURL == "" {
		c.ForecastURL = "https://api.open-meteo.com"
	}
	if c.Language == "" {
		c.Language = "es"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RetryMax <= 0 {
		c.RetryMax = 4
	}
	if c.RetryWaitMin <= 0 {
		c.RetryWaitMin = 500 * time.Millisecond
	}
	if c.RetryWaitMax <= 0 {
		c.RetryWaitMax = 8 * time.Second
	}
}

// Location resultado de la geocodificación.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Current clima actual según open-meteo.
type Current struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`   // °C
	WindSpeed     float64 `json:"windspeed"`     // km/h
	WindDirection float64 `json:"winddirection"` // grados
	WeatherCode   *int    `json:"weathercode"`
}

// Report ubicación más clima actual.
type Report struct {
	Location Location
	Current  Current
}

// Client reintenta con backoff exponencial ante 429, 5xx y errores de conexión.
// Si la verificación del certificado falla, repite la petición una vez sin verificar.
type Client struct {
	cfg    Config
	http   *retryablehttp.Client
	once   sync.Once
	unsafe *retryablehttp.Client
}

// New construye el cliente.
func New(cfg Config) *Client {
	cfg.applyDefaults()
	return &Client{cfg: cfg, http: cfg.newHTTP(cleanhttp.DefaultPooledTransport())}
}

func (c *Config) newHTTP(transport *http.Transport) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport, Timeout: c.Timeout}
	rc.RetryMax = c.RetryMax
	rc.RetryWaitMin = c.RetryWaitMin
	rc.RetryWaitMax = c.RetryWaitMax
	rc.Logger = leveledLogger{zl: c.Logger}
	return rc
}

func (c *Client) insecure() *retryablehttp.Client {
	c.once.Do(func() {
		tr := cleanhttp.DefaultPooledTransport()
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		c.unsafe = c.cfg.newHTTP(tr)
	})
	return c.unsafe
}

// Lookup geocodifica city y consulta su clima actual.
func (c *Client) Lookup(ctx context.Context, city string) (*Report, error) {
	loc, err := c.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	cur, err := c.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}
	return &Report{Location: *loc, Current: *cur}, nil
}

// Geocode devuelve la primera coincidencia para city.
func (c *Client) Geocode(ctx context.Context, city string) (*Location, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", c.cfg.Language)
	q.Set("format", "json")

	var body struct {
		Results []Location `json:"results"`
	}
	if err := c.getJSON(ctx, c.cfg.GeocodingURL+"/v1/search?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("geocodificar %q: %w", city, err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}
	loc := body.Results[0]
	if loc.Name == "" {
		loc.Name = city
	}
	return &loc, nil
}

// Current consulta el clima actual en las coordenadas dadas.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Current, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("timezone", "auto")

	var body struct {
		CurrentWeather *Current `json:"current_weather"`
	}
	if err := c.getJSON(ctx, c.cfg.ForecastURL+"/v1/forecast?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("consultar clima: %w", err)
	}
	if body.CurrentWeather == nil {
		return nil, errors.New("la respuesta no trae current_weather")
	}
	return body.CurrentWeather, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	resp, err := c.get(ctx, c.http, rawURL)
	if err != nil && isCertificateError(err) {
		c.cfg.Logger.Warn().Err(err).Str("url", rawURL).Msg("certificado no verificable; reintentando sin verificación TLS")
		resp, err = c.get(ctx, c.insecure(), rawURL)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("respuesta HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rc *retryablehttp.Client, rawURL string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return rc.Do(req)
}

func isCertificateError(err error) bool {
	var (
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostErr      x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}
