package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-inventario/internal/infrastructure/weather"
)

// NewWeatherCommand crea el comando raíz de weather. cfg trae URLs y logger;
// --lang sobreescribe cfg.Language.
func NewWeatherCommand(cfg weather.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:           "weather <ciudad...>",
		Short:         "Clima actual de una ciudad (open-meteo)",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			city := strings.Join(args, " ")
			report, err := weather.New(cfg).Lookup(cmd.Context(), city)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd, report)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Language, "lang", "es", "idioma de la geocodificación")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func printReport(cmd *cobra.Command, r *weather.Report) {
	out := cmd.OutOrStdout()
	place := r.Location.Name
	if r.Location.Country != "" {
		place += ", " + r.Location.Country
	}
	fmt.Fprintf(out, "Clima actual en %s\n", place)
	fmt.Fprintf(out, "  Temperatura: %.1f °C\n", r.Current.Temperature)
	fmt.Fprintf(out, "  Viento: %.1f km/h desde %.0f°\n", r.Current.WindSpeed, r.Current.WindDirection)
	if r.Current.WeatherCode != nil {
		fmt.Fprintf(out, "  Condición: %s (código %d)\n", describeWeather(*r.Current.WeatherCode), *r.Current.WeatherCode)
	}
}

// describeWeather texto de los códigos WMO que devuelve open-meteo.
func describeWeather(code int) string {
	switch {
	case code == 0:
		return "despejado"
	case code <= 3:
		return "parcialmente nublado"
	case code == 45 || code == 48:
		return "niebla"
	case code >= 51 && code <= 57:
		return "llovizna"
	case code >= 61 && code <= 67, code >= 80 && code <= 82:
		return "lluvia"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "nieve"
	case code >= 95:
		return "tormenta"
	}
	return "desconocido"
}
