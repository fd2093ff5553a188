package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/application/auth"
	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

// NewAdminCommand crea el comando raíz de admin.
func NewAdminCommand(open BackendOpener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Tareas administrativas de la tienda",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("formato inválido %q: debe ser uno de %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (json|text)")

	cmd.AddCommand(newHashPasswordCommand())
	cmd.AddCommand(newSeedCommand(opts, open))
	cmd.AddCommand(newStatsCommand(opts, open))
	cmd.AddCommand(newLowStockCommand(opts, open))
	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Imprime el hash bcrypt para ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}

// catalogFile formato de `admin seed --file`.
type catalogFile struct {
	Items []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Price       string `yaml:"price"`
		Quantity    int    `yaml:"quantity"`
	} `yaml:"items"`
}

func newSeedCommand(opts *RootOptions, open BackendOpener) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed --file catalog.yaml",
		Short: "Crea los ítems de un catálogo YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("leer catálogo: %w", err)
			}
			var catalog catalogFile
			if err := yaml.Unmarshal(raw, &catalog); err != nil {
				return fmt.Errorf("catálogo YAML inválido: %w", err)
			}

			ctx := cmd.Context()
			backend, cfg, err := open(ctx)
			if err != nil {
				return err
			}
			defer backend.Close()

			uc := inventory.NewItemUseCase(backend.Items, backend.Tx, clock.System{}, cfg.Catalog.PageSize, cfg.Catalog.LowStockThreshold)
			created := make([]dto.ItemResponse, 0, len(catalog.Items))
			for i, it := range catalog.Items {
				price, err := decimal.NewFromString(it.Price)
				if err != nil {
					return fmt.Errorf("ítem %d (%s): precio inválido %q", i+1, it.Name, it.Price)
				}
				out, err := uc.Create(ctx, dto.CreateItemRequest{
					Name:        it.Name,
					Description: it.Description,
					Price:       price,
					Quantity:    it.Quantity,
				})
				if err != nil {
					return fmt.Errorf("ítem %d (%s): %w", i+1, it.Name, err)
				}
				created = append(created, *out)
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d ítems creados\n", len(created))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "archivo YAML con la clave items")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newStatsCommand(opts *RootOptions, open BackendOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resumen de ventas de hoy, del mes y Top-5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, _, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			stats, err := analytics.NewStatisticsUseCase(backend.Sales, clock.System{}).GetSummary(cmd.Context())
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), stats)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Hoy (%s)\t%s\t%d uds\n", stats.Today, stats.DailyRevenue.StringFixed(2), stats.DailyItemsSold)
			fmt.Fprintf(w, "Mes (%s)\t%s\t%d uds\n", stats.ThisMonth, stats.MonthlyRevenue.StringFixed(2), stats.MonthlyItemsSold)
			for i, top := range stats.TopItems {
				fmt.Fprintf(w, "%d. %s\t%s\t%d uds\n", i+1, top.Name, top.TotalRevenue.StringFixed(2), top.QuantitySold)
			}
			return w.Flush()
		},
	}
}

func newLowStockCommand(opts *RootOptions, open BackendOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "Lista los ítems bajo el umbral de existencias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, cfg, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			uc := inventory.NewItemUseCase(backend.Items, backend.Tx, clock.System{}, cfg.Catalog.PageSize, cfg.Catalog.LowStockThreshold)
			low, err := uc.LowStock(cmd.Context())
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), low)
			}
			if len(low.Items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Sin ítems por debajo de %d unidades\n", low.Threshold)
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, it := range low.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\n", it.ID, it.Name, it.Quantity)
			}
			return w.Flush()
		},
	}
}
