package filestore

import (
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
	"github.com/shopspring/decimal"
)

// itemRecord es la representación plana de un Item en store_data.json.
type itemRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// saleRecord es la representación plana de una Sale en sales_data.json.
type saleRecord struct {
	ID           string  `json:"id"`
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	QuantitySold int     `json:"quantity_sold"`
	SalePrice    float64 `json:"sale_price"`
	SaleDate     string  `json:"sale_date"`
}

var errMissingID = errors.New("registro sin id")

func newItemRecord(it *entity.Item) itemRecord {
	desc := it.Description
	return itemRecord{
		ID:          it.ID,
		Name:        it.Name,
		Description: &desc,
		Price:       it.Price.InexactFloat64(),
		Quantity:    it.Quantity,
		CreatedAt:   clock.Format(it.CreatedAt),
		UpdatedAt:   clock.Format(it.UpdatedAt),
	}
}

func (r itemRecord) toEntity() (*entity.Item, error) {
	if r.ID == "" {
		return nil, errMissingID
	}
	created, err := clock.Parse(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("item %s: created_at: %w", r.ID, err)
	}
	updated, err := clock.Parse(r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("item %s: updated_at: %w", r.ID, err)
	}
	it := &entity.Item{
		ID:        r.ID,
		Name:      r.Name,
		Price:     decimal.NewFromFloat(r.Price),
		Quantity:  r.Quantity,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	if r.Description != nil {
		it.Description = *r.Description
	}
	return it, nil
}

func newSaleRecord(s *entity.Sale) saleRecord {
	return saleRecord{
		ID:           s.ID,
		ItemID:       s.ItemID,
		ItemName:     s.ItemName,
		QuantitySold: s.QuantitySold,
		SalePrice:    s.SalePrice.InexactFloat64(),
		SaleDate:     clock.Format(s.SaleDate),
	}
}

func (r saleRecord) toEntity() (*entity.Sale, error) {
	if r.ID == "" {
		return nil, errMissingID
	}
	date, err := clock.Parse(r.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("sale %s: sale_date: %w", r.ID, err)
	}
	return &entity.Sale{
		ID:           r.ID,
		ItemID:       r.ItemID,
		ItemName:     r.ItemName,
		QuantitySold: r.QuantitySold,
		SalePrice:    decimal.NewFromFloat(r.SalePrice),
		SaleDate:     date,
	}, nil
}
