package sales

import (
	"context"
	"fmt"

	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta existente.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	locationRepo repository.LocationRepository
	generator    ReceiptGenerator
}

func NewReceiptUseCase(saleRepo repository.SaleRepository, locationRepo repository.LocationRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, locationRepo: locationRepo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("error al obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(sale.LocationID)
	if err != nil {
		return nil, "", fmt.Errorf("error al obtener sucursal: %w", err)
	}
	if location == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, sale, location)
	if err != nil {
		return nil, "", fmt.Errorf("error al generar recibo: %w", err)
	}
	return pdf, "recibo-" + sale.SaleNumber + ".pdf", nil
}
