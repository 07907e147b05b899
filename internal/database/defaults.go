package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

// SeedDefaults ensures baseline demo properties exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	propRepo := repository.NewPropertyRepo(db)
	existing, err := propRepo.Count(ctx)
	if err == nil && existing > 0 {
		return nil
	}

	defaults := []repository.Property{
		{Name: "Centro 1D", Address: "Av. Central 120, Apt 4B", City: "Santiago", Neighborhood: "Centro", UnitType: "apartment", Bedrooms: 1, Bathrooms: 1},
		{Name: "Villa 2D", Address: "Calle Los Olivos 45", City: "Santiago", Neighborhood: "Providencia", UnitType: "apartment", Bedrooms: 2, Bathrooms: 1.5},
		{Name: "Casa Jardín", Address: "Pasaje Las Rosas 8", City: "Valparaíso", Neighborhood: "Cerro Alegre", UnitType: "house", Bedrooms: 3, Bathrooms: 2},
	}
	for _, p := range defaults {
		p.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("property:"+p.Name)).String()
		if err := propRepo.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
