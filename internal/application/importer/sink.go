package importer

import (
	"context"
	"fmt"

	"matchmaker-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

// Sink receives parsed projects. store.GormStore and store.RESTStore satisfy it.
type Sink interface {
	InsertProjects(ctx context.Context, projects []domain.Project) (int, error)
}

// copier is the part of *pgx.Conn that CopySink uses.
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// CopySink bulk-loads projects with the Postgres COPY protocol.
type CopySink struct {
	Conn copier
}

// copyColumns is every projects column except the generated project_id.
var copyColumns = []string{
	"source_project_id", "project_code", "owner", "project_number", "project_name", "status",
	"project_type", "unit_types", "launch_date", "location_url", "region", "country", "city",
	"district", "brochure_url", "video_url", "images_url", "amenities",
	"total_units", "available_units", "under_construction_units", "reserved_units", "sold_units",
	"avg_unit_price", "avg_available_unit_price", "total_project_value", "sales_percentage",
	"min_price", "min_available_price", "max_price", "max_available_price", "price_range",
	"available_price_range", "min_area", "min_available_area", "max_area", "max_available_area",
	"min_bedrooms", "max_bedrooms", "min_bathrooms", "max_bathrooms", "marketing_pitch", "extra",
}

func (s *CopySink) InsertProjects(ctx context.Context, projects []domain.Project) (int, error) {
	if len(projects) == 0 {
		return 0, nil
	}
	rows := make([][]interface{}, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, copyRow(p))
	}
	n, err := s.Conn.CopyFrom(ctx, pgx.Identifier{domain.Project{}.TableName()}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return int(n), fmt.Errorf("copy to projects: %w", err)
	}
	return int(n), nil
}

func copyRow(p domain.Project) []interface{} {
	var extra interface{}
	if len(p.Extra) > 0 {
		extra = map[string]interface{}(p.Extra)
	}
	return []interface{}{
		nullable(p.SourceProjectID), nullable(p.ProjectCode), nullable(p.Owner), nullable(p.ProjectNumber), p.Name, nullable(p.Status),
		nullable(p.ProjectType), nullable(p.UnitTypes), nullable(p.LaunchDate), nullable(p.LocationURL), p.Region, nullable(p.Country), nullable(p.City),
		nullable(p.District), nullable(p.BrochureURL), nullable(p.VideoURL), nullable(p.ImagesURL), nullable(p.Amenities),
		nullable(p.TotalUnits), nullable(p.AvailableUnits), nullable(p.UnderConstructionUnits), nullable(p.ReservedUnits), nullable(p.SoldUnits),
		nullable(p.AvgUnitPrice), nullable(p.AvgAvailableUnitPrice), nullable(p.TotalProjectValue), nullable(p.SalesPercentage),
		nullable(p.MinPrice), nullable(p.MinAvailablePrice), nullable(p.MaxPrice), nullable(p.MaxAvailablePrice), nullable(p.PriceRange),
		nullable(p.AvailablePriceRange), nullable(p.MinArea), nullable(p.MinAvailableArea), nullable(p.MaxArea), nullable(p.MaxAvailableArea),
		nullable(p.MinBedrooms), nullable(p.MaxBedrooms), nullable(p.MinBathrooms), nullable(p.MaxBathrooms), nullable(p.MarketingPitch), extra,
	}
}

func nullable[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
