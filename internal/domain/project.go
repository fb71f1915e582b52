package domain

import (
	"gorm.io/datatypes"
)

// Project is one property project row as loaded from the spreadsheet export.
// Numeric columns are nullable in the source sheet, so they are pointers here.
type Project struct {
	ID              uint     `gorm:"column:project_id;primaryKey;autoIncrement" json:"project_id,omitempty"`
	SourceProjectID *int     `gorm:"column:source_project_id" json:"source_project_id"`
	ProjectCode     *string  `gorm:"column:project_code" json:"project_code"`
	Owner           *string  `gorm:"column:owner" json:"owner"`
	ProjectNumber   *float64 `gorm:"column:project_number" json:"project_number"`
	Name            string   `gorm:"column:project_name;not null;default:''" json:"project_name"`
	Status          *string  `gorm:"column:status" json:"status"`
	ProjectType     *string  `gorm:"column:project_type" json:"project_type"`
	UnitTypes       *string  `gorm:"column:unit_types" json:"unit_types"`
	LaunchDate      *string  `gorm:"column:launch_date" json:"launch_date"`
	LocationURL     *string  `gorm:"column:location_url" json:"location_url"`
	Region          string   `gorm:"column:region;index;not null;default:''" json:"region"`
	Country         *string  `gorm:"column:country" json:"country"`
	City            *string  `gorm:"column:city;index" json:"city"`
	District        *string  `gorm:"column:district" json:"district"`
	BrochureURL     *string  `gorm:"column:brochure_url" json:"brochure_url"`
	VideoURL        *string  `gorm:"column:video_url" json:"video_url"`
	ImagesURL       *string  `gorm:"column:images_url" json:"images_url"`
	Amenities       *string  `gorm:"column:amenities" json:"amenities"`

	TotalUnits             *int `gorm:"column:total_units" json:"total_units"`
	AvailableUnits         *int `gorm:"column:available_units" json:"available_units"`
	UnderConstructionUnits *int `gorm:"column:under_construction_units" json:"under_construction_units"`
	ReservedUnits          *int `gorm:"column:reserved_units" json:"reserved_units"`
	SoldUnits              *int `gorm:"column:sold_units" json:"sold_units"`

	AvgUnitPrice          *float64 `gorm:"column:avg_unit_price" json:"avg_unit_price"`
	AvgAvailableUnitPrice *float64 `gorm:"column:avg_available_unit_price" json:"avg_available_unit_price"`
	TotalProjectValue     *float64 `gorm:"column:total_project_value" json:"total_project_value"`
	SalesPercentage       *float64 `gorm:"column:sales_percentage" json:"sales_percentage"`
	MinPrice              *float64 `gorm:"column:min_price" json:"min_price"`
	MinAvailablePrice     *float64 `gorm:"column:min_available_price" json:"min_available_price"`
	MaxPrice              *float64 `gorm:"column:max_price" json:"max_price"`
	MaxAvailablePrice     *float64 `gorm:"column:max_available_price" json:"max_available_price"`
	PriceRange            *string  `gorm:"column:price_range" json:"price_range"`
	AvailablePriceRange   *string  `gorm:"column:available_price_range" json:"available_price_range"`

	MinArea          *float64 `gorm:"column:min_area" json:"min_area"`
	MinAvailableArea *float64 `gorm:"column:min_available_area" json:"min_available_area"`
	MaxArea          *float64 `gorm:"column:max_area" json:"max_area"`
	MaxAvailableArea *float64 `gorm:"column:max_available_area" json:"max_available_area"`

	MinBedrooms  *int `gorm:"column:min_bedrooms" json:"min_bedrooms"`
	MaxBedrooms  *int `gorm:"column:max_bedrooms" json:"max_bedrooms"`
	MinBathrooms *int `gorm:"column:min_bathrooms" json:"min_bathrooms"`
	MaxBathrooms *int `gorm:"column:max_bathrooms" json:"max_bathrooms"`

	MarketingPitch *string `gorm:"column:marketing_pitch" json:"marketing_pitch"`

	// Extra keeps spreadsheet columns that have no dedicated field. Always
	// serialized so bulk REST inserts send the same keys on every row.
	Extra datatypes.JSONMap `gorm:"column:extra" json:"extra"`
}

func (Project) TableName() string {
	return "projects"
}

// MinAvailablePriceValue returns the cheapest available unit price, 0 when unknown.
func (p Project) MinAvailablePriceValue() float64 {
	return floatOrZero(p.MinAvailablePrice)
}

// MinAvailableAreaValue returns the smallest available unit area, 0 when unknown.
func (p Project) MinAvailableAreaValue() float64 {
	return floatOrZero(p.MinAvailableArea)
}

func (p Project) DistrictValue() string {
	return stringOrEmpty(p.District)
}

func (p Project) UnitTypesValue() string {
	return stringOrEmpty(p.UnitTypes)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
