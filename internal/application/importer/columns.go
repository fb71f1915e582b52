package importer

import (
	"strings"

	"matchmaker-backend/internal/domain"
)

// setter stores one non-blank cell on a project. It reports false when the
// cell could not be parsed for the column's type.
type setter func(p *domain.Project, cell string) bool

type column struct {
	Name string // table column
	set  setter
}

func text(assign func(p *domain.Project, v *string)) setter {
	return func(p *domain.Project, cell string) bool {
		assign(p, &cell)
		return true
	}
}

func number(assign func(p *domain.Project, v *float64)) setter {
	return func(p *domain.Project, cell string) bool {
		v, ok := ParseNumber(cell)
		if ok {
			assign(p, &v)
		}
		return ok
	}
}

func integer(assign func(p *domain.Project, v *int)) setter {
	return func(p *domain.Project, cell string) bool {
		v, ok := ParseInt(cell)
		if ok {
			assign(p, &v)
		}
		return ok
	}
}

func percent(assign func(p *domain.Project, v *float64)) setter {
	return func(p *domain.Project, cell string) bool {
		v, ok := ParsePercent(cell)
		if ok {
			assign(p, &v)
		}
		return ok
	}
}

// columns maps the export's Arabic header labels (trimmed) to project fields.
var columns = map[string]column{
	"معرف المشروع":               {"source_project_id", integer(func(p *domain.Project, v *int) { p.SourceProjectID = v })},
	"كود المشروع":                {"project_code", text(func(p *domain.Project, v *string) { p.ProjectCode = v })},
	"المالك":                     {"owner", text(func(p *domain.Project, v *string) { p.Owner = v })},
	"رقم المشروع":                {"project_number", number(func(p *domain.Project, v *float64) { p.ProjectNumber = v })},
	"المشروع":                    {"project_name", text(func(p *domain.Project, v *string) { p.Name = *v })},
	"حالة المشروع":               {"status", text(func(p *domain.Project, v *string) { p.Status = v })},
	"نوع المشروع":                {"project_type", text(func(p *domain.Project, v *string) { p.ProjectType = v })},
	"انواع الوحدات":              {"unit_types", text(func(p *domain.Project, v *string) { p.UnitTypes = v })},
	"موعد إفتتاح المشروع":        {"launch_date", text(func(p *domain.Project, v *string) { p.LaunchDate = v })},
	"الموقع":                     {"location_url", text(func(p *domain.Project, v *string) { p.LocationURL = v })},
	"الإتجاه":                    {"region", text(func(p *domain.Project, v *string) { p.Region = *v })},
	"الدولة":                     {"country", text(func(p *domain.Project, v *string) { p.Country = v })},
	"المدينة":                    {"city", text(func(p *domain.Project, v *string) { p.City = v })},
	"الحي":                       {"district", text(func(p *domain.Project, v *string) { p.District = v })},
	"بروشور المشروع":             {"brochure_url", text(func(p *domain.Project, v *string) { p.BrochureURL = v })},
	"فيديوهات المشروع":           {"video_url", text(func(p *domain.Project, v *string) { p.VideoURL = v })},
	"صور المشروع":                {"images_url", text(func(p *domain.Project, v *string) { p.ImagesURL = v })},
	"المرافق":                    {"amenities", text(func(p *domain.Project, v *string) { p.Amenities = v })},
	"عدد الوحدات":                {"total_units", integer(func(p *domain.Project, v *int) { p.TotalUnits = v })},
	"عدد الوحدات المتاحة":        {"available_units", integer(func(p *domain.Project, v *int) { p.AvailableUnits = v })},
	"عدد الوحدات تحت الإنشاء":    {"under_construction_units", integer(func(p *domain.Project, v *int) { p.UnderConstructionUnits = v })},
	"عدد الوحدات المحجوزة":       {"reserved_units", integer(func(p *domain.Project, v *int) { p.ReservedUnits = v })},
	"عدد الوحدات المباعة":        {"sold_units", integer(func(p *domain.Project, v *int) { p.SoldUnits = v })},
	"متوسط قيمة الوحدة":          {"avg_unit_price", number(func(p *domain.Project, v *float64) { p.AvgUnitPrice = v })},
	"متوسط قيمة الوحدات المتاحة": {"avg_available_unit_price", number(func(p *domain.Project, v *float64) { p.AvgAvailableUnitPrice = v })},
	"إجمالي قيمة المشروع":        {"total_project_value", number(func(p *domain.Project, v *float64) { p.TotalProjectValue = v })},
	"نسبة بيع المشروع":           {"sales_percentage", percent(func(p *domain.Project, v *float64) { p.SalesPercentage = v })},
	"السعر الأدنى":               {"min_price", number(func(p *domain.Project, v *float64) { p.MinPrice = v })},
	"السعر الأدنى المتاح":        {"min_available_price", number(func(p *domain.Project, v *float64) { p.MinAvailablePrice = v })},
	"السعر الأقصى":               {"max_price", number(func(p *domain.Project, v *float64) { p.MaxPrice = v })},
	"السعر الأقصى المتاح":        {"max_available_price", number(func(p *domain.Project, v *float64) { p.MaxAvailablePrice = v })},
	"نطاق السعر":                 {"price_range", text(func(p *domain.Project, v *string) { p.PriceRange = v })},
	"نطاق السعر المتاح":          {"available_price_range", text(func(p *domain.Project, v *string) { p.AvailablePriceRange = v })},
	"المساحة الأدنى":             {"min_area", number(func(p *domain.Project, v *float64) { p.MinArea = v })},
	"المساحة الأدنى المتاحة":     {"min_available_area", number(func(p *domain.Project, v *float64) { p.MinAvailableArea = v })},
	"المساحة الأقصى":             {"max_area", number(func(p *domain.Project, v *float64) { p.MaxArea = v })},
	"المساحة الأقصى المتاحة":     {"max_available_area", number(func(p *domain.Project, v *float64) { p.MaxAvailableArea = v })},
	"عدد ادنى غرف نوم":           {"min_bedrooms", integer(func(p *domain.Project, v *int) { p.MinBedrooms = v })},
	"عدد اقصى غرف نوم":           {"max_bedrooms", integer(func(p *domain.Project, v *int) { p.MaxBedrooms = v })},
	"عدد ادنى حمامات":            {"min_bathrooms", integer(func(p *domain.Project, v *int) { p.MinBathrooms = v })},
	"عدد اقصى حمامات":            {"max_bathrooms", integer(func(p *domain.Project, v *int) { p.MaxBathrooms = v })},
}

// lookupColumn resolves a header label. Labels are matched after trimming, and
// a table column name is accepted as its own label.
func lookupColumn(label string) (column, bool) {
	label = strings.TrimSpace(label)
	if c, ok := columns[label]; ok {
		return c, true
	}
	c, ok := byName[strings.ToLower(label)]
	return c, ok
}

var byName = func() map[string]column {
	m := make(map[string]column, len(columns)+1)
	for _, c := range columns {
		m[c.Name] = c
	}
	// no label in the export; filled by hand-edited sheets
	m["marketing_pitch"] = column{"marketing_pitch", text(func(p *domain.Project, v *string) { p.MarketingPitch = v })}
	return m
}()
