package storage

import (
	"database/sql"

	"pricing-dashboard/models"
)

// observationColumns are the stored columns in insert order, excluding the
// sequence and batch columns.
var observationColumns = []string{
	"product_id", "description", "unit_price", "unit_original_price", "unit_min_price",
	"details", "logo_url", "retailer", "state", "city", "neighborhood", "merchant_id",
}

const selectObservations = `
	SELECT product_id, description, unit_price, unit_original_price, unit_min_price,
	       details, logo_url, retailer, state, city, neighborhood, merchant_id
	FROM observations
	ORDER BY seq`

func observationArgs(o *models.ProductObservation) []any {
	return []any{
		o.ProductID, o.Description, o.UnitPrice,
		nullFloat(o.UnitOriginalPrice), nullFloat(o.UnitMinPrice),
		o.Details, o.ImageRef, o.RetailerName, o.StateCode,
		o.City, o.Neighborhood, o.MerchantID,
	}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func scanObservations(rows *sql.Rows) ([]*models.ProductObservation, error) {
	var out []*models.ProductObservation
	for rows.Next() {
		o := &models.ProductObservation{}
		var original, minimum sql.NullFloat64
		if err := rows.Scan(
			&o.ProductID, &o.Description, &o.UnitPrice, &original, &minimum,
			&o.Details, &o.ImageRef, &o.RetailerName, &o.StateCode,
			&o.City, &o.Neighborhood, &o.MerchantID,
		); err != nil {
			return nil, err
		}
		o.UnitOriginalPrice = floatPtr(original)
		o.UnitMinPrice = floatPtr(minimum)
		out = append(out, o)
	}
	return out, rows.Err()
}
