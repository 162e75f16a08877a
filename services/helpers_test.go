package services

import (
	"pricing-dashboard/models"
	"pricing-dashboard/reference"
	"pricing-dashboard/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func testRef() *reference.Tables { return reference.Default() }

func obs(description, state string, price float64) *models.ProductObservation {
	return &models.ProductObservation{
		Description:  description,
		UnitPrice:    price,
		RetailerName: "Atacadão - Centro",
		StateCode:    state,
		City:         "Cidade " + state,
	}
}

func obsAt(description, state string, price float64, retailer, city string) *models.ProductObservation {
	o := obs(description, state, price)
	o.RetailerName = retailer
	o.City = city
	return o
}

// scenario is the three-observation catalog used across the end-to-end tests.
func scenario() []*models.ProductObservation {
	return []*models.ProductObservation{
		obsAt("Leite Condensado 395g", "SP", 8.50, "Carrefour - Pinheiros", "São Paulo"),
		obsAt("Leite Condensado Lata", "SP", 9.00, "Pão de Açúcar - Moema", "São Paulo"),
		obsAt("Queijo Minas", "MG", 12.00, "Supernosso - Savassi", "Belo Horizonte"),
	}
}
