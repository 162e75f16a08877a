package services

import (
	"strings"

	"pricing-dashboard/models"
)

// categoryRule maps any of its keywords to a category. Rules are evaluated
// in order and the first match wins.
type categoryRule struct {
	keywords []string
	category models.Category
}

var categoryRules = []categoryRule{
	{[]string{"leite condensado"}, models.CategoryCondensedMilk},
	{[]string{"leite em pó"}, models.CategoryPowderedMilk},
	{[]string{"leite uht", "leite integral", "leite desnatado"}, models.CategoryLiquidMilk},
	{[]string{"doce de leite"}, models.CategoryDulceDeLeche},
	{[]string{"manteiga"}, models.CategoryButter},
	{[]string{"requeijão"}, models.CategoryCreamCheese},
	{[]string{"queijo"}, models.CategoryCheese},
	{[]string{"creme de leite"}, models.CategoryCream},
}

// Categories lists every category in classifier order, Outros last.
func Categories() []models.Category {
	out := make([]models.Category, 0, len(categoryRules)+1)
	for _, r := range categoryRules {
		out = append(out, r.category)
	}
	return append(out, models.CategoryOther)
}

// Classify derives the product category from a description by
// case-insensitive keyword search. It never fails: unmatched descriptions
// are classified as Outros.
func Classify(description string) models.Category {
	desc := strings.ToLower(description)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}
	return models.CategoryOther
}
