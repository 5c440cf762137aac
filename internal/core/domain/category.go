package domain

// Category classifies resources and programs.
type Category string

const (
	CategoryMentalHealth Category = "Mental Health"
	CategoryFitness      Category = "Fitness"
	CategoryNutrition    Category = "Nutrition"
	CategoryWellness     Category = "Wellness"

	// CategoryAll is the filter sentinel matching every category.
	CategoryAll Category = "All"
)

// Valid reports whether c is one of the four content categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMentalHealth, CategoryFitness, CategoryNutrition, CategoryWellness:
		return true
	}
	return false
}

// Matches reports whether a filter set to c admits the given category.
// The CategoryAll sentinel (and an unset filter) admit everything.
func (c Category) Matches(category Category) bool {
	return c == CategoryAll || c == "" || c == category
}
