package service

import "strings"

const schemaDirective = ". Return only a JSON array of objects, each containing " +
	"'title' (string), 'description' (string), 'ingredients' (array of strings), " +
	"'instructions' (string), 'servings' (number) and 'tags' (array of strings). " +
	"Do not include any additional text."

// BuildRecipePrompt renders a generation request into a single instruction
// string. The ingredient, preference and meal-type clauses are appended only
// when supplied: an empty list must never produce a dangling phrase like
// "using the following ingredients: " that the model could misread as a
// literal ingredient name.
func BuildRecipePrompt(ingredients, preferences []string, mealType string) string {
	var b strings.Builder
	b.WriteString("Generate recipe suggestions")
	if len(ingredients) > 0 {
		b.WriteString(" using the following ingredients: ")
		b.WriteString(strings.Join(ingredients, ", "))
	}
	if len(preferences) > 0 {
		b.WriteString(". The recipes should be ")
		b.WriteString(strings.Join(preferences, " and "))
	}
	if mealType != "" {
		b.WriteString(". The recipes should be suitable for ")
		b.WriteString(mealType)
	}
	b.WriteString(schemaDirective)
	return b.String()
}
