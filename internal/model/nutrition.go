package model

// Nutrition holds the nutrient amounts computed for a recipe.
type Nutrition struct {
	Calories    float64 `bson:"calories" json:"calories"`
	Protein     float64 `bson:"protein" json:"protein"`
	Carbs       float64 `bson:"carbs" json:"carbs"`
	Fats        float64 `bson:"fats" json:"fats"`
	Cholesterol float64 `bson:"cholesterol" json:"cholesterol"`
}

// HasValues reports whether any nutrient was computed to a non-zero amount.
// An absent or all-zero record counts as never computed and will be
// recomputed on the next enrichment request.
func (n *Nutrition) HasValues() bool {
	if n == nil {
		return false
	}
	return n.Calories > 0 || n.Protein > 0 || n.Carbs > 0 || n.Fats > 0 || n.Cholesterol > 0
}
