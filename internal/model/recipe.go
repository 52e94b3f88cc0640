package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is the persisted recipe document. OwnerID and CreatedAt are assigned
// once by the repository on creation and never change afterwards.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Instructions string             `bson:"instructions" json:"instructions"`
	Servings     int                `bson:"servings" json:"servings"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Nutrition    *Nutrition         `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
	Favourite    bool               `bson:"favourite" json:"favourite"`
	OwnerID      string             `bson:"owner_id" json:"ownerId"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// CandidateRecipe is a recipe parsed from model output that has not been
// persisted yet. Servings, tags and nutrition are optional and copied through
// verbatim when present; required-field validation happens on save.
type CandidateRecipe struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	Servings     FlexInt    `json:"servings,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
}

// RecipePatch is a merge patch: only non-nil fields are applied to the stored
// document, everything else is left untouched.
type RecipePatch struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Ingredients  *[]string  `json:"ingredients,omitempty"`
	Instructions *string    `json:"instructions,omitempty"`
	Servings     *int       `json:"servings,omitempty"`
	Tags         *[]string  `json:"tags,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
	Favourite    *bool      `json:"favourite,omitempty"`
}

// FlexInt decodes a JSON number or a numeric string. Models regularly return
// "4" where a number was asked for.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(parsed)
		return nil
	}

	return fmt.Errorf("invalid numeric value: %s", data)
}
