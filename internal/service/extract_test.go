package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray_StripsSurroundingProse(t *testing.T) {
	raw, err := ExtractJSONArray(`noise [ {"a":1} ] trailing`)

	require.NoError(t, err)
	assert.Equal(t, `[ {"a":1} ]`, raw)
}

func TestExtractJSONArray_SpansFirstOpenToLastClose(t *testing.T) {
	raw, err := ExtractJSONArray(`pre [1, [2, 3]] post`)

	require.NoError(t, err)
	assert.Equal(t, `[1, [2, 3]]`, raw)
}

func TestExtractJSONArray_NoBrackets(t *testing.T) {
	cases := map[string]string{
		"no open":     `1, 2, 3]`,
		"no close":    `sorry [ nothing here`,
		"empty":       ``,
		"prose only":  `Sorry, I cannot help with that.`,
		"close first": `] oops [`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractJSONArray(input)
			assert.ErrorIs(t, err, ErrNoJSONFound)
		})
	}
}

func TestParseCandidates_PreservesOrderAndFields(t *testing.T) {
	raw := `[
		{"title":"Pancake","description":"fluffy","ingredients":["egg","flour"],"instructions":"mix","servings":4,"tags":["breakfast"]},
		{"title":"Omelette","description":"fast","ingredients":["egg"],"instructions":"whisk","servings":"2"}
	]`

	candidates, err := ParseCandidates(raw)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Pancake", candidates[0].Title)
	assert.Equal(t, []string{"egg", "flour"}, candidates[0].Ingredients)
	assert.Equal(t, 4, int(candidates[0].Servings))
	assert.Equal(t, []string{"breakfast"}, candidates[0].Tags)
	assert.Equal(t, "Omelette", candidates[1].Title)
	assert.Equal(t, 2, int(candidates[1].Servings), "numeric string servings should coerce")
}

func TestParseCandidates_MalformedJSON(t *testing.T) {
	_, err := ParseCandidates(`[{"title": "Pancake"`)

	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestParseCandidates_TopLevelObject(t *testing.T) {
	_, err := ParseCandidates(`{"title":"Pancake"}`)

	assert.ErrorIs(t, err, ErrNotAnArray)
}

func TestParseCandidates_EmptyArray(t *testing.T) {
	candidates, err := ParseCandidates(`[]`)

	require.NoError(t, err)
	assert.Empty(t, candidates)
}
