package flow

import "github.com/kykylib/shoebot/internal/models"

// Navigation and answer button labels. Inputs are compared by exact label
// match against these values.
const (
	LabelYes  = "✅ Yes"
	LabelNo   = "❌ No"
	LabelBack = "↩️ Back"
	LabelHome = "🏠 Home"
)

// Style choice labels shown on the keyboard.
const (
	LabelStyleSport   = "🏃 Sport"
	LabelStyleCasual  = "👖 Casual"
	LabelStyleFormal  = "👔 Formal"
	LabelStyleOutdoor = "🌳 Outdoor"
)

// Shoe type choice labels shown on the keyboard.
const (
	LabelTypeSneakers = "👟 Sneakers"
	LabelTypeBoots    = "🥾 Boots"
	LabelTypeShoes    = "👞 Shoes"
)

// styleByLabel maps each style label to its canonical value.
var styleByLabel = map[string]models.Style{
	LabelStyleSport:   models.StyleSport,
	LabelStyleCasual:  models.StyleCasual,
	LabelStyleFormal:  models.StyleFormal,
	LabelStyleOutdoor: models.StyleOutdoor,
}

// typeByLabel maps each shoe type label to its canonical value.
var typeByLabel = map[string]models.ShoeType{
	LabelTypeSneakers: models.TypeSneakers,
	LabelTypeBoots:    models.TypeBoots,
	LabelTypeShoes:    models.TypeShoes,
}

// labelByType is the reverse of typeByLabel, used to render keyboards.
var labelByType = map[models.ShoeType]string{
	models.TypeSneakers: LabelTypeSneakers,
	models.TypeBoots:    LabelTypeBoots,
	models.TypeShoes:    LabelTypeShoes,
}

// compatibility restricts which shoe types are valid for each style. Both the
// keyboard rendering and the validation in the shoe type step read this table,
// so no choice is ever shown that would fail validation.
var compatibility = map[models.Style][]models.ShoeType{
	models.StyleSport:   {models.TypeSneakers, models.TypeBoots},
	models.StyleCasual:  {models.TypeSneakers, models.TypeShoes},
	models.StyleFormal:  {models.TypeShoes, models.TypeBoots},
	models.StyleOutdoor: {models.TypeBoots},
}

// styleOrder fixes the keyboard ordering of style choices.
var styleOrder = []string{LabelStyleSport, LabelStyleCasual, LabelStyleFormal, LabelStyleOutdoor}

// StyleFromLabel maps a user-facing style label to its canonical value.
// The second return value reports whether the label is defined.
func StyleFromLabel(label string) (models.Style, bool) {
	style, ok := styleByLabel[label]
	return style, ok
}

// TypeFromLabel maps a user-facing shoe type label to its canonical value.
// The second return value reports whether the label is defined.
func TypeFromLabel(label string) (models.ShoeType, bool) {
	shoeType, ok := typeByLabel[label]
	return shoeType, ok
}

// ValidTypesFor returns the ordered set of shoe types permitted for the given
// style. Styles outside the compatibility table yield an empty set.
func ValidTypesFor(style models.Style) []models.ShoeType {
	types := compatibility[style]
	out := make([]models.ShoeType, len(types))
	copy(out, types)
	return out
}

// StyleLabels returns the style choice labels in keyboard order.
func StyleLabels() []string {
	out := make([]string, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// TypeLabelsFor returns the shoe type choice labels valid for the given style,
// in the same order ValidTypesFor reports them.
func TypeLabelsFor(style models.Style) []string {
	types := compatibility[style]
	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, labelByType[t])
	}
	return labels
}
