package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTrainingCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"form-incendios", true},
		{"FORM-ALTURA", true},
		{"xx-Form-yy", true},
		{"hotel", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTrainingCode(tt.code, "form-"))
		})
	}
}

func TestIsTrainingCode_EmptyMarkerMatchesNothing(t *testing.T) {
	assert.False(t, IsTrainingCode("form-x", ""))
}

func TestClassifyProducts_PartitionsAndSums(t *testing.T) {
	items := []LineItem{
		{Code: "FORM-INC", Name: "Incendios", Quantity: 2},
		{Code: "HOTEL", Name: "Noche de hotel", Quantity: 1},
		{Code: "form-alt", Name: "Altura", Quantity: 3},
		{Code: "DIETA", Name: "", Quantity: 4},
		{Code: "form-inc", Name: "Incendios", Quantity: 0},
	}

	result := ClassifyProducts(items, "form-")

	assert.Equal(t, 5, result.SessionsNeeded)
	assert.Equal(t, []string{"Incendios", "Altura", "Incendios"}, result.TrainingNames)
	assert.Equal(t, []string{"Noche de hotel"}, result.ExtraNames)
	assert.Equal(t, "Incendios, Altura, Incendios", result.TrainingSummary())
	assert.Equal(t, "Noche de hotel", result.ExtraSummary())

	assert.Len(t, result.Items, 5)
	assert.Equal(t, CategoryTraining, result.Items[0].Category)
	assert.Equal(t, CategoryExtra, result.Items[1].Category)
	assert.Equal(t, CategoryExtra, result.Items[3].Category)
}

func TestClassifyProducts_OrderDoesNotChangeDemand(t *testing.T) {
	items := []LineItem{
		{Code: "form-a", Name: "A", Quantity: 1},
		{Code: "x", Name: "X", Quantity: 10},
		{Code: "FORM-b", Name: "B", Quantity: 4},
	}
	reversed := []LineItem{items[2], items[1], items[0]}

	assert.Equal(t, 5, ClassifyProducts(items, "form-").SessionsNeeded)
	assert.Equal(t, 5, ClassifyProducts(reversed, "form-").SessionsNeeded)
}

func TestClassifyProducts_Empty(t *testing.T) {
	result := ClassifyProducts(nil, "form-")

	assert.Zero(t, result.SessionsNeeded)
	assert.Empty(t, result.TrainingSummary())
	assert.Empty(t, result.ExtraSummary())
	assert.NotNil(t, result.Items)
}

func TestClassifyProducts_BoundsDemand(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		expected int
		capped   bool
	}{
		{"huge quantity", 1e19, MaxSessionsPerDeal, true},
		{"above cap", 1e9, MaxSessionsPerDeal, true},
		{"at cap", MaxSessionsPerDeal, MaxSessionsPerDeal, false},
		{"negative", -4, 0, false},
		{"infinite", math.Inf(1), 0, false},
		{"not a number", math.NaN(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyProducts([]LineItem{{Code: "form-a", Name: "A", Quantity: tt.quantity}}, "form-")

			assert.Equal(t, tt.expected, result.SessionsNeeded)
			assert.Equal(t, tt.capped, result.DemandCapped)
			assert.Equal(t, tt.expected, SessionsToCreate(result.SessionsNeeded, 0))
		})
	}
}
