package domain

import (
	"math"
	"strings"
)

// ProductCategory tells training line items apart from ancillary ones
type ProductCategory string

const (
	CategoryExtra    ProductCategory = "extra"
	CategoryTraining ProductCategory = "training"
)

// MaxSessionsPerDeal bounds the session demand of a single deal
const MaxSessionsPerDeal = 500

// LineItem is one product line of a deal, already normalized
type LineItem struct {
	Category ProductCategory `json:"category"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity float64         `json:"quantity"`
}

// ProductClassification is the outcome of partitioning a deal's line items
type ProductClassification struct {
	DemandCapped   bool
	ExtraNames     []string
	Items          []LineItem
	SessionsNeeded int
	TrainingNames  []string
}

// IsTrainingCode reports whether a product code marks a training SKU.
// The comparison is case-insensitive substring matching.
func IsTrainingCode(code, marker string) bool {
	if marker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(code), strings.ToLower(marker))
}

// ClassifyProducts partitions line items into training and extra products.
// SessionsNeeded sums the quantities of training items only; names are kept
// in input order with duplicates, skipping items without a name.
// Non-finite quantities count as zero and the total is clamped to
// [0, MaxSessionsPerDeal], with DemandCapped set when the upper bound applies.
func ClassifyProducts(items []LineItem, marker string) ProductClassification {
	result := ProductClassification{
		ExtraNames:    []string{},
		Items:         make([]LineItem, 0, len(items)),
		TrainingNames: []string{},
	}

	total := 0.0
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if IsTrainingCode(item.Code, marker) {
			item.Category = CategoryTraining
			if !math.IsNaN(item.Quantity) && !math.IsInf(item.Quantity, 0) {
				total += item.Quantity
			}
			if name != "" {
				result.TrainingNames = append(result.TrainingNames, name)
			}
		} else {
			item.Category = CategoryExtra
			if name != "" {
				result.ExtraNames = append(result.ExtraNames, name)
			}
		}
		result.Items = append(result.Items, item)
	}

	switch {
	case total <= 0:
		result.SessionsNeeded = 0
	case total > MaxSessionsPerDeal:
		result.SessionsNeeded = MaxSessionsPerDeal
		result.DemandCapped = true
	default:
		result.SessionsNeeded = int(math.Floor(total))
	}
	return result
}

// TrainingSummary joins the training product names
func (c ProductClassification) TrainingSummary() string {
	return strings.Join(c.TrainingNames, ", ")
}

// ExtraSummary joins the extra product names
func (c ProductClassification) ExtraSummary() string {
	return strings.Join(c.ExtraNames, ", ")
}
