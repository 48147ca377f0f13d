// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CategoryKind tells which transaction types a [Category] is offered for.
type CategoryKind string

const (
	ExpenseCategory CategoryKind = "expense"
	IncomeCategory  CategoryKind = "income"
)

func (k CategoryKind) Valid() bool {
	return k == ExpenseCategory || k == IncomeCategory
}

// Category labels a transaction. Like accounts, categories are local-only.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind CategoryKind `json:"kind"`
	Icon string       `json:"icon,omitempty"`
}

// DefaultCategories is the category set a fresh local store is seeded with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-food", Name: "Food", Kind: ExpenseCategory, Icon: "utensils"},
		{ID: "cat-transport", Name: "Transport", Kind: ExpenseCategory, Icon: "bus"},
		{ID: "cat-housing", Name: "Housing", Kind: ExpenseCategory, Icon: "home"},
		{ID: "cat-health", Name: "Health", Kind: ExpenseCategory, Icon: "heart"},
		{ID: "cat-entertainment", Name: "Entertainment", Kind: ExpenseCategory, Icon: "film"},
		{ID: "cat-other-expense", Name: "Other", Kind: ExpenseCategory, Icon: "dots"},
		{ID: "cat-salary", Name: "Salary", Kind: IncomeCategory, Icon: "briefcase"},
		{ID: "cat-other-income", Name: "Other income", Kind: IncomeCategory, Icon: "plus"},
	}
}
