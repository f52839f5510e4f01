// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaxonomyUserTag is the name of the taxonomy attached to user accounts.
const TaxonomyUserTag = "user_tag"

// Taxonomy declares a classification scheme that terms belong to: its
// identity, display labels, and the capability names guarding its terms.
type Taxonomy struct {
	Name         string               `json:"name"`
	Labels       TaxonomyLabels       `json:"labels"`
	Capabilities TaxonomyCapabilities `json:"capabilities"`

	Hierarchical bool `json:"hierarchical"`
	Public       bool `json:"public"`
	ShowUI       bool `json:"show_ui"`
	ShowInREST   bool `json:"show_in_rest"`
}

// MetaKey returns the user meta key under which assignments for this
// taxonomy are stored.
func (t Taxonomy) MetaKey() string {
	return t.Name + "_terms"
}

// TaxonomyLabels holds the display strings of a taxonomy.
type TaxonomyLabels struct {
	Name                    string `json:"name"`
	SingularName            string `json:"singular_name"`
	SearchItems             string `json:"search_items"`
	PopularItems            string `json:"popular_items"`
	AllItems                string `json:"all_items"`
	EditItem                string `json:"edit_item"`
	ViewItem                string `json:"view_item"`
	UpdateItem              string `json:"update_item"`
	AddNewItem              string `json:"add_new_item"`
	NewItemName             string `json:"new_item_name"`
	SeparateItemsWithCommas string `json:"separate_items_with_commas"`
	AddOrRemoveItems        string `json:"add_or_remove_items"`
	ChooseFromMostUsed      string `json:"choose_from_most_used"`
	NotFound                string `json:"not_found"`
	NoTerms                 string `json:"no_terms"`
	MenuName                string `json:"menu_name"`
	ItemsListNavigation     string `json:"items_list_navigation"`
	ItemsList               string `json:"items_list"`
	MostUsed                string `json:"most_used"`
	BackToItems             string `json:"back_to_items"`
}

// TaxonomyCapabilities maps the four term operations to the capability names
// a role must hold to perform them.
type TaxonomyCapabilities struct {
	ManageTerms Capability `json:"manage_terms"`
	EditTerms   Capability `json:"edit_terms"`
	DeleteTerms Capability `json:"delete_terms"`
	AssignTerms Capability `json:"assign_terms"`
}

// All returns the four capabilities in declaration order.
func (c TaxonomyCapabilities) All() []Capability {
	return []Capability{c.ManageTerms, c.EditTerms, c.DeleteTerms, c.AssignTerms}
}
