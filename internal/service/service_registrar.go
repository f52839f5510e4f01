// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

// UserTagTaxonomy returns the declaration of the user tag taxonomy.
func UserTagTaxonomy() models.Taxonomy {
	return models.Taxonomy{
		Name: models.TaxonomyUserTag,
		Labels: models.TaxonomyLabels{
			Name:                    "User Tags",
			SingularName:            "User Tag",
			SearchItems:             "Search User Tags",
			PopularItems:            "Popular User Tags",
			AllItems:                "All User Tags",
			EditItem:                "Edit User Tag",
			ViewItem:                "View User Tag",
			UpdateItem:              "Update User Tag",
			AddNewItem:              "Add New User Tag",
			NewItemName:             "New User Tag Name",
			SeparateItemsWithCommas: "Separate user tags with commas",
			AddOrRemoveItems:        "Add or remove user tags",
			ChooseFromMostUsed:      "Choose from the most used user tags",
			NotFound:                "No user tags found.",
			NoTerms:                 "No user tags",
			MenuName:                "User Tags",
			ItemsListNavigation:     "User tags list navigation",
			ItemsList:               "User tags list",
			MostUsed:                "Most Used",
			BackToItems:             "← Back to User Tags",
		},
		Capabilities: models.TaxonomyCapabilities{
			ManageTerms: "manage_user_tags",
			EditTerms:   "edit_user_tags",
			DeleteTerms: "delete_user_tags",
			AssignTerms: "assign_user_tags",
		},
		Hierarchical: false,
		Public:       false,
		ShowUI:       true,
		ShowInREST:   true,
	}
}

// registrar keeps the taxonomies declared during this process and grants
// their capabilities through the role repository.
type registrar struct {
	mu         sync.RWMutex
	taxonomies map[string]models.Taxonomy

	roleRepository store.RoleRepository
	logger         *logger.Logger
}

// NewRegistrar constructs a [Registrar] granting capabilities through roles.
func NewRegistrar(roles store.RoleRepository, logger *logger.Logger) Registrar {
	logger.Debug().Msg("creating tag registrar")
	return &registrar{
		taxonomies:     make(map[string]models.Taxonomy),
		roleRepository: roles,
		logger:         logger,
	}
}

// Register implements [Registrar]. A missing administrator role is skipped
// without error; grants already present are left untouched.
func (r *registrar) Register(ctx context.Context) (models.Taxonomy, error) {
	log := logger.FromContext(ctx)
	tax := UserTagTaxonomy()

	r.mu.Lock()
	r.taxonomies[tax.Name] = tax
	r.mu.Unlock()

	exists, err := r.roleRepository.RoleExists(ctx, models.RoleAdministrator)
	if err != nil {
		log.Err(err).Str("func", "*registrar.Register").Msg("role lookup failed")
		return models.Taxonomy{}, fmt.Errorf("role lookup failed: %w", err)
	}
	if !exists {
		log.Warn().Str("func", "*registrar.Register").Str("role", models.RoleAdministrator).Msg("role not found, skipping capability grant")
		return tax, nil
	}

	if err := r.roleRepository.GrantCapabilities(ctx, models.RoleAdministrator, tax.Capabilities.All()); err != nil {
		log.Err(err).Str("func", "*registrar.Register").Msg("capability grant failed")
		return models.Taxonomy{}, fmt.Errorf("capability grant failed: %w", err)
	}

	log.Info().Str("taxonomy", tax.Name).Msg("taxonomy registered")
	return tax, nil
}

// Taxonomy implements [Registrar].
func (r *registrar) Taxonomy(name string) (models.Taxonomy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tax, ok := r.taxonomies[name]
	return tax, ok
}
