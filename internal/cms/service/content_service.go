package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/RoGasore/CALMNESS2/internal/cms/models"
)

var (
	ErrUnknownContentType = errors.New("unknown content type")
	ErrForbidden          = errors.New("action not enabled for public role")
	ErrNotFound           = errors.New("document not found")
)

// DocumentRepo reads content documents.
type DocumentRepo interface {
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.ContentDocument, error)
	GetByID(ctx context.Context, id string) (*models.ContentDocument, error)
}

// RoleRepo resolves roles by type.
type RoleRepo interface {
	FirstBy(ctx context.Context, key string, value interface{}) (*models.Role, error)
}

// PermissionRepo looks up a single permission row.
type PermissionRepo interface {
	FirstWhere(ctx context.Context, where map[string]interface{}) (*models.Permission, error)
}

// ContentService serves public content reads. Every read checks that the
// matching action is enabled for the public role before touching documents.
type ContentService struct {
	Docs        DocumentRepo
	Roles       RoleRepo
	Permissions PermissionRepo
}

func NewContentService(docs DocumentRepo, roles RoleRepo, permissions PermissionRepo) *ContentService {
	return &ContentService{
		Docs:        docs,
		Roles:       roles,
		Permissions: permissions,
	}
}

// Find returns every document of the given content type. sortByOrdre applies
// the "ordre:asc" modifier used by the services collection.
func (s *ContentService) Find(ctx context.Context, contentType string, sortByOrdre bool) ([]models.ContentDocument, error) {
	ct := models.ContentType(contentType)
	if !ct.IsValid() {
		return nil, ErrUnknownContentType
	}
	if err := s.checkAction(ctx, ct.Action("find")); err != nil {
		return nil, err
	}

	docs, err := s.Docs.GetBy(ctx, "content_type = ?", contentType)
	if err != nil {
		return nil, fmt.Errorf("fetching %s documents: %w", contentType, err)
	}

	result := *docs
	if sortByOrdre {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Ordre < result[j].Ordre
		})
	}
	return result, nil
}

// FindOne returns a single document by id, scoped to the content type.
func (s *ContentService) FindOne(ctx context.Context, contentType, id string) (*models.ContentDocument, error) {
	ct := models.ContentType(contentType)
	if !ct.IsValid() {
		return nil, ErrUnknownContentType
	}
	if err := s.checkAction(ctx, ct.Action("findOne")); err != nil {
		return nil, err
	}

	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if doc.ContentType != contentType {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *ContentService) checkAction(ctx context.Context, action string) error {
	role, err := s.Roles.FirstBy(ctx, "type = ?", models.PublicRoleType)
	if err != nil {
		return fmt.Errorf("public role lookup: %w", err)
	}

	permission, err := s.Permissions.FirstWhere(ctx, map[string]interface{}{
		"role_id": role.ID,
		"action":  action,
	})
	if err != nil || !permission.Enabled {
		return ErrForbidden
	}
	return nil
}
