package bootstrap

import (
	"context"
	"fmt"

	"github.com/RoGasore/CALMNESS2/internal/cms/models"
	"github.com/sirupsen/logrus"
)

// RoleRepo resolves the role whose permissions get enabled.
type RoleRepo interface {
	FirstBy(ctx context.Context, key string, value interface{}) (*models.Role, error)
}

// PermissionRepo applies keyed updates to permission rows.
type PermissionRepo interface {
	UpdateFields(ctx context.Context, where map[string]interface{}, updates map[string]interface{}) error
}

// Report summarizes a bootstrap run: how many permission updates were
// applied and which content types had at least one failing update.
type Report struct {
	Updated int
	Failed  []models.ContentType
}

// Service enables the public read permissions (find, findOne) for a fixed
// list of content types. Each update is independent: a failing update is
// logged and the run continues with the remaining ones. Re-running with
// permissions already enabled is a no-op write.
type Service struct {
	Roles        RoleRepo
	Permissions  PermissionRepo
	ContentTypes []models.ContentType
}

func NewService(roles RoleRepo, permissions PermissionRepo) *Service {
	return &Service{
		Roles:        roles,
		Permissions:  permissions,
		ContentTypes: models.BootstrapContentTypes(),
	}
}

func (s *Service) Run(ctx context.Context) (*Report, error) {
	role, err := s.Roles.FirstBy(ctx, "type = ?", models.PublicRoleType)
	if err != nil {
		return nil, fmt.Errorf("public role lookup: %w", err)
	}

	report := &Report{}
	for _, contentType := range s.ContentTypes {
		failed := false
		for _, action := range models.ReadActions {
			err := s.Permissions.UpdateFields(ctx,
				map[string]interface{}{"role_id": role.ID, "action": contentType.Action(action)},
				map[string]interface{}{"enabled": true},
			)
			if err != nil {
				logrus.Errorf("Error enabling %s for public role: %s", contentType.Action(action), err.Error())
				failed = true
				continue
			}
			report.Updated++
		}
		if failed {
			report.Failed = append(report.Failed, contentType)
		}
	}

	if len(report.Failed) > 0 {
		logrus.Warnf("Public permissions partially configured: %d updates applied, failed types: %v", report.Updated, report.Failed)
	} else {
		logrus.Infof("✅ Public permissions configured for all content types (%d updates)", report.Updated)
	}

	return report, nil
}
