package clinic

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entalert "github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	entclinic "github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	entgroup "github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
	entrealclinic "github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateGroupRequest struct {
	Title       string
	Description *string
}

type CreateClinicRequest struct {
	GroupID     *uuid.UUID
	Title       string
	Slug        string
	Description *string
	Phone       *string
	Address     *string
	City        *string
	Province    *string
	ManagerID   uuid.UUID // user who becomes the clinic manager
}

type UpdateClinicRequest struct {
	GroupID     *uuid.UUID
	Title       *string
	Description *string
	LogoKey     *string
	Phone       *string
	Address     *string
	City        *string
	Province    *string
	IsActive    *bool
}

type ListClinicsRequest struct {
	Page    int
	PerPage int
	GroupID *uuid.UUID
	City    *string
	Search  string // matches title
	Active  *bool
}

type CreateRealClinicRequest struct {
	Title   string
	Phone   *string
	Address *string
	City    *string
}

type CreateAlertRequest struct {
	Title         string
	Description   *string
	Severity      string // low | medium | high
	ReminderCount int
	ReminderUnit  string // day | week | month | year
	Channel       string // sms | web | call
}

type UpdateAlertRequest struct {
	Title         *string
	Description   *string
	Severity      *string
	ReminderCount *int
	ReminderUnit  *string
	Channel       *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Groups
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*repo.ClinicGroup, error)
	ListGroups(ctx context.Context) ([]*repo.ClinicGroup, error)
	DeleteGroup(ctx context.Context, groupID uuid.UUID) error

	// Clinics
	Create(ctx context.Context, req CreateClinicRequest) (*repo.Clinic, error)
	GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error)
	GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error)
	List(ctx context.Context, req ListClinicsRequest) (*PaginatedResult[*repo.Clinic], error)
	Update(ctx context.Context, clinicID uuid.UUID, req UpdateClinicRequest) (*repo.Clinic, error)
	Delete(ctx context.Context, clinicID uuid.UUID) error

	// Real clinics (external referral targets)
	CreateRealClinic(ctx context.Context, req CreateRealClinicRequest) (*repo.RealClinic, error)
	ListRealClinics(ctx context.Context, search string) ([]*repo.RealClinic, error)
	DeleteRealClinic(ctx context.Context, id uuid.UUID) error

	// Alerts
	CreateAlert(ctx context.Context, clinicID uuid.UUID, req CreateAlertRequest) (*repo.Alert, error)
	ListAlerts(ctx context.Context, clinicID uuid.UUID) ([]*repo.Alert, error)
	GetAlert(ctx context.Context, clinicID, alertID uuid.UUID) (*repo.Alert, error)
	UpdateAlert(ctx context.Context, clinicID, alertID uuid.UUID, req UpdateAlertRequest) (*repo.Alert, error)
	DeleteAlert(ctx context.Context, clinicID, alertID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &clinicService{db: db, auth: auth}
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

func (s *clinicService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*repo.ClinicGroup, error) {
	c := s.db.ClinicGroup.Create().
		SetTitle(req.Title)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	return c.Save(ctx)
}

func (s *clinicService) ListGroups(ctx context.Context) ([]*repo.ClinicGroup, error) {
	return s.db.ClinicGroup.Query().
		Where(entgroup.DeletedAtIsNil()).
		Order(entgroup.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
}

func (s *clinicService) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	g, err := s.db.ClinicGroup.Query().
		Where(entgroup.ID(groupID), entgroup.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("get group: %w", err)
	}
	return s.db.ClinicGroup.UpdateOne(g).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Clinics
// ---------------------------------------------------------------------------

func (s *clinicService) Create(ctx context.Context, req CreateClinicRequest) (*repo.Clinic, error) {
	taken, err := s.db.Clinic.Query().
		Where(entclinic.Slug(req.Slug), entclinic.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	c := s.db.Clinic.Create().
		SetTitle(req.Title).
		SetSlug(req.Slug)

	if req.GroupID != nil {
		c = c.SetNillableGroupID(req.GroupID)
	}
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		c = c.SetNillableCity(req.City)
	}
	if req.Province != nil {
		c = c.SetNillableProvince(req.Province)
	}

	clinic, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}

	// The creator manages the new clinic
	if err := authorize.AssignClinicRole(ctx, s.auth, req.ManagerID.String(), clinic.ID.String(), authorize.RoleClinicManager); err != nil {
		return nil, fmt.Errorf("assign manager role: %w", err)
	}

	return clinic, nil
}

func (s *clinicService) GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.ID(clinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.Slug(slug), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("get clinic by slug: %w", err)
	}
	return c, nil
}

func (s *clinicService) List(ctx context.Context, req ListClinicsRequest) (*PaginatedResult[*repo.Clinic], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Clinic.Query().
		Where(entclinic.DeletedAtIsNil())

	if req.GroupID != nil {
		q = q.Where(entclinic.GroupID(*req.GroupID))
	}
	if req.City != nil {
		q = q.Where(entclinic.CityEqualFold(*req.City))
	}
	if req.Search != "" {
		q = q.Where(entclinic.TitleContainsFold(req.Search))
	}
	if req.Active != nil {
		q = q.Where(entclinic.IsActive(*req.Active))
	}

	q = q.Order(entclinic.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clinics: %w", err)
	}

	clinics, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Clinic]{
		Data:       clinics,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clinicService) Update(ctx context.Context, clinicID uuid.UUID, req UpdateClinicRequest) (*repo.Clinic, error) {
	c, err := s.GetByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	u := s.db.Clinic.UpdateOne(c)

	if req.GroupID != nil {
		u = u.SetNillableGroupID(req.GroupID)
	}
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.LogoKey != nil {
		u = u.SetNillableLogoKey(req.LogoKey)
	}
	if req.Phone != nil {
		u = u.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		u = u.SetNillableCity(req.City)
	}
	if req.Province != nil {
		u = u.SetNillableProvince(req.Province)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}

	return u.Save(ctx)
}

func (s *clinicService) Delete(ctx context.Context, clinicID uuid.UUID) error {
	c, err := s.GetByID(ctx, clinicID)
	if err != nil {
		return err
	}
	return s.db.Clinic.UpdateOne(c).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Real clinics
// ---------------------------------------------------------------------------

func (s *clinicService) CreateRealClinic(ctx context.Context, req CreateRealClinicRequest) (*repo.RealClinic, error) {
	c := s.db.RealClinic.Create().
		SetTitle(req.Title)
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		c = c.SetNillableCity(req.City)
	}
	return c.Save(ctx)
}

func (s *clinicService) ListRealClinics(ctx context.Context, search string) ([]*repo.RealClinic, error) {
	q := s.db.RealClinic.Query().
		Where(entrealclinic.DeletedAtIsNil())
	if search != "" {
		q = q.Where(entrealclinic.TitleContainsFold(search))
	}
	return q.Order(entrealclinic.ByCreatedAt(sql.OrderDesc())).All(ctx)
}

func (s *clinicService) DeleteRealClinic(ctx context.Context, id uuid.UUID) error {
	c, err := s.db.RealClinic.Query().
		Where(entrealclinic.ID(id), entrealclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrRealClinicNotFound
		}
		return fmt.Errorf("get real clinic: %w", err)
	}
	return s.db.RealClinic.UpdateOne(c).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

func (s *clinicService) CreateAlert(ctx context.Context, clinicID uuid.UUID, req CreateAlertRequest) (*repo.Alert, error) {
	if _, err := s.GetByID(ctx, clinicID); err != nil {
		return nil, err
	}

	c := s.db.Alert.Create().
		SetClinicID(clinicID).
		SetTitle(req.Title)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.Severity != "" {
		c = c.SetSeverity(entalert.Severity(req.Severity))
	}
	if req.ReminderCount > 0 {
		c = c.SetReminderCount(req.ReminderCount)
	}
	if req.ReminderUnit != "" {
		c = c.SetReminderUnit(entalert.ReminderUnit(req.ReminderUnit))
	}
	if req.Channel != "" {
		c = c.SetChannel(entalert.Channel(req.Channel))
	}

	return c.Save(ctx)
}

func (s *clinicService) ListAlerts(ctx context.Context, clinicID uuid.UUID) ([]*repo.Alert, error) {
	if _, err := s.GetByID(ctx, clinicID); err != nil {
		return nil, err
	}
	return s.db.Alert.Query().
		Where(entalert.ClinicID(clinicID), entalert.DeletedAtIsNil()).
		Order(entalert.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *clinicService) GetAlert(ctx context.Context, clinicID, alertID uuid.UUID) (*repo.Alert, error) {
	a, err := s.db.Alert.Query().
		Where(entalert.ID(alertID), entalert.ClinicID(clinicID), entalert.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

func (s *clinicService) UpdateAlert(ctx context.Context, clinicID, alertID uuid.UUID, req UpdateAlertRequest) (*repo.Alert, error) {
	a, err := s.GetAlert(ctx, clinicID, alertID)
	if err != nil {
		return nil, err
	}

	u := s.db.Alert.UpdateOne(a)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.Severity != nil {
		u = u.SetSeverity(entalert.Severity(*req.Severity))
	}
	if req.ReminderCount != nil {
		u = u.SetReminderCount(*req.ReminderCount)
	}
	if req.ReminderUnit != nil {
		u = u.SetReminderUnit(entalert.ReminderUnit(*req.ReminderUnit))
	}
	if req.Channel != nil {
		u = u.SetChannel(entalert.Channel(*req.Channel))
	}
	return u.Save(ctx)
}

func (s *clinicService) DeleteAlert(ctx context.Context, clinicID, alertID uuid.UUID) error {
	a, err := s.GetAlert(ctx, clinicID, alertID)
	if err != nil {
		return err
	}
	return s.db.Alert.UpdateOne(a).SetDeletedAt(time.Now()).Exec(ctx)
}
