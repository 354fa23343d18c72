package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entprofile "github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	entsupervisor "github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
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

type CreateProfileRequest struct {
	UserID         uuid.UUID
	Gender         *string
	BirthDate      *time.Time
	HeightCm       *float64
	WeightKg       *float64
	MedicalHistory *string
}

type UpdateProfileRequest struct {
	Gender         *string
	BirthDate      *time.Time
	HeightCm       *float64
	WeightKg       *float64
	MedicalHistory *string
}

type AddSupervisorRequest struct {
	UserID       uuid.UUID // supervising user
	RelativeType string    // parent | child | spouse | sibling | other
}

type ListProfilesRequest struct {
	Page    int
	PerPage int
	Order   string // asc | desc
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateProfileRequest) (*repo.PatientProfile, error)
	GetByID(ctx context.Context, profileID uuid.UUID) (*repo.PatientProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.PatientProfile, error)
	List(ctx context.Context, req ListProfilesRequest) (*PaginatedResult[*repo.PatientProfile], error)
	Update(ctx context.Context, profileID uuid.UUID, req UpdateProfileRequest) (*repo.PatientProfile, error)
	Delete(ctx context.Context, profileID uuid.UUID) error

	// Supervisors
	AddSupervisor(ctx context.Context, profileID uuid.UUID, req AddSupervisorRequest) (*repo.Supervisor, error)
	ListSupervisors(ctx context.Context, profileID uuid.UUID) ([]*repo.Supervisor, error)
	RemoveSupervisor(ctx context.Context, profileID, supervisorID uuid.UUID) error

	// SupervisedProfiles lists the profiles a user supervises.
	SupervisedProfiles(ctx context.Context, userID uuid.UUID) ([]*repo.PatientProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &patientService{db: db, auth: auth}
}

func (s *patientService) Create(ctx context.Context, req CreateProfileRequest) (*repo.PatientProfile, error) {
	exists, err := s.db.PatientProfile.Query().
		Where(entprofile.UserID(req.UserID), entprofile.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil, ErrProfileAlreadyExists
	}

	c := s.db.PatientProfile.Create().
		SetUserID(req.UserID)

	if req.Gender != nil {
		c = c.SetGender(entprofile.Gender(*req.Gender))
	}
	if req.BirthDate != nil {
		c = c.SetNillableBirthDate(req.BirthDate)
	}
	if req.HeightCm != nil {
		c = c.SetNillableHeightCm(req.HeightCm)
	}
	if req.WeightKg != nil {
		c = c.SetNillableWeightKg(req.WeightKg)
	}
	if req.MedicalHistory != nil {
		c = c.SetNillableMedicalHistory(req.MedicalHistory)
	}

	return c.Save(ctx)
}

func (s *patientService) GetByID(ctx context.Context, profileID uuid.UUID) (*repo.PatientProfile, error) {
	p, err := s.db.PatientProfile.Query().
		Where(entprofile.ID(profileID), entprofile.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.PatientProfile, error) {
	p, err := s.db.PatientProfile.Query().
		Where(entprofile.UserID(userID), entprofile.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile by user: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListProfilesRequest) (*PaginatedResult[*repo.PatientProfile], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.PatientProfile.Query().
		Where(entprofile.DeletedAtIsNil())

	if req.Order == "asc" {
		q = q.Order(entprofile.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entprofile.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}

	profiles, err := q.WithUser().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.PatientProfile]{
		Data:       profiles,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, profileID uuid.UUID, req UpdateProfileRequest) (*repo.PatientProfile, error) {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	u := s.db.PatientProfile.UpdateOne(p)

	if req.Gender != nil {
		u = u.SetGender(entprofile.Gender(*req.Gender))
	}
	if req.BirthDate != nil {
		u = u.SetNillableBirthDate(req.BirthDate)
	}
	if req.HeightCm != nil {
		u = u.SetNillableHeightCm(req.HeightCm)
	}
	if req.WeightKg != nil {
		u = u.SetNillableWeightKg(req.WeightKg)
	}
	if req.MedicalHistory != nil {
		u = u.SetNillableMedicalHistory(req.MedicalHistory)
	}

	return u.Save(ctx)
}

func (s *patientService) Delete(ctx context.Context, profileID uuid.UUID) error {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	// Soft delete
	return s.db.PatientProfile.UpdateOne(p).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Supervisors
// ---------------------------------------------------------------------------

func (s *patientService) AddSupervisor(ctx context.Context, profileID uuid.UUID, req AddSupervisorRequest) (*repo.Supervisor, error) {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID == req.UserID {
		return nil, ErrSelfSupervision
	}

	exists, err := s.db.Supervisor.Query().
		Where(entsupervisor.UserID(req.UserID), entsupervisor.PatientProfileID(profileID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check supervisor: %w", err)
	}
	if exists {
		return nil, ErrSupervisorExists
	}

	relType := req.RelativeType
	if relType == "" {
		relType = "other"
	}

	sup, err := s.db.Supervisor.Create().
		SetUserID(req.UserID).
		SetPatientProfileID(profileID).
		SetRelativeType(entsupervisor.RelativeType(relType)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create supervisor: %w", err)
	}

	// Grant the supervisor role in the patient's private domain
	if err := authorize.AssignSupervisorRole(ctx, s.auth, req.UserID.String(), p.UserID.String()); err != nil {
		return nil, fmt.Errorf("assign supervisor role: %w", err)
	}

	return sup, nil
}

func (s *patientService) ListSupervisors(ctx context.Context, profileID uuid.UUID) ([]*repo.Supervisor, error) {
	if _, err := s.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.db.Supervisor.Query().
		Where(entsupervisor.PatientProfileID(profileID)).
		WithUser().
		Order(entsupervisor.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
}

func (s *patientService) RemoveSupervisor(ctx context.Context, profileID, supervisorID uuid.UUID) error {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	sup, err := s.db.Supervisor.Query().
		Where(entsupervisor.ID(supervisorID), entsupervisor.PatientProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSupervisorNotFound
		}
		return fmt.Errorf("get supervisor: %w", err)
	}

	if err := s.db.Supervisor.DeleteOne(sup).Exec(ctx); err != nil {
		return fmt.Errorf("delete supervisor: %w", err)
	}

	// Revoke the role (best-effort; link is already gone)
	if err := authorize.RemoveSupervisorRole(ctx, s.auth, sup.UserID.String(), p.UserID.String()); err != nil {
		return fmt.Errorf("revoke supervisor role: %w", err)
	}
	return nil
}

func (s *patientService) SupervisedProfiles(ctx context.Context, userID uuid.UUID) ([]*repo.PatientProfile, error) {
	links, err := s.db.Supervisor.Query().
		Where(entsupervisor.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supervisor links: %w", err)
	}
	if len(links) == 0 {
		return []*repo.PatientProfile{}, nil
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.PatientProfileID)
	}

	return s.db.PatientProfile.Query().
		Where(entprofile.IDIn(ids...), entprofile.DeletedAtIsNil()).
		WithUser().
		All(ctx)
}
