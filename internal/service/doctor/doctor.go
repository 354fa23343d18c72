package doctor

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entdoctor "github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	entrealdoctor "github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
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

type CreateDoctorRequest struct {
	UserID      uuid.UUID
	ClinicID    *uuid.UUID
	Specialty   *string
	MedicalCode *string
	Bio         *string
}

type UpdateDoctorRequest struct {
	ClinicID   *uuid.UUID
	Specialty  *string
	Bio        *string
	IsVerified *bool
}

type ListDoctorsRequest struct {
	Page      int
	PerPage   int
	ClinicID  *uuid.UUID
	Specialty *string
	Verified  *bool
}

type CreateRealDoctorRequest struct {
	FullName  string
	Specialty *string
	Phone     *string
	Address   *string
	City      *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context, req ListDoctorsRequest) (*PaginatedResult[*repo.Doctor], error)
	Update(ctx context.Context, doctorID uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error)
	Delete(ctx context.Context, doctorID uuid.UUID) error

	// Real doctors (external referral targets)
	CreateRealDoctor(ctx context.Context, req CreateRealDoctorRequest) (*repo.RealDoctor, error)
	ListRealDoctors(ctx context.Context, search string) ([]*repo.RealDoctor, error)
	DeleteRealDoctor(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &doctorService{db: db, auth: auth}
}

func (s *doctorService) Create(ctx context.Context, req CreateDoctorRequest) (*repo.Doctor, error) {
	exists, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(req.UserID), entdoctor.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if exists {
		return nil, ErrDoctorAlreadyExists
	}

	if req.MedicalCode != nil {
		taken, err := s.db.Doctor.Query().
			Where(entdoctor.MedicalCode(*req.MedicalCode), entdoctor.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check medical code: %w", err)
		}
		if taken {
			return nil, ErrMedicalCodeTaken
		}
	}

	c := s.db.Doctor.Create().
		SetUserID(req.UserID)

	if req.ClinicID != nil {
		c = c.SetNillableClinicID(req.ClinicID)
	}
	if req.Specialty != nil {
		c = c.SetNillableSpecialty(req.Specialty)
	}
	if req.MedicalCode != nil {
		c = c.SetNillableMedicalCode(req.MedicalCode)
	}
	if req.Bio != nil {
		c = c.SetNillableBio(req.Bio)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	// Grant the clinic doctor role when attached to a clinic
	if req.ClinicID != nil {
		if err := authorize.AssignClinicRole(ctx, s.auth, req.UserID.String(), req.ClinicID.String(), authorize.RoleClinicDoctor); err != nil {
			return nil, fmt.Errorf("assign doctor role: %w", err)
		}
	}

	return d, nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID), entdoctor.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(userID), entdoctor.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor by user: %w", err)
	}
	return d, nil
}

func (s *doctorService) List(ctx context.Context, req ListDoctorsRequest) (*PaginatedResult[*repo.Doctor], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil())

	if req.ClinicID != nil {
		q = q.Where(entdoctor.ClinicID(*req.ClinicID))
	}
	if req.Specialty != nil {
		q = q.Where(entdoctor.SpecialtyContainsFold(*req.Specialty))
	}
	if req.Verified != nil {
		q = q.Where(entdoctor.IsVerified(*req.Verified))
	}

	q = q.Order(entdoctor.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	doctors, err := q.WithUser().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Doctor]{
		Data:       doctors,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *doctorService) Update(ctx context.Context, doctorID uuid.UUID, req UpdateDoctorRequest) (*repo.Doctor, error) {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	u := s.db.Doctor.UpdateOne(d)
	if req.ClinicID != nil {
		u = u.SetNillableClinicID(req.ClinicID)
	}
	if req.Specialty != nil {
		u = u.SetNillableSpecialty(req.Specialty)
	}
	if req.Bio != nil {
		u = u.SetNillableBio(req.Bio)
	}
	if req.IsVerified != nil {
		u = u.SetIsVerified(*req.IsVerified)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, err
	}

	// Moving to a new clinic grants the doctor role there
	if req.ClinicID != nil && (d.ClinicID == nil || *d.ClinicID != *req.ClinicID) {
		if err := authorize.AssignClinicRole(ctx, s.auth, d.UserID.String(), req.ClinicID.String(), authorize.RoleClinicDoctor); err != nil {
			return nil, fmt.Errorf("assign doctor role: %w", err)
		}
	}

	return updated, nil
}

func (s *doctorService) Delete(ctx context.Context, doctorID uuid.UUID) error {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}
	return s.db.Doctor.UpdateOne(d).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Real doctors
// ---------------------------------------------------------------------------

func (s *doctorService) CreateRealDoctor(ctx context.Context, req CreateRealDoctorRequest) (*repo.RealDoctor, error) {
	c := s.db.RealDoctor.Create().
		SetFullName(req.FullName)
	if req.Specialty != nil {
		c = c.SetNillableSpecialty(req.Specialty)
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
	return c.Save(ctx)
}

func (s *doctorService) ListRealDoctors(ctx context.Context, search string) ([]*repo.RealDoctor, error) {
	q := s.db.RealDoctor.Query().
		Where(entrealdoctor.DeletedAtIsNil())
	if search != "" {
		q = q.Where(entrealdoctor.FullNameContainsFold(search))
	}
	return q.Order(entrealdoctor.ByCreatedAt(sql.OrderDesc())).All(ctx)
}

func (s *doctorService) DeleteRealDoctor(ctx context.Context, id uuid.UUID) error {
	d, err := s.db.RealDoctor.Query().
		Where(entrealdoctor.ID(id), entrealdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrRealDoctorNotFound
		}
		return fmt.Errorf("get real doctor: %w", err)
	}
	return s.db.RealDoctor.UpdateOne(d).SetDeletedAt(time.Now()).Exec(ctx)
}
