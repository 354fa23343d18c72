package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/pezeshkyar/checkup_backend/config"
	"github.com/pezeshkyar/checkup_backend/internal/repo"
	"github.com/pezeshkyar/checkup_backend/internal/service/auth"
	"github.com/pezeshkyar/checkup_backend/internal/service/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/service/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/service/doctor"
	svcmedia "github.com/pezeshkyar/checkup_backend/internal/service/media"
	"github.com/pezeshkyar/checkup_backend/internal/service/patient"
	"github.com/pezeshkyar/checkup_backend/internal/service/question"
	"github.com/pezeshkyar/checkup_backend/internal/service/user"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
	"github.com/pezeshkyar/checkup_backend/pkg/email"
	jibitpkg "github.com/pezeshkyar/checkup_backend/pkg/jibit"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
	s3pkg "github.com/pezeshkyar/checkup_backend/pkg/s3"
	"github.com/pezeshkyar/checkup_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvidePatientService,
		ProvideClinicService,
		ProvideDoctorService,
		ProvideQuestionService,
		ProvideCheckupService,
		ProvideMediaService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	mailCli *email.Client,
	jibitCli *jibitpkg.Client,
	authz authorize.IAuthorization,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) (auth.Service, error) {
	return auth.New(db, rdb, smsCli, mailCli, jibitCli, authz, paseto, cfg)
}

func ProvidePatientService(db *repo.Client, authz authorize.IAuthorization) patient.Service {
	return patient.New(db, authz)
}

func ProvideClinicService(db *repo.Client, authz authorize.IAuthorization) clinic.Service {
	return clinic.New(db, authz)
}

func ProvideDoctorService(db *repo.Client, authz authorize.IAuthorization) doctor.Service {
	return doctor.New(db, authz)
}

func ProvideQuestionService(db *repo.Client) question.Service {
	return question.New(db)
}

func ProvideCheckupService(db *repo.Client, nc *nats.Conn) checkup.Service {
	return checkup.New(db, nc)
}

func ProvideMediaService(db *repo.Client, s3 *s3pkg.Client) svcmedia.Service {
	return svcmedia.New(db, s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
