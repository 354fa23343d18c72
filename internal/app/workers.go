package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/pezeshkyar/checkup_backend/config"
	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entcheckup "github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	entanswer "github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/service/checkup"
	"github.com/pezeshkyar/checkup_backend/pkg/email"
	svcsms "github.com/pezeshkyar/checkup_backend/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc   fx.Lifecycle
	NC   *nats.Conn
	DB   *repo.Client
	Mail *email.Client
	SMS  *svcsms.Client
	Cfg  *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startApproverWorker(p.NC, p.DB, p.Mail)
			startReminderWorker(p.NC, p.DB, p.SMS, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// loadCompletedCheckup resolves a completion event payload into the full
// session with its template, patient and clinic.
func loadCompletedCheckup(ctx context.Context, db *repo.Client, payload []byte) (*repo.Checkup, error) {
	id, err := uuid.Parse(strings.TrimSpace(string(payload)))
	if err != nil {
		return nil, err
	}
	return db.Checkup.Query().
		Where(entcheckup.ID(id)).
		WithTemplate().
		WithClinic().
		WithPatient(func(pq *repo.PatientProfileQuery) {
			pq.WithUser()
		}).
		Only(ctx)
}

// ---------------------------------------------------------------------------
// approver_worker: emails the template's approvers on completion
// ---------------------------------------------------------------------------

func startApproverWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	subject := checkup.SubjectCheckupCompleted + ".*"

	_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		ctx := context.Background()

		ck, err := loadCompletedCheckup(ctx, db, msg.Data)
		if err != nil {
			slog.Warn("approver_worker: checkup not found", "err", err)
			return
		}

		tmpl := ck.Edges.Template
		if tmpl == nil || tmpl.Approvers == nil || *tmpl.Approvers == "" {
			return
		}

		patientName := ""
		if p := ck.Edges.Patient; p != nil && p.Edges.User != nil {
			u := p.Edges.User
			if u.FirstName != nil {
				patientName = *u.FirstName
			}
			if u.LastName != nil {
				patientName = strings.TrimSpace(patientName + " " + *u.LastName)
			}
		}
		clinicTitle := ""
		if ck.Edges.Clinic != nil {
			clinicTitle = ck.Edges.Clinic.Title
		}

		for _, addr := range strings.Split(*tmpl.Approvers, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}

			m := email.BuildCheckupCompletedEmail(email.CheckupEmailData{
				Recipient:    addr,
				PatientName:  patientName,
				CheckupTitle: tmpl.Title,
				ClinicTitle:  clinicTitle,
			})
			if err := mail.Send(ctx, m); err != nil {
				slog.Warn("approver_worker: send failed", "to", addr, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("approver_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("approver_worker: started")
}

// ---------------------------------------------------------------------------
// reminder_worker: SMS reminders for alert-flagged answers
// ---------------------------------------------------------------------------

func startReminderWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client, cfg *config.Config) {
	subject := checkup.SubjectCheckupCompleted + ".*"

	_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		ctx := context.Background()

		ck, err := loadCompletedCheckup(ctx, db, msg.Data)
		if err != nil {
			slog.Warn("reminder_worker: checkup not found", "err", err)
			return
		}

		p := ck.Edges.Patient
		if p == nil || p.Edges.User == nil {
			return
		}
		phone := p.Edges.User.Phone

		answers, err := db.QuestionAnswer.Query().
			Where(entanswer.CheckupID(ck.ID)).
			WithOption(func(oq *repo.QuestionOptionQuery) {
				oq.WithAlert()
			}).
			All(ctx)
		if err != nil {
			slog.Warn("reminder_worker: load answers failed", "checkup_id", ck.ID, "err", err)
			return
		}

		// One reminder per distinct SMS-channel alert
		seen := map[uuid.UUID]struct{}{}
		for _, a := range answers {
			opt := a.Edges.Option
			if opt == nil || opt.Edges.Alert == nil {
				continue
			}
			alert := opt.Edges.Alert
			if alert.Channel != "sms" {
				continue
			}
			if _, dup := seen[alert.ID]; dup {
				continue
			}
			seen[alert.ID] = struct{}{}

			err := smsCli.SendTemplate(ctx, phone, cfg.SMS.SMSIR.ReminderTemplateID, map[string]string{
				"title": alert.Title,
			})
			if err != nil {
				slog.Warn("reminder_worker: sms failed", "alert_id", alert.ID, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("reminder_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("reminder_worker: started")
}
