// Наполняет базу тестовыми данными для локальной разработки:
// настройки расписания, слоты на ближайшие две недели с частичной
// записью пациентов и история прошедших приемов.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/clinicore/scheduling-service/internal/config"
	"github.com/clinicore/scheduling-service/internal/domain"
	appointmentRepo "github.com/clinicore/scheduling-service/internal/infra/storage/appointment"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/ptr"
	"github.com/clinicore/scheduling-service/pkg/types"
)

const (
	providerCount      = 5
	scheduleDays       = 14
	historyPerProvider = 20
)

var visitReasons = []string{
	"Annual checkup",
	"Follow-up visit",
	"Consultation",
	"Lab results review",
	"Vaccination",
	"Chronic condition management",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()
	slots := slotRepo.NewRepository(db)
	appointments := appointmentRepo.NewRepository(db)
	configs := configRepo.NewRepository(db)

	log.Printf("seeding %d providers", providerCount)

	for providerID := int64(1); providerID <= providerCount; providerID++ {
		if err := seedProvider(ctx, slots, appointments, configs, providerID); err != nil {
			log.Fatalf("seed provider %d: %v", providerID, err)
		}
	}

	log.Println("seed complete")
}

func seedProvider(
	ctx context.Context,
	slots *slotRepo.Repository,
	appointments *appointmentRepo.Repository,
	configs *configRepo.Repository,
	providerID int64,
) error {
	scheduleCfg := &domain.ProviderScheduleConfig{
		ProviderID:          providerID,
		SlotDurationMinutes: []int{15, 20, 30, 45}[gofakeit.Number(0, 3)],
		BreakMinutes:        []int{0, 0, 5, 10}[gofakeit.Number(0, 3)],
		DayStartTime:        "09:00",
		DayEndTime:          "17:00",
	}
	if _, err := configs.Upsert(ctx, scheduleCfg); err != nil {
		return err
	}

	if err := seedSlots(ctx, slots, providerID, scheduleCfg); err != nil {
		return err
	}

	return seedHistory(ctx, appointments, providerID)
}

func seedSlots(ctx context.Context, slots *slotRepo.Repository, providerID int64, cfg *domain.ProviderScheduleConfig) error {
	today := schedule.DateOnly(time.Now().UTC())

	planned, err := schedule.PlanBulkSlots(schedule.BulkGenerationRequest{
		StartDate:           today,
		EndDate:             today.AddDate(0, 0, scheduleDays-1),
		StartTime:           types.TimeString(cfg.DayStartTime),
		EndTime:             types.TimeString(cfg.DayEndTime),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		BreakMinutes:        cfg.BreakMinutes,
		Weekdays:            []int{1, 2, 3, 4, 5},
	}, providerID)
	if err != nil {
		return err
	}

	// Часть слотов сразу занята или заблокирована, как в живом расписании
	for _, slot := range planned {
		switch roll := gofakeit.Number(1, 100); {
		case roll <= 30:
			slot.Status = domain.SlotBooked
			slot.Patient = &domain.PatientInfo{
				Name:   gofakeit.Name(),
				Phone:  gofakeit.Phone(),
				Reason: visitReasons[gofakeit.Number(0, len(visitReasons)-1)],
			}
		case roll <= 40:
			slot.Status = domain.SlotBlocked
		}
	}

	created, err := slots.CreateBatch(ctx, planned)
	if err != nil {
		return err
	}

	log.Printf("provider %d: created %d slots", providerID, created)
	return nil
}

func seedHistory(ctx context.Context, appointments *appointmentRepo.Repository, providerID int64) error {
	statuses := []domain.AppointmentStatus{
		domain.AppointmentCompleted,
		domain.AppointmentCompleted,
		domain.AppointmentCompleted,
		domain.AppointmentCancelled,
		domain.AppointmentNoShow,
	}

	today := schedule.DateOnly(time.Now().UTC())

	for i := 0; i < historyPerProvider; i++ {
		record := &domain.AppointmentRecord{
			PublicID:        uuid.New(),
			ProviderID:      providerID,
			Date:            today.AddDate(0, 0, -gofakeit.Number(1, 90)),
			StartTime:       types.TimeString([]string{"09:00", "10:30", "13:00", "15:30"}[gofakeit.Number(0, 3)]),
			DurationMinutes: 30,
			Status:          statuses[gofakeit.Number(0, len(statuses)-1)],
			PatientName:     gofakeit.Name(),
			PatientPhone:    ptr.Ptr(gofakeit.Phone()),
			Reason:          ptr.Ptr(visitReasons[gofakeit.Number(0, len(visitReasons)-1)]),
		}

		if record.Status == domain.AppointmentCompleted {
			record.Diagnosis = ptr.Ptr(gofakeit.Sentence(6))
			record.Prescription = ptr.Ptr(gofakeit.Sentence(4))
			if gofakeit.Bool() {
				record.FollowUpDate = ptr.Ptr(today.AddDate(0, 0, gofakeit.Number(7, 30)))
			}
		}

		if _, err := appointments.Create(ctx, record); err != nil {
			return err
		}
	}

	log.Printf("provider %d: created %d history records", providerID, historyPerProvider)
	return nil
}
