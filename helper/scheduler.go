package helper

import (
	"fmt"
	"log"
	"pizzeria_kassa/config"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	dailyScheduler    gocron.Scheduler
	deliveryScheduler *cron.Cron
)

// CloseDay logs the end-of-day totals of day and prunes counter rows older than last year.
func CloseDay(db *gorm.DB, day time.Time) {
	report, err := GetDailyReport(db, day.Format(utils.DateLayout))
	if err != nil {
		log.Printf("[CRON] daily close %s failed: %v", day.Format(utils.DateLayout), err)
		return
	}
	log.Printf("[CRON] daily close %s: %d orders, revenue %.2f, discount %.2f, bons %s-%s",
		report.Date, report.Orders, report.Revenue, report.DiscountTotal, report.FirstReceipt, report.LastReceipt)

	pruned, err := PruneReceiptCounters(db, day.Year()-1)
	if err != nil {
		log.Printf("[CRON] prune receipt counters: %v", err)
	} else if pruned > 0 {
		log.Printf("[CRON] pruned %d receipt counter rows", pruned)
	}
}

func StartDailyCloseScheduler(db *gorm.DB) {
	loc := config.ShopLocation()
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		log.Printf("daily close scheduler init failed: %v", err)
		return
	}
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			CloseDay(db, time.Now().In(loc).AddDate(0, 0, -1))
		}),
	)
	if err != nil {
		log.Printf("daily close job failed: %v", err)
		return
	}
	s.Start()
	dailyScheduler = s
	log.Println("Daily close scheduler started (00:05)")
}

// AutoDeliverOrders marks orders that have been on the way for longer than
// after as delivered, based on their requested delivery time.
func AutoDeliverOrders(db *gorm.DB, now time.Time, after time.Duration) (int64, error) {
	var orders []model.Order
	if err := db.Select("id", "date", "delivery_time", "updated_at").
		Where("status = ?", constants.ORDER_STATUS_ON_THE_WAY).
		Find(&orders).Error; err != nil {
		return 0, err
	}
	var ids []uint
	for _, o := range orders {
		ref := o.UpdatedAt
		if o.DeliveryTime != nil {
			if t, err := time.ParseInLocation("2006-01-02 15:04",
				fmt.Sprintf("%s %s", o.Date.String(), *o.DeliveryTime), now.Location()); err == nil {
				ref = t
			}
		}
		if now.Sub(ref) >= after {
			ids = append(ids, o.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.Model(&model.Order{}).Where("id IN ?", ids).Update("status", constants.ORDER_STATUS_DELIVERED)
	if res.Error != nil {
		return 0, res.Error
	}

	var delivered []model.Order
	if err := db.Where("id IN ?", ids).Find(&delivered).Error; err != nil {
		log.Printf("auto-deliver: reload for events: %v", err)
		return res.RowsAffected, nil
	}
	for i := range delivered {
		PublishOrderEvent("status", &delivered[i])
	}
	return res.RowsAffected, nil
}

func StartAutoDeliverScheduler(db *gorm.DB) {
	after := time.Duration(config.ConfigInt("AUTO_DELIVER_AFTER_MIN", 120)) * time.Minute
	loc := config.ShopLocation()

	deliveryScheduler = cron.New(cron.WithLocation(loc), cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	_, err := deliveryScheduler.AddFunc("*/5 * * * *", func() {
		n, err := AutoDeliverOrders(db, time.Now().In(loc), after)
		if err != nil {
			log.Printf("auto-deliver failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Marked %d orders as delivered", n)
		}
	})
	if err != nil {
		log.Printf("auto-deliver scheduler init failed: %v", err)
		return
	}
	deliveryScheduler.Start()
	log.Println("Auto-deliver scheduler started (every 5 minutes)")
}

func StopSchedulers() {
	if deliveryScheduler != nil {
		deliveryScheduler.Stop()
	}
	if dailyScheduler != nil {
		if err := dailyScheduler.Shutdown(); err != nil {
			log.Printf("daily scheduler shutdown: %v", err)
		}
	}
}
