package jobs

import (
	"log"
	"time"

	"poinadmin/database"
	"poinadmin/services/clientledger"
)

// StartBillingWatcher flags overdue obligations once a day. Billing
// generation itself needs vendor GGR feeds and stays with the sync
// service; this job only surfaces what went past due.
func StartBillingWatcher() {
	ticker := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-ticker.C
			overdue, err := clientledger.ListOverdueBillings(database.DB, time.Now())
			if err != nil {
				log.Printf("❌ error listing overdue billings: %v", err)
				continue
			}
			for _, b := range overdue {
				log.Printf("⚠️  billing %d overdue: client %d, %s %s, due %s, status %s",
					b.ID, b.ClientID, b.Month, b.GameProvider,
					b.DueDate.Format("2006-01-02"), b.Status)
			}
		}
	}()
}
