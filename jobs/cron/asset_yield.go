package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/volatiletech/null"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/models"
)

// AssetYieldJob credits yesterday's device yields (solar production, mining
// output, storage rental) to the owner accounts through the ledger.
type AssetYieldJob struct {
}

func (j *AssetYieldJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:10:00").Do(distributeYields)
	<-s.Start()
}

func distributeYields() {
	var yields []*models.AssetYield

	config.DataBase.Where("distributed_at IS NULL").Order("id asc").Find(&yields)

	for _, yield := range yields {
		account, err := ledger.GetOrCreateAccount(yield.MemberID, yield.AssetType, yield.Currency)
		if err != nil {
			config.Logger.Errorf("Failed to resolve account for yield %d: %v", yield.ID, err)
			continue
		}

		_, err = ledger.Credit(account.ID, yield.Amount, "yield distribution", &ledger.RecordOptions{
			Reference: models.Reference{ID: yield.ID, Type: "AssetYield"},
			CreatedBy: "yield_cron",
		})
		if err != nil {
			config.Logger.Errorf("Failed to distribute yield %d: %v", yield.ID, err)
			continue
		}

		config.DataBase.Model(yield).Update("distributed_at", null.TimeFrom(time.Now()))
	}
}
