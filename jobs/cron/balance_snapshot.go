package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
)

// BalanceSnapshotJob writes platform-wide per-asset aggregates to InfluxDB
// for the dashboards.
type BalanceSnapshotJob struct {
}

func (j *BalanceSnapshotJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(snapshotBalances)
	<-s.Start()
}

type balanceAggregate struct {
	AssetType string
	Currency  string
	Total     float64
	Accounts  int64
}

func snapshotBalances() {
	var aggregates []*balanceAggregate

	config.DataBase.
		Model(&models.Account{}).
		Select("asset_type", "currency", "SUM(amount) as total", "COUNT(*) as accounts").
		Group("asset_type").
		Group("currency").
		Find(&aggregates)

	for _, aggregate := range aggregates {
		tags := map[string]string{
			"asset_type": aggregate.AssetType,
			"currency":   aggregate.Currency,
		}
		fields := map[string]interface{}{
			"total":    aggregate.Total,
			"accounts": aggregate.Accounts,
		}

		config.InfluxDB.NewPoint("balances", tags, fields)
	}
}
