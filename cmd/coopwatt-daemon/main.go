package main

import (
	"fmt"
	"os"
	"time"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/jobs/cron"
	"github.com/coopwatt/coopwatt/mq_client"
	"github.com/coopwatt/coopwatt/workers"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	mq_client.Connect()

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start coopwatt-daemon: " + id)

		switch id {
		case "deferred_transaction":
			runWorker(id, workers.NewDeferredTransactionWorker())
		case "asset_yield":
			job := &cron.AssetYieldJob{}
			job.Process()
		case "balance_snapshot":
			job := &cron.BalanceSnapshotJob{}
			job.Process()
		default:
			config.Logger.Fatalf("Unknown daemon: %s", id)
		}
	}
}

func runWorker(id string, worker workers.Worker) {
	prefetch := mq_client.GetPrefetchCount(id)

	if prefetch > 0 {
		mq_client.GetChannel().Qos(prefetch, 0, false)
	}

	binding_queue := mq_client.GetBindingQueue(id)

	sub, err := config.Nats.QueueSubscribeSync("ledger", binding_queue.Name)
	if err != nil {
		config.Logger.Fatalf("Failed to subscribe: %v", err)
		return
	}

	for {
		m, err := sub.NextMsg(1 * time.Second)

		if err != nil {
			continue
		}

		if err := worker.Process(m.Data); err != nil {
			config.Logger.Errorf("Worker error: %v", err.Error())
		}
	}
}
