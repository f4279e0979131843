package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type Channel struct {
	Prefetch int `yaml:"prefetch"`
}

type MQClientConfig struct {
	Exchange struct {
		Notification Exchange `yaml:"notification"`
		Events       Exchange `yaml:"events"`
		Ledger       Exchange `yaml:"ledger"`
	}
	Queue struct {
		DeferredTransaction Queue `yaml:"deferred_transaction"`
		AccountingExport    Queue `yaml:"accounting_export"`
		EventsProcessor     Queue `yaml:"events_processor"`
	}
	Binding struct {
		DeferredTransaction Binding `yaml:"deferred_transaction"`
		AccountingExport    Binding `yaml:"accounting_export"`
		EventsProcessor     Binding `yaml:"events_processor"`
	}
	Channel struct {
		DeferredTransaction Channel `yaml:"deferred_transaction"`
	}
}
