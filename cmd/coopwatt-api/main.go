package main

import (
	"fmt"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/mq_client"
	"github.com/coopwatt/coopwatt/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	mq_client.Connect()

	r := routes.SetupRouter()
	r.Listen(":" + config.App.Port)
}
