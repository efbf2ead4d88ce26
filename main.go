package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jainarula-tz/rideledger/api"
	"github.com/jainarula-tz/rideledger/internal/config"
	"github.com/jainarula-tz/rideledger/internal/events"
	eventskafka "github.com/jainarula-tz/rideledger/internal/events/kafka"
	"github.com/jainarula-tz/rideledger/internal/logging"
	"github.com/jainarula-tz/rideledger/internal/operator"
	"github.com/jainarula-tz/rideledger/internal/operator/actions"
	"github.com/jainarula-tz/rideledger/internal/provider"
	"github.com/jainarula-tz/rideledger/internal/service"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("rideledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	providerClient := provider.NewClient(
		envConfig.ProviderBaseURL,
		envConfig.ProviderToken,
		envConfig.ProviderTimeout,
		logger,
	)

	var publisher events.Publisher = events.Noop{}
	if len(envConfig.KafkaBrokers) > 0 {
		kafkaPublisher := eventskafka.NewPublisher(envConfig.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	clients := &actions.Clients{
		Billing:  providerClient,
		Invoices: providerClient,
		Events:   publisher,
		Logger:   logger,
	}
	delegator := operator.NewOperatorDelegator(clients, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(providerClient, providerClient, envConfig.DefaultPageSize)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
